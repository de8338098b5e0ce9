package entity

// MenuItem es un producto de la carta. Inmutable una vez cargado.
// Price es el precio en pesos colombianos (COP, sin centavos), siempre >= 0.
type MenuItem struct {
	Name        string
	Price       int64
	Description string
	ImageRef    string // nombre del archivo de imagen; puede estar vacío
}

// MenuCategory agrupa productos bajo una etiqueta. El orden de los productos
// y de las categorías es el orden de presentación de la carta.
type MenuCategory struct {
	Label string
	Items []MenuItem
}
