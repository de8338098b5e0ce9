package entity

// Cart es el carrito de una sesión: una secuencia ordenada de productos.
// Cada adición cuenta como cantidad 1; se permiten duplicados (multiconjunto).
type Cart struct {
	lines []MenuItem
}

// Add agrega un producto al final del carrito.
func (c *Cart) Add(item MenuItem) {
	c.lines = append(c.lines, item)
}

// Lines devuelve una copia de las líneas del carrito en orden de adición.
func (c *Cart) Lines() []MenuItem {
	out := make([]MenuItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total suma los precios de todas las líneas.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Price
	}
	return total
}

// Len cantidad de líneas.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.lines = nil
}
