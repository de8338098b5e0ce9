package dto

// MenuItemResponse un producto de la carta.
type MenuItemResponse struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	PriceText   string `json:"price_text"` // formateado: $8.000
	Description string `json:"description"`
	ImageRef    string `json:"image_ref,omitempty"`
}

// MenuCategoryResponse una categoría con sus productos en orden.
type MenuCategoryResponse struct {
	Label string             `json:"label"`
	Items []MenuItemResponse `json:"items"`
}
