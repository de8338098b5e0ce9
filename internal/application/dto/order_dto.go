package dto

// AddCartItemRequest agrega un producto (cantidad 1) al carrito de la sesión.
// SessionID vacío crea una sesión nueva.
type AddCartItemRequest struct {
	SessionID string `json:"session_id"`
	Item      string `json:"item"` // nombre exacto del producto de la carta
}

// CartResponse estado del carrito de la sesión.
type CartResponse struct {
	SessionID string             `json:"session_id"`
	Lines     []MenuItemResponse `json:"lines"`
	Total     int64              `json:"total"`
	TotalText string             `json:"total_text"`
}

// CheckoutRequest datos del cliente para finalizar el pedido.
// OrderType: "domicilio" (requiere Address) o "mesa" (requiere TableNumber).
// Payment: "Nequi / Bancolombia", "Efectivo" o "Wompi".
type CheckoutRequest struct {
	SessionID   string `json:"session_id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	OrderType   string `json:"order_type"`
	Address     string `json:"address"`
	TableNumber string `json:"table_number"`
	Payment     string `json:"payment"`
}

// CheckoutResponse enlaces de pedido generados.
type CheckoutResponse struct {
	Total        int64  `json:"total"`
	TotalText    string `json:"total_text"`
	Reference    string `json:"reference"`
	WhatsAppLink string `json:"whatsapp_link"`
	WompiLink    string `json:"wompi_link,omitempty"` // solo con pago Wompi
}
