package entity

// OrderType dónde recibe el cliente su pedido.
type OrderType string

const (
	OrderDelivery OrderType = "domicilio"
	OrderTable    OrderType = "mesa"
)

// PaymentMethod método de pago del pedido.
type PaymentMethod string

const (
	PaymentNequi PaymentMethod = "Nequi / Bancolombia"
	PaymentCash  PaymentMethod = "Efectivo"
	PaymentWompi PaymentMethod = "Wompi"
)

// Order es el resumen de un pedido listo para enviar: las líneas del carrito
// al momento del checkout más los datos del cliente y un consecutivo de pago.
type Order struct {
	Items        []MenuItem
	Total        int64
	CustomerName string
	Phone        string
	Address      string // domicilio: dirección de entrega
	TableNumber  string // mesa: número de mesa
	Type         OrderType
	Payment      PaymentMethod
	Reference    string // consecutivo KB-xxxxx usado también en Wompi
}
