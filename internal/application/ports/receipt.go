package ports

import (
	"context"

	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
)

// ReceiptGenerator define el puerto de salida para generar el comprobante PDF
// de un pedido (adaptador concreto: Maroto).
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}
