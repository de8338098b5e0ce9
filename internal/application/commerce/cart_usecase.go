// Package commerce implementa los casos de uso de la tienda: carrito por
// sesión y cierre de pedido con enlaces de WhatsApp y Wompi.
package commerce

import (
	"strings"

	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/application/session"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/pkg/money"
)

// CartUseCase operaciones del carrito de la sesión.
type CartUseCase struct {
	sessions *session.Store
	catalog  []entity.MenuCategory
}

// NewCartUseCase construye el caso de uso sobre la carta vigente.
func NewCartUseCase(sessions *session.Store, catalog []entity.MenuCategory) *CartUseCase {
	return &CartUseCase{sessions: sessions, catalog: catalog}
}

// AddItem agrega el producto (cantidad 1) al carrito de la sesión; se permiten
// duplicados. El nombre debe coincidir exactamente con la carta.
func (uc *CartUseCase) AddItem(in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	item, ok := uc.findItem(in.Item)
	if !ok {
		return nil, domain.ErrNotFound
	}
	st := uc.sessions.GetOrCreate(in.SessionID)
	st.Cart.Add(item)
	return cartResponse(st), nil
}

// View devuelve el estado del carrito.
func (uc *CartUseCase) View(sessionID string) (*dto.CartResponse, error) {
	st, ok := uc.sessions.Get(sessionID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cartResponse(st), nil
}

// Clear vacía el carrito de la sesión. Idempotente.
func (uc *CartUseCase) Clear(sessionID string) {
	if st, ok := uc.sessions.Get(sessionID); ok {
		st.Cart.Clear()
	}
}

func (uc *CartUseCase) findItem(name string) (entity.MenuItem, bool) {
	for _, cat := range uc.catalog {
		for _, it := range cat.Items {
			if strings.EqualFold(it.Name, name) {
				return it, true
			}
		}
	}
	return entity.MenuItem{}, false
}

func cartResponse(st *session.State) *dto.CartResponse {
	lines := st.Cart.Lines()
	out := make([]dto.MenuItemResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.MenuItemResponse{
			Name:        l.Name,
			Price:       l.Price,
			PriceText:   money.FormatCOP(l.Price),
			Description: l.Description,
			ImageRef:    l.ImageRef,
		})
	}
	total := st.Cart.Total()
	return &dto.CartResponse{
		SessionID: st.ID,
		Lines:     out,
		Total:     total,
		TotalText: money.FormatCOP(total),
	}
}
