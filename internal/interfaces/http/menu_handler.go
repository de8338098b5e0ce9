// Package http expone la API REST con Fiber: la carta y el carrito de la
// tienda, el CRM (contactos, negocios, tablero) y los dos asistentes de chat.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/pkg/money"
)

// MenuHandler expone la carta de productos (solo lectura).
type MenuHandler struct {
	catalog []entity.MenuCategory
}

// NewMenuHandler construye el handler.
func NewMenuHandler(catalog []entity.MenuCategory) *MenuHandler {
	return &MenuHandler{catalog: catalog}
}

// List godoc
// @Summary      Listar la carta completa
// @Description  Devuelve las categorías de la carta con sus productos en el
//               orden de presentación de la tienda.
// @Tags         menu
// @Produce      json
// @Success      200  {array}  dto.MenuCategoryResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	out := make([]dto.MenuCategoryResponse, 0, len(h.catalog))
	for _, cat := range h.catalog {
		out = append(out, dto.MenuCategoryResponse{
			Label: cat.Label,
			Items: toMenuItemResponses(cat.Items),
		})
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Listar solo las categorías
// @Tags         menu
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/menu/categories [get]
func (h *MenuHandler) Categories(c *fiber.Ctx) error {
	labels := make([]string, 0, len(h.catalog))
	for _, cat := range h.catalog {
		labels = append(labels, cat.Label)
	}
	return c.JSON(labels)
}

func toMenuItemResponses(items []entity.MenuItem) []dto.MenuItemResponse {
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.MenuItemResponse{
			Name:        it.Name,
			Price:       it.Price,
			PriceText:   money.FormatCOP(it.Price),
			Description: it.Description,
			ImageRef:    it.ImageRef,
		})
	}
	return out
}
