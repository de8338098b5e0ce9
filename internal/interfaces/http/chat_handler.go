package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/application/usecase"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
)

// ChatHandler maneja los dos asistentes conversacionales: el de la tienda
// ("La Vaquita") y el del CRM. Cada uno tiene su propio caso de uso con su
// persona y su base de conocimiento.
type ChatHandler struct {
	storefront *usecase.ChatUseCase
	crm        *usecase.ChatUseCase
}

// NewChatHandler construye el handler.
func NewChatHandler(storefront, crm *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{storefront: storefront, crm: crm}
}

// Storefront godoc
// @Summary      Conversar con La Vaquita (tienda)
// @Description  Resuelve la respuesta por niveles: reglas locales sobre la
//               carta, modelo externo si hay credencial, o respuesta enlatada.
//               session_id vacío crea una sesión nueva.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "session_id (opcional) y message"
// @Success      200   {object}  dto.ChatReply
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chat/storefront [post]
func (h *ChatHandler) Storefront(c *fiber.Ctx) error {
	return h.send(c, h.storefront)
}

// CRM godoc
// @Summary      Conversar con el asistente del CRM
// @Description  Responde solo con reglas locales sobre contactos y negocios;
//               una consulta sin regla recibe una frase de relleno, nunca
//               escala al modelo externo.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "session_id (opcional) y message"
// @Success      200   {object}  dto.ChatReply
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chat/crm [post]
func (h *ChatHandler) CRM(c *fiber.Ctx) error {
	return h.send(c, h.crm)
}

func (h *ChatHandler) send(c *fiber.Ctx, uc *usecase.ChatUseCase) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
	}
	reply, err := uc.Send(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(reply)
}

// ClearStorefront godoc
// @Summary      Reiniciar la conversación de la tienda
// @Tags         chat
// @Param        id  path  string  true  "ID de sesión"
// @Success      204
// @Router       /api/chat/storefront/{id} [delete]
func (h *ChatHandler) ClearStorefront(c *fiber.Ctx) error {
	h.storefront.ClearSession(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearCRM reinicia la conversación del CRM. Idempotente.
func (h *ChatHandler) ClearCRM(c *fiber.Ctx) error {
	h.crm.ClearSession(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
