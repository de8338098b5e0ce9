package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/application/ports"
	"github.com/kumisdelbalcon/balcon-api/internal/application/usecase"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
)

// AssistantHandler expone las herramientas de IA del CRM que sí consultan el
// modelo externo: consejo de ventas sobre el pipeline y borrador de correo.
type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

// SalesAdvice godoc
// @Summary      Consejo de ventas sobre el pipeline
// @Description  Envía los negocios abiertos al modelo externo y devuelve una
//               recomendación de priorización. Requiere credencial configurada.
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  dto.AssistantResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/assistant/advice [post]
func (h *AssistantHandler) SalesAdvice(c *fiber.Ctx) error {
	out, err := h.uc.SalesAdvice(c.Context())
	if err != nil {
		if errors.Is(err, ports.ErrMissingCredential) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code: "AI_UNAVAILABLE", Message: "el asistente de IA no está configurado",
			})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "AI_UNAVAILABLE", Message: err.Error(),
		})
	}
	return c.JSON(out)
}

// DraftEmail godoc
// @Summary      Borrador de correo de seguimiento a un contacto
// @Description  Pide el borrador al modelo externo; si falla, responde con la
//               plantilla local de seguimiento (source: local).
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmailDraftRequest  true  "contact (obligatorio) y tone"
// @Success      200   {object}  dto.AssistantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assistant/email-draft [post]
func (h *AssistantHandler) DraftEmail(c *fiber.Ctx) error {
	var req dto.EmailDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
	}
	out, err := h.uc.DraftEmail(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contacto no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
