package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/application/usecase"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
)

// DealHandler maneja las peticiones HTTP para negocios del pipeline.
type DealHandler struct {
	uc *usecase.DealUseCase
}

// NewDealHandler construye el handler.
func NewDealHandler(uc *usecase.DealUseCase) *DealHandler {
	return &DealHandler{uc: uc}
}

// List godoc
// @Summary      Listar negocios
// @Tags         deals
// @Produce      json
// @Param        stage  query  string  false  "Filtro por etapa exacta"
// @Success      200    {array}  dto.DealResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/deals [get]
func (h *DealHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("stage"))
	if err != nil {
		return dealError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear negocio
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDealRequest  true  "Datos del negocio"
// @Success      201   {object}  dto.DealResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deals [post]
func (h *DealHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return dealError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar negocio
// @Tags         deals
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre del negocio"
// @Param        body  body  dto.UpdateDealRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DealResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/deals/{name} [put]
func (h *DealHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("name"), in)
	if err != nil {
		return dealError(c, err)
	}
	return c.JSON(out)
}

// Advance godoc
// @Summary      Avanzar el negocio a la siguiente etapa del kanban
// @Description  New → Discovery → Proposal → Negotiation → Closed Won.
//               Un negocio en etapa terminal responde 409.
// @Tags         deals
// @Produce      json
// @Param        name  path  string  true  "Nombre del negocio"
// @Success      200   {object}  dto.DealResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/deals/{name}/advance [post]
func (h *DealHandler) Advance(c *fiber.Ctx) error {
	out, err := h.uc.Advance(c.Params("name"))
	if err != nil {
		return dealError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar negocio
// @Tags         deals
// @Param        name  path  string  true  "Nombre del negocio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/deals/{name} [delete]
func (h *DealHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("name")); err != nil {
		return dealError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func dealError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el negocio ya existe"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "TERMINAL_STAGE", Message: "el negocio está en una etapa terminal"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "negocio no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
