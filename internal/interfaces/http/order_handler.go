package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kumisdelbalcon/balcon-api/internal/application/commerce"
	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
)

// OrderHandler maneja el carrito y el checkout de la tienda.
type OrderHandler struct {
	cart     *commerce.CartUseCase
	checkout *commerce.CheckoutUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(cart *commerce.CartUseCase, checkout *commerce.CheckoutUseCase) *OrderHandler {
	return &OrderHandler{cart: cart, checkout: checkout}
}

// AddToCart godoc
// @Summary      Agregar un producto al carrito
// @Description  Agrega una unidad del producto indicado por nombre exacto.
//               session_id vacío crea una sesión nueva.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "session_id (opcional) e item"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart [post]
func (h *OrderHandler) AddToCart(c *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.cart.AddItem(req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado en la carta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ViewCart godoc
// @Summary      Ver el carrito de la sesión
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID de sesión"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{id} [get]
func (h *OrderHandler) ViewCart(c *fiber.Ctx) error {
	out, err := h.cart.View(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión no encontrada"})
	}
	return c.JSON(out)
}

// ClearCart godoc
// @Summary      Vaciar el carrito de la sesión
// @Tags         orders
// @Param        id  path  string  true  "ID de sesión"
// @Success      204
// @Router       /api/cart/{id} [delete]
func (h *OrderHandler) ClearCart(c *fiber.Ctx) error {
	h.cart.Clear(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Checkout godoc
// @Summary      Finalizar el pedido
// @Description  Valida los datos del cliente y devuelve el enlace de WhatsApp
//               con el resumen del pedido; con pago Wompi incluye además el
//               enlace de pago con la referencia generada.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Datos del pedido"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkout.Checkout(req)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Comprobante del pedido en PDF
// @Tags         orders
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.CheckoutRequest  true  "Datos del pedido"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/receipt [post]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pdfBytes, err := h.checkout.Receipt(c.Context(), req)
	if err != nil {
		return checkoutError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="pedido.pdf"`)
	return c.Send(pdfBytes)
}

func checkoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sesión no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
