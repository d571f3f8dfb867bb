package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
)

// CheckoutService fachada de checkout.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, in dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error)
	FindOrder(ctx context.Context, in dto.FindOrderInput) (*dto.OrderOutput, error)
}

// CheckoutHandler maneja la creación y consulta de pedidos.
type CheckoutHandler struct {
	svc CheckoutService
}

func NewCheckoutHandler(svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// PlaceOrder godoc
// @Summary      Realizar pedido
// @Description  Valida cliente, stock y catálogo; procesa el pago y emite la factura si es aprobado.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        body  body      dto.PlaceOrderInput  true  "clientId y productos"
// @Success      201   {object}  dto.PlaceOrderOutput
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /checkout [post]
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.PlaceOrderInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.PlaceOrder(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderOutput
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /checkout/{id} [get]
func (h *CheckoutHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.FindOrder(c.UserContext(), dto.FindOrderInput{ID: c.Params("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
