package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
)

// ProductAdmService fachada de administración de productos.
type ProductAdmService interface {
	AddProduct(ctx context.Context, in dto.AddProductInput) (*dto.AddProductOutput, error)
	CheckStock(ctx context.Context, in dto.CheckStockInput) (*dto.CheckStockOutput, error)
}

// ProductHandler maneja el registro de productos y la consulta de stock.
type ProductHandler struct {
	svc ProductAdmService
}

// NewProductHandler construye el handler.
func NewProductHandler(svc ProductAdmService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar producto
// @Tags         products
// @Accept       json
// @Param        body  body  dto.AddProductInput  true  "name, description, purchasePrice, stock (salesPrice opcional)"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.AddProductInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.svc.AddProduct(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// Stock godoc
// @Summary      Stock disponible de un producto
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.CheckStockOutput
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id}/stock [get]
func (h *ProductHandler) Stock(c *fiber.Ctx) error {
	out, err := h.svc.CheckStock(c.UserContext(), dto.CheckStockInput{ProductID: c.Params("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
