package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
)

// CatalogService fachada del catálogo.
type CatalogService interface {
	Find(ctx context.Context, in dto.FindCatalogProductInput) (*dto.CatalogProductOutput, error)
	FindAll(ctx context.Context) (*dto.CatalogListOutput, error)
}

// CatalogHandler consultas públicas del catálogo.
type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// List godoc
// @Summary      Listar catálogo
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogListOutput
// @Router       /catalog/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.FindAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Producto del catálogo
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "ID del producto"
// @Success      200  {object}  dto.CatalogProductOutput
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /catalog/products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.Find(c.UserContext(), dto.FindCatalogProductInput{ID: c.Params("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
