package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
)

// ClientAdmService fachada de administración de clientes.
type ClientAdmService interface {
	Add(ctx context.Context, in dto.AddClientInput) (*dto.ClientOutput, error)
	Find(ctx context.Context, in dto.FindClientInput) (*dto.ClientOutput, error)
}

// ClientHandler maneja las peticiones HTTP de clientes.
type ClientHandler struct {
	svc ClientAdmService
}

func NewClientHandler(svc ClientAdmService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         clients
// @Accept       json
// @Param        body  body  dto.AddClientInput  true  "name, email, document, address"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.AddClientInput
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.svc.Add(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.ClientOutput
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.Find(c.UserContext(), dto.FindClientInput{ID: c.Params("id")})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
