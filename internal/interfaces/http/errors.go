package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
)

// writeError traduce el Kind del error de dominio a status HTTP:
// Validation -> 400, NotFound -> 404, Conflict -> 409, resto -> 500.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch domain.KindOf(err) {
	case domain.KindValidation:
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case domain.KindNotFound:
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case domain.KindConflict:
		status, code = fiber.StatusConflict, "CONFLICT"
	}
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error(), Code: code})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body", Code: "INVALID_BODY"})
}
