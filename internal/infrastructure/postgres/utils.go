package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/ecommerce-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// writeError traduce un fallo de escritura: duplicado -> Conflict, resto -> Persistence.
func writeError(op, entity, id string, err error) error {
	if isUniqueViolation(err) {
		return domain.Conflict("%s %s already exists", entity, id)
	}
	return domain.Persistence(op, err)
}
