package shared

import "github.com/google/uuid"

// ID identificador de entidad. Se compara por valor.
type ID string

// NewID devuelve v como ID; si v está vacío genera un UUID v4.
func NewID(v string) ID {
	if v == "" {
		return ID(uuid.New().String())
	}
	return ID(v)
}

func (id ID) String() string { return string(id) }

// IsZero indica si el ID no fue asignado.
func (id ID) IsZero() bool { return id == "" }
