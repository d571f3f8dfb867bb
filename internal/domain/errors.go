package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores de dominio para que la capa HTTP los traduzca a un status.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "VALIDATION"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "CONFLICT"
	case KindPersistence:
		return "PERSISTENCE"
	default:
		return "UNKNOWN"
	}
}

// Error es el error tipado de dominio (sin dependencias externas).
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is compara por Kind, de modo que errors.Is(err, ErrNotFound) funciona con cualquier mensaje.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Errores de dominio base; comparar siempre con errors.Is.
var (
	ErrInvalidInput = &Error{Kind: KindValidation, Message: "entrada inválida"}
	ErrNotFound     = &Error{Kind: KindNotFound, Message: "recurso no encontrado"}
	ErrDuplicate    = &Error{Kind: KindConflict, Message: "recurso duplicado"}
	ErrPersistence  = &Error{Kind: KindPersistence, Message: "error de persistencia"}
)

// Validation construye un error de validación con mensaje propio.
func Validation(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound construye un error de recurso inexistente con mensaje propio.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict construye un error de duplicado / conflicto.
func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Persistence envuelve un fallo del almacenamiento. op describe la operación ("insert invoice").
func Persistence(op string, err error) error {
	return &Error{Kind: KindPersistence, Message: op, Err: err}
}

// KindOf devuelve el Kind del primer *Error de la cadena, o 0 si no hay ninguno.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
