package shared

import "time"

// Base agrupa identidad y marcas de tiempo; cada entidad la embebe en lugar de heredar.
type Base struct {
	id        ID
	createdAt time.Time
	updatedAt time.Time
}

// NewBase genera el ID si viene vacío y usa now para las fechas que falten.
func NewBase(id ID, createdAt, updatedAt time.Time) Base {
	now := time.Now().UTC()
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}
	return Base{id: NewID(string(id)), createdAt: createdAt, updatedAt: updatedAt}
}

func (b Base) ID() ID               { return b.id }
func (b Base) CreatedAt() time.Time { return b.createdAt }
func (b Base) UpdatedAt() time.Time { return b.updatedAt }

// Touch actualiza updatedAt. No modifica el ID.
func (b *Base) Touch(at time.Time) { b.updatedAt = at }
