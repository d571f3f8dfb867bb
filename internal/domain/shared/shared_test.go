package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

func TestNewID_GeneraCuandoVacio(t *testing.T) {
	a := shared.NewID("")
	b := shared.NewID("")

	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
}

func TestNewID_ConservaValor(t *testing.T) {
	assert.Equal(t, shared.ID("1"), shared.NewID("1"))
	assert.Equal(t, "1", shared.NewID("1").String())
}

func TestNewAddress(t *testing.T) {
	addr, err := shared.NewAddress("Street 1", "123", "Complement", "City", "State", "12345-678")
	require.NoError(t, err)

	assert.Equal(t, "Street 1", addr.Street())
	assert.Equal(t, "123", addr.Number())
	assert.Equal(t, "Complement", addr.Complement())
	assert.Equal(t, "City", addr.City())
	assert.Equal(t, "State", addr.State())
	assert.Equal(t, "12345-678", addr.ZipCode())
	assert.False(t, addr.IsZero())
}

func TestNewAddress_SinComplemento(t *testing.T) {
	addr, err := shared.NewAddress("Street 1", "123", "", "City", "State", "12345-678")
	require.NoError(t, err)
	assert.Empty(t, addr.Complement())
}

func TestNewAddress_CamposFaltantes(t *testing.T) {
	_, err := shared.NewAddress("", "123", "", "City", "", "12345-678")
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "street")
	assert.Contains(t, err.Error(), "state")
}

func TestNewBase(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	b := shared.NewBase("abc", created, time.Time{})

	assert.Equal(t, shared.ID("abc"), b.ID())
	assert.Equal(t, created, b.CreatedAt())
	assert.Equal(t, created, b.UpdatedAt())

	later := created.Add(time.Hour)
	b.Touch(later)
	assert.Equal(t, later, b.UpdatedAt())
	assert.Equal(t, shared.ID("abc"), b.ID())
}
