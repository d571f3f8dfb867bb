package shared

import (
	"strings"

	"github.com/jhoicas/ecommerce-api/internal/domain"
)

// Address dirección postal. Inmutable: los campos solo se leen mediante métodos.
type Address struct {
	street     string
	number     string
	complement string
	city       string
	state      string
	zipCode    string
}

// NewAddress valida y construye una dirección. El complemento es opcional.
func NewAddress(street, number, complement, city, state, zipCode string) (Address, error) {
	missing := make([]string, 0, 5)
	for _, f := range []struct{ name, value string }{
		{"street", street},
		{"number", number},
		{"city", city},
		{"state", state},
		{"zipCode", zipCode},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return Address{}, domain.Validation("address: missing %s", strings.Join(missing, ", "))
	}
	return Address{
		street:     street,
		number:     number,
		complement: complement,
		city:       city,
		state:      state,
		zipCode:    zipCode,
	}, nil
}

func (a Address) Street() string     { return a.street }
func (a Address) Number() string     { return a.number }
func (a Address) Complement() string { return a.complement }
func (a Address) City() string       { return a.city }
func (a Address) State() string      { return a.state }
func (a Address) ZipCode() string    { return a.zipCode }

// IsZero indica si la dirección no fue construida con NewAddress.
func (a Address) IsZero() bool { return a == Address{} }
