package checkout

import (
	"strings"
	"time"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// Client copia del cliente propia del contexto de checkout (snapshot al momento del pedido).
type Client struct {
	shared.Base
	Name     string
	Email    string
	Document string
	Address  shared.Address
}

// ClientProps datos de construcción del snapshot.
type ClientProps struct {
	ID        shared.ID
	Name      string
	Email     string
	Document  string
	Address   shared.Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient requiere ID (el cliente ya existe en client-adm) y nombre.
func NewClient(p ClientProps) (*Client, error) {
	if p.ID.IsZero() {
		return nil, domain.Validation("checkout client: id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, domain.Validation("checkout client: name is required")
	}
	return &Client{
		Base:     shared.NewBase(p.ID, p.CreatedAt, p.UpdatedAt),
		Name:     p.Name,
		Email:    p.Email,
		Document: p.Document,
		Address:  p.Address,
	}, nil
}
