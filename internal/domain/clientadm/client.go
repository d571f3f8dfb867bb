// Package clientadm es el contexto dueño del registro de clientes.
package clientadm

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// Client cliente registrado.
type Client struct {
	shared.Base
	Name     string
	Email    string
	Document string
	Address  shared.Address
}

// Props datos de construcción; ID vacío se genera.
type Props struct {
	ID        shared.ID
	Name      string
	Email     string
	Document  string
	Address   shared.Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New valida los campos obligatorios: name, email, document y address.
func New(p Props) (*Client, error) {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(p.Email) == "" {
		missing = append(missing, "email")
	} else if !strings.Contains(p.Email, "@") {
		return nil, domain.Validation("client: invalid email %q", p.Email)
	}
	if strings.TrimSpace(p.Document) == "" {
		missing = append(missing, "document")
	}
	if p.Address.IsZero() {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return nil, domain.Validation("client: missing %s", strings.Join(missing, ", "))
	}
	return &Client{
		Base:     shared.NewBase(p.ID, p.CreatedAt, p.UpdatedAt),
		Name:     p.Name,
		Email:    p.Email,
		Document: p.Document,
		Address:  p.Address,
	}, nil
}

// Gateway puerto de persistencia de clientes.
type Gateway interface {
	Add(ctx context.Context, client *Client) error
	// Find devuelve NotFound si el cliente no existe.
	Find(ctx context.Context, id shared.ID) (*Client, error)
}
