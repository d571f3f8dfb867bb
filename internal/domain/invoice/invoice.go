// Package invoice contiene la factura y sus líneas (agregado Invoice).
package invoice

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// Item línea de factura. Pertenece exclusivamente a su Invoice.
type Item struct {
	id    shared.ID
	Name  string
	Price decimal.Decimal
}

// ItemProps datos para construir una línea; ID vacío se genera.
type ItemProps struct {
	ID    shared.ID
	Name  string
	Price decimal.Decimal
}

// NewItem valida nombre y precio (no negativo).
func NewItem(p ItemProps) (Item, error) {
	if strings.TrimSpace(p.Name) == "" {
		return Item{}, domain.Validation("invoice item: name is required")
	}
	if p.Price.IsNegative() {
		return Item{}, domain.Validation("invoice item %q: price must not be negative", p.Name)
	}
	return Item{id: shared.NewID(string(p.ID)), Name: p.Name, Price: p.Price}, nil
}

func (i Item) ID() shared.ID { return i.id }

// Invoice cabecera de factura con sus líneas en orden de generación.
type Invoice struct {
	shared.Base
	Name     string
	Document string
	Address  shared.Address
	Items    []Item
}

// Props datos de construcción. Si ID está vacío se genera; fechas vacías toman now.
type Props struct {
	ID        shared.ID
	Name      string
	Document  string
	Address   shared.Address
	Items     []Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New construye la factura. Requiere nombre, documento, dirección y al menos una línea.
func New(p Props) (*Invoice, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, domain.Validation("invoice: name is required")
	}
	if strings.TrimSpace(p.Document) == "" {
		return nil, domain.Validation("invoice: document is required")
	}
	if p.Address.IsZero() {
		return nil, domain.Validation("invoice: address is required")
	}
	if len(p.Items) == 0 {
		return nil, domain.Validation("invoice: at least one item is required")
	}
	items := make([]Item, len(p.Items))
	copy(items, p.Items)
	return &Invoice{
		Base:     shared.NewBase(p.ID, p.CreatedAt, p.UpdatedAt),
		Name:     p.Name,
		Document: p.Document,
		Address:  p.Address,
		Items:    items,
	}, nil
}

// Total suma los precios de las líneas. Se recalcula en cada llamada.
func (inv *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range inv.Items {
		total = total.Add(it.Price)
	}
	return total
}

// Gateway puerto de persistencia del agregado Invoice.
type Gateway interface {
	// Generate inserta cabecera y líneas en una sola escritura lógica.
	Generate(ctx context.Context, inv *Invoice) error
	// Find devuelve un error NotFound "Invoice not found" si no existe.
	Find(ctx context.Context, id shared.ID) (*Invoice, error)
}
