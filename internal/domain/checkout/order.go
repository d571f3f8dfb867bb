// Package checkout modela el pedido (Order) y los snapshots de cliente y producto que usa.
package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// Estados del pedido.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// Order agregado creado una sola vez en el checkout.
type Order struct {
	shared.Base
	Client   *Client
	Products []Product
	status   string
}

// OrderProps datos de construcción. Status vacío equivale a pending.
type OrderProps struct {
	ID        shared.ID
	Client    *Client
	Products  []Product
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder construye el pedido. Requiere cliente y al menos un producto.
func NewOrder(p OrderProps) (*Order, error) {
	if p.Client == nil {
		return nil, domain.Validation("order: client is required")
	}
	if len(p.Products) == 0 {
		return nil, domain.Validation("No products selected")
	}
	status := p.Status
	switch status {
	case "":
		status = StatusPending
	case StatusPending, StatusApproved, StatusDeclined:
	default:
		return nil, domain.Validation("order: unknown status %q", status)
	}
	products := make([]Product, len(p.Products))
	copy(products, p.Products)
	return &Order{
		Base:     shared.NewBase(p.ID, p.CreatedAt, p.UpdatedAt),
		Client:   p.Client,
		Products: products,
		status:   status,
	}, nil
}

func (o *Order) Status() string { return o.status }

// Approve marca el pedido como aprobado (pago aceptado).
func (o *Order) Approve() {
	o.status = StatusApproved
	o.Touch(time.Now().UTC())
}

// Decline marca el pedido como rechazado (pago no aceptado).
func (o *Order) Decline() {
	o.status = StatusDeclined
	o.Touch(time.Now().UTC())
}

// Total suma los precios de venta de los productos.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		total = total.Add(p.SalesPrice)
	}
	return total
}

// Gateway puerto de persistencia de pedidos.
type Gateway interface {
	AddOrder(ctx context.Context, order *Order) error
	// FindOrder devuelve NotFound "Order not found" si no existe.
	FindOrder(ctx context.Context, id shared.ID) (*Order, error)
}
