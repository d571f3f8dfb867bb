// Package payment registra las transacciones de pago de los pedidos.
package payment

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// Estados de la transacción.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// DefaultMinApprovedAmount monto mínimo aprobado cuando no se configura otro.
var DefaultMinApprovedAmount = decimal.NewFromInt(100)

// Transaction pago asociado a un pedido.
type Transaction struct {
	shared.Base
	OrderID string
	Amount  decimal.Decimal
	status  string
}

// Props datos de construcción.
type Props struct {
	ID        shared.ID
	OrderID   string
	Amount    decimal.Decimal
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction requiere orderID y monto no negativo. Un monto cero se procesa como cualquier otro.
func NewTransaction(p Props) (*Transaction, error) {
	if strings.TrimSpace(p.OrderID) == "" {
		return nil, domain.Validation("transaction: order id is required")
	}
	if p.Amount.IsNegative() {
		return nil, domain.Validation("transaction: amount cannot be negative")
	}
	status := p.Status
	if status == "" {
		status = StatusPending
	}
	return &Transaction{
		Base:    shared.NewBase(p.ID, p.CreatedAt, p.UpdatedAt),
		OrderID: p.OrderID,
		Amount:  p.Amount,
		status:  status,
	}, nil
}

func (t *Transaction) Status() string { return t.status }

// Process aprueba si Amount >= minApproved; si no, la rechaza.
func (t *Transaction) Process(minApproved decimal.Decimal) {
	if t.Amount.GreaterThanOrEqual(minApproved) {
		t.status = StatusApproved
	} else {
		t.status = StatusDeclined
	}
	t.Touch(time.Now().UTC())
}

// Gateway puerto de persistencia de transacciones.
type Gateway interface {
	Save(ctx context.Context, tx *Transaction) error
}
