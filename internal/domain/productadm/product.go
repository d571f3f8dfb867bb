// Package productadm es el contexto de administración de productos (costo y stock).
package productadm

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// Product producto registrado por administración.
// SalesPrice es el precio de venta inicial que hereda el catálogo.
type Product struct {
	shared.Base
	Name          string
	Description   string
	PurchasePrice decimal.Decimal
	SalesPrice    decimal.Decimal
	Stock         int
}

// Props datos de construcción. SalesPrice nil toma PurchasePrice.
type Props struct {
	ID            shared.ID
	Name          string
	Description   string
	PurchasePrice decimal.Decimal
	SalesPrice    *decimal.Decimal
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// New valida nombre, descripción, precios no negativos y stock no negativo.
func New(p Props) (*Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, domain.Validation("product: name is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return nil, domain.Validation("product: description is required")
	}
	if p.PurchasePrice.IsNegative() {
		return nil, domain.Validation("product: purchase price must not be negative")
	}
	if p.Stock < 0 {
		return nil, domain.Validation("product: stock must not be negative")
	}
	sales := p.PurchasePrice
	if p.SalesPrice != nil {
		if p.SalesPrice.IsNegative() {
			return nil, domain.Validation("product: sales price must not be negative")
		}
		sales = *p.SalesPrice
	}
	return &Product{
		Base:          shared.NewBase(p.ID, p.CreatedAt, p.UpdatedAt),
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalesPrice:    sales,
		Stock:         p.Stock,
	}, nil
}

// Gateway puerto de persistencia de administración de productos.
type Gateway interface {
	Add(ctx context.Context, product *Product) error
	// Find devuelve NotFound si el producto no existe.
	Find(ctx context.Context, id shared.ID) (*Product, error)
}
