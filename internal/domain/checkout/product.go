package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// Product snapshot del producto del catálogo con su precio de venta al momento del checkout.
type Product struct {
	id          shared.ID
	Name        string
	Description string
	SalesPrice  decimal.Decimal
}

// ProductProps datos de construcción.
type ProductProps struct {
	ID          shared.ID
	Name        string
	Description string
	SalesPrice  decimal.Decimal
}

// NewProduct requiere ID y precio no negativo.
func NewProduct(p ProductProps) (Product, error) {
	if p.ID.IsZero() {
		return Product{}, domain.Validation("checkout product: id is required")
	}
	if p.SalesPrice.IsNegative() {
		return Product{}, domain.Validation("checkout product %s: sales price must not be negative", p.ID)
	}
	return Product{id: p.ID, Name: p.Name, Description: p.Description, SalesPrice: p.SalesPrice}, nil
}

func (p Product) ID() shared.ID { return p.id }
