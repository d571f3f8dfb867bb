// Package catalog es la vista de tienda de los productos (precio de venta).
package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// Product producto tal como lo ve el catálogo.
type Product struct {
	id          shared.ID
	Name        string
	Description string
	SalesPrice  decimal.Decimal
}

// NewProduct construye el producto de catálogo (se hidrata desde persistencia).
func NewProduct(id shared.ID, name, description string, salesPrice decimal.Decimal) *Product {
	return &Product{id: id, Name: name, Description: description, SalesPrice: salesPrice}
}

func (p *Product) ID() shared.ID { return p.id }

// Gateway puerto de lectura del catálogo.
type Gateway interface {
	FindAll(ctx context.Context) ([]*Product, error)
	// Find devuelve NotFound "Product not found" si no existe.
	Find(ctx context.Context, id shared.ID) (*Product, error)
}
