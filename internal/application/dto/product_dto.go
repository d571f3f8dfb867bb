package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddProductInput body para POST /products.
// PurchasePrice y Stock son punteros para distinguir "ausente" de cero.
type AddProductInput struct {
	ID            string           `json:"id,omitempty"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SalesPrice    *decimal.Decimal `json:"salesPrice,omitempty"`
	Stock         *int             `json:"stock"`
}

// AddProductOutput producto registrado.
type AddProductOutput struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalesPrice    decimal.Decimal `json:"salesPrice"`
	Stock         int             `json:"stock"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CheckStockInput consulta de stock.
type CheckStockInput struct {
	ProductID string `json:"productId"`
}

// CheckStockOutput stock disponible de un producto.
type CheckStockOutput struct {
	ProductID string `json:"productId"`
	Stock     int    `json:"stock"`
}

// FindCatalogProductInput búsqueda en el catálogo.
type FindCatalogProductInput struct {
	ID string `json:"id"`
}

// CatalogProductOutput producto de catálogo.
type CatalogProductOutput struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SalesPrice  decimal.Decimal `json:"salesPrice"`
}

// CatalogListOutput listado completo del catálogo.
type CatalogListOutput struct {
	Products []CatalogProductOutput `json:"products"`
}
