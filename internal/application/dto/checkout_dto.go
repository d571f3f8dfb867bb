package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderProductRef referencia a producto en el pedido.
type OrderProductRef struct {
	ProductID string `json:"productId"`
}

// PlaceOrderInput body para POST /checkout.
type PlaceOrderInput struct {
	ClientID string            `json:"clientId"`
	Products []OrderProductRef `json:"products"`
}

// PlaceOrderOutput resultado del checkout. InvoiceID es null si el pago no fue aprobado.
type PlaceOrderOutput struct {
	ID        string            `json:"id"`
	InvoiceID *string           `json:"invoiceId"`
	Status    string            `json:"status"`
	Total     decimal.Decimal   `json:"total"`
	Products  []OrderProductRef `json:"products"`
}

// FindOrderInput búsqueda de pedido.
type FindOrderInput struct {
	ID string `json:"id"`
}

// OrderProductOutput línea del pedido con el precio capturado en el checkout.
type OrderProductOutput struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	SalesPrice decimal.Decimal `json:"salesPrice"`
}

// OrderOutput pedido persistido.
type OrderOutput struct {
	ID        string               `json:"id"`
	ClientID  string               `json:"clientId"`
	Status    string               `json:"status"`
	Total     decimal.Decimal      `json:"total"`
	Products  []OrderProductOutput `json:"products"`
	CreatedAt time.Time            `json:"createdAt"`
}
