package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcessPaymentInput solicitud de pago de un pedido.
type ProcessPaymentInput struct {
	OrderID string          `json:"orderId"`
	Amount  decimal.Decimal `json:"amount"`
}

// ProcessPaymentOutput resultado del pago.
type ProcessPaymentOutput struct {
	TransactionID string          `json:"transactionId"`
	OrderID       string          `json:"orderId"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
