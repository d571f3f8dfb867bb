package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItemDTO línea de factura. ID opcional en la entrada.
type InvoiceItemDTO struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// GenerateInvoiceInput datos planos para generar una factura.
type GenerateInvoiceInput struct {
	Name       string           `json:"name"`
	Document   string           `json:"document"`
	Street     string           `json:"street"`
	Number     string           `json:"number"`
	Complement string           `json:"complement"`
	City       string           `json:"city"`
	State      string           `json:"state"`
	ZipCode    string           `json:"zipCode"`
	Items      []InvoiceItemDTO `json:"items"`
}

// GenerateInvoiceOutput factura generada (forma plana).
type GenerateInvoiceOutput struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Document   string           `json:"document"`
	Street     string           `json:"street"`
	Number     string           `json:"number"`
	Complement string           `json:"complement"`
	City       string           `json:"city"`
	State      string           `json:"state"`
	ZipCode    string           `json:"zipCode"`
	Items      []InvoiceItemDTO `json:"items"`
	Total      decimal.Decimal  `json:"total"`
}

// FindInvoiceInput búsqueda por ID.
type FindInvoiceInput struct {
	ID string `json:"id"`
}

// FindInvoiceOutput respuesta de GET /invoice/:id.
type FindInvoiceOutput struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Document  string           `json:"document"`
	Address   AddressDTO       `json:"address"`
	Items     []InvoiceItemDTO `json:"items"`
	Total     decimal.Decimal  `json:"total"`
	CreatedAt time.Time        `json:"createdAt"`
}

// InvoiceDocument documento renderizado (PDF o XML).
type InvoiceDocument struct {
	Filename    string
	ContentType string
	Content     []byte
	// Digest SHA-256 base64 de la forma canónica (solo XML).
	Digest string
}
