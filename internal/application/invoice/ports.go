package invoice

import (
	"context"

	invoicedomain "github.com/jhoicas/ecommerce-api/internal/domain/invoice"
)

// InvoicePDFGenerator genera la representación gráfica (PDF) de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, inv *invoicedomain.Invoice) ([]byte, error)
}

// InvoiceXMLBuilder serializa la factura a XML y devuelve el digest de su forma canónica.
type InvoiceXMLBuilder interface {
	BuildInvoiceXML(ctx context.Context, inv *invoicedomain.Invoice) (doc []byte, digest string, err error)
}
