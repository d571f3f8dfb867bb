package checkout

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	checkoutdomain "github.com/jhoicas/ecommerce-api/internal/domain/checkout"
	invoicedomain "github.com/jhoicas/ecommerce-api/internal/domain/invoice"
	paymentdomain "github.com/jhoicas/ecommerce-api/internal/domain/payment"
)

// ClientFinder fachada de administración de clientes.
type ClientFinder interface {
	Find(ctx context.Context, in dto.FindClientInput) (*dto.ClientOutput, error)
}

// StockChecker fachada de administración de productos.
type StockChecker interface {
	CheckStock(ctx context.Context, in dto.CheckStockInput) (*dto.CheckStockOutput, error)
}

// CatalogFinder fachada del catálogo de la tienda.
type CatalogFinder interface {
	Find(ctx context.Context, in dto.FindCatalogProductInput) (*dto.CatalogProductOutput, error)
}

// InvoiceGenerator fachada de facturación.
type InvoiceGenerator interface {
	Generate(ctx context.Context, in dto.GenerateInvoiceInput) (*dto.GenerateInvoiceOutput, error)
}

// PaymentProcessor fachada de pagos.
type PaymentProcessor interface {
	Process(ctx context.Context, in dto.ProcessPaymentInput) (*dto.ProcessPaymentOutput, error)
}

// Repositories repositorios ligados a la transacción del checkout.
type Repositories struct {
	Orders   checkoutdomain.Gateway
	Invoices invoicedomain.Gateway
	Payments paymentdomain.Gateway
}

// CheckoutTxRunner ejecuta fn dentro de una transacción; si fn retorna error se hace rollback.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(repos Repositories) error) error
}

// WriteFacades liga las fachadas de facturación y pagos a los repositorios transaccionales.
type WriteFacades func(repos Repositories) (InvoiceGenerator, PaymentProcessor)
