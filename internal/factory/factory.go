// Package factory arma las fachadas de cada módulo sobre repositorios PostgreSQL.
package factory

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/application/catalog"
	"github.com/jhoicas/ecommerce-api/internal/application/checkout"
	"github.com/jhoicas/ecommerce-api/internal/application/clientadm"
	"github.com/jhoicas/ecommerce-api/internal/application/invoice"
	"github.com/jhoicas/ecommerce-api/internal/application/payment"
	"github.com/jhoicas/ecommerce-api/internal/application/productadm"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/pdf"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/xmldoc"
)

func NewClientAdmFacade(q postgres.Querier) *clientadm.Facade {
	return clientadm.NewFacade(postgres.NewClientRepository(q))
}

func NewProductAdmFacade(q postgres.Querier) *productadm.Facade {
	return productadm.NewFacade(postgres.NewProductAdmRepository(q))
}

func NewCatalogFacade(q postgres.Querier) *catalog.Facade {
	return catalog.NewFacade(postgres.NewCatalogRepository(q))
}

func NewInvoiceFacade(q postgres.Querier) *invoice.Facade {
	return invoice.NewFacade(postgres.NewInvoiceRepository(q))
}

func NewPaymentFacade(q postgres.Querier, minApproved decimal.Decimal) *payment.Facade {
	return payment.NewFacade(postgres.NewTransactionRepository(q), minApproved)
}

// NewInvoiceDocuments PDF con maroto y XML con etree/c14n. seller aparece en la cabecera del PDF.
func NewInvoiceDocuments(q postgres.Querier, seller, currency string) *invoice.DocumentsUseCase {
	return invoice.NewDocumentsUseCase(
		postgres.NewInvoiceRepository(q),
		pdf.NewMarotoPDFGenerator(seller),
		xmldoc.NewBuilder(currency),
	)
}

// NewCheckoutFacade las lecturas (cliente, stock, catálogo) van contra el pool;
// pago, factura y pedido se escriben en la transacción del TxRunner.
func NewCheckoutFacade(pool *pgxpool.Pool, minApproved decimal.Decimal) *checkout.Facade {
	place := checkout.NewPlaceOrderUseCase(
		NewClientAdmFacade(pool),
		NewProductAdmFacade(pool),
		NewCatalogFacade(pool),
		postgres.NewTxRunner(pool),
		WriteFacades(minApproved),
	)
	return checkout.NewFacade(place, checkout.NewFindOrderUseCase(postgres.NewOrderRepository(pool)))
}

// WriteFacades liga facturación y pagos a los repositorios de la transacción en curso.
func WriteFacades(minApproved decimal.Decimal) checkout.WriteFacades {
	return func(repos checkout.Repositories) (checkout.InvoiceGenerator, checkout.PaymentProcessor) {
		return invoice.NewFacade(repos.Invoices), payment.NewFacade(repos.Payments, minApproved)
	}
}
