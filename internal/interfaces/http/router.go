package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Products  ProductAdmService
	Clients   ClientAdmService
	Catalog   CatalogService
	Checkout  CheckoutService
	Invoices  InvoiceService
	Documents InvoiceDocuments
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.Products)
	products.Post("/", productHandler.Create)
	products.Get("/:id/stock", productHandler.Stock)

	clients := app.Group("/clients")
	clientHandler := NewClientHandler(deps.Clients)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)

	catalog := app.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.Catalog)
	catalog.Get("/products", catalogHandler.List)
	catalog.Get("/products/:id", catalogHandler.GetByID)

	checkout := app.Group("/checkout")
	checkoutHandler := NewCheckoutHandler(deps.Checkout)
	checkout.Post("/", checkoutHandler.PlaceOrder)
	checkout.Get("/:id", checkoutHandler.GetByID)

	invoices := app.Group("/invoice")
	invoiceHandler := NewInvoiceHandler(deps.Invoices, deps.Documents)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/xml", invoiceHandler.DownloadXML)
}
