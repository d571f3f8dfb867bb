// Package checkout orquesta la compra: cliente, stock, catálogo, pago, factura y pedido.
package checkout

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	checkoutdomain "github.com/jhoicas/ecommerce-api/internal/domain/checkout"
	paymentdomain "github.com/jhoicas/ecommerce-api/internal/domain/payment"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// PlaceOrderUseCase caso de uso del checkout.
type PlaceOrderUseCase struct {
	clients ClientFinder
	stock   StockChecker
	catalog CatalogFinder
	tx      CheckoutTxRunner
	writers WriteFacades
}

// NewPlaceOrderUseCase construye el caso de uso inyectando fachadas y runner transaccional.
func NewPlaceOrderUseCase(
	clients ClientFinder,
	stock StockChecker,
	catalog CatalogFinder,
	tx CheckoutTxRunner,
	writers WriteFacades,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		clients: clients,
		stock:   stock,
		catalog: catalog,
		tx:      tx,
		writers: writers,
	}
}

// Execute valida el pedido, procesa el pago y, si es aprobado, emite la factura.
// Pago, factura y pedido se escriben en la misma transacción.
//
// Retorna:
//   - NotFound "Client not found" si el cliente no existe.
//   - Validation "No products selected" si la lista está vacía.
//   - Validation "Product <id> is not available in stock" si stock <= 0.
//   - NotFound "Product not found" si el producto no está en el catálogo.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, in dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error) {
	// ── 1. Cliente ────────────────────────────────────────────────────────────
	clientOut, err := uc.clients.Find(ctx, dto.FindClientInput{ID: in.ClientID})
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.NotFound("Client not found")
		}
		return nil, fmt.Errorf("checkout: obtener cliente: %w", err)
	}

	// ── 2. Productos ──────────────────────────────────────────────────────────
	if len(in.Products) == 0 {
		return nil, domain.Validation("No products selected")
	}
	if err := uc.validateStock(ctx, in.Products); err != nil {
		return nil, err
	}
	products, err := uc.resolveProducts(ctx, in.Products)
	if err != nil {
		return nil, err
	}

	// ── 3. Agregado ───────────────────────────────────────────────────────────
	client, err := toCheckoutClient(clientOut)
	if err != nil {
		return nil, err
	}
	order, err := checkoutdomain.NewOrder(checkoutdomain.OrderProps{Client: client, Products: products})
	if err != nil {
		return nil, err
	}

	// ── 4. Pago + factura + pedido (transacción) ──────────────────────────────
	var invoiceID *string
	err = uc.tx.RunCheckout(ctx, func(repos Repositories) error {
		invoices, payments := uc.writers(repos)

		payment, err := payments.Process(ctx, dto.ProcessPaymentInput{
			OrderID: order.ID().String(),
			Amount:  order.Total(),
		})
		if err != nil {
			return fmt.Errorf("checkout: procesar pago: %w", err)
		}

		if payment.Status == paymentdomain.StatusApproved {
			inv, err := invoices.Generate(ctx, invoiceInput(client, order))
			if err != nil {
				return fmt.Errorf("checkout: generar factura: %w", err)
			}
			invoiceID = &inv.ID
			order.Approve()
		} else {
			order.Decline()
		}

		if err := repos.Orders.AddOrder(ctx, order); err != nil {
			return fmt.Errorf("checkout: guardar pedido: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	refs := make([]dto.OrderProductRef, 0, len(order.Products))
	for _, p := range order.Products {
		refs = append(refs, dto.OrderProductRef{ProductID: p.ID().String()})
	}
	return &dto.PlaceOrderOutput{
		ID:        order.ID().String(),
		InvoiceID: invoiceID,
		Status:    order.Status(),
		Total:     order.Total(),
		Products:  refs,
	}, nil
}

func (uc *PlaceOrderUseCase) validateStock(ctx context.Context, refs []dto.OrderProductRef) error {
	for _, ref := range refs {
		out, err := uc.stock.CheckStock(ctx, dto.CheckStockInput{ProductID: ref.ProductID})
		if err != nil {
			return err
		}
		if out.Stock <= 0 {
			return domain.Validation("Product %s is not available in stock", ref.ProductID)
		}
	}
	return nil
}

func (uc *PlaceOrderUseCase) resolveProducts(ctx context.Context, refs []dto.OrderProductRef) ([]checkoutdomain.Product, error) {
	products := make([]checkoutdomain.Product, 0, len(refs))
	for _, ref := range refs {
		out, err := uc.catalog.Find(ctx, dto.FindCatalogProductInput{ID: ref.ProductID})
		if err != nil {
			if domain.KindOf(err) == domain.KindNotFound {
				return nil, domain.NotFound("Product not found")
			}
			return nil, fmt.Errorf("checkout: obtener producto: %w", err)
		}
		p, err := checkoutdomain.NewProduct(checkoutdomain.ProductProps{
			ID:          shared.ID(out.ID),
			Name:        out.Name,
			Description: out.Description,
			SalesPrice:  out.SalesPrice,
		})
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func toCheckoutClient(c *dto.ClientOutput) (*checkoutdomain.Client, error) {
	addr, err := shared.NewAddress(c.Address.Street, c.Address.Number, c.Address.Complement,
		c.Address.City, c.Address.State, c.Address.ZipCode)
	if err != nil {
		return nil, err
	}
	return checkoutdomain.NewClient(checkoutdomain.ClientProps{
		ID:        shared.ID(c.ID),
		Name:      c.Name,
		Email:     c.Email,
		Document:  c.Document,
		Address:   addr,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	})
}

// invoiceInput una línea por producto, con el ID del producto y su precio de venta.
func invoiceInput(client *checkoutdomain.Client, order *checkoutdomain.Order) dto.GenerateInvoiceInput {
	items := make([]dto.InvoiceItemDTO, 0, len(order.Products))
	for _, p := range order.Products {
		items = append(items, dto.InvoiceItemDTO{ID: p.ID().String(), Name: p.Name, Price: p.SalesPrice})
	}
	return dto.GenerateInvoiceInput{
		Name:       client.Name,
		Document:   client.Document,
		Street:     client.Address.Street(),
		Number:     client.Address.Number(),
		Complement: client.Address.Complement(),
		City:       client.Address.City(),
		State:      client.Address.State(),
		ZipCode:    client.Address.ZipCode(),
		Items:      items,
	}
}
