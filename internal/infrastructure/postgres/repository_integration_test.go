//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/application/checkout"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	checkoutdomain "github.com/jhoicas/ecommerce-api/internal/domain/checkout"
	"github.com/jhoicas/ecommerce-api/internal/domain/clientadm"
	"github.com/jhoicas/ecommerce-api/internal/domain/invoice"
	"github.com/jhoicas/ecommerce-api/internal/domain/payment"
	"github.com/jhoicas/ecommerce-api/internal/domain/productadm"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
	"github.com/jhoicas/ecommerce-api/internal/infrastructure/postgres"
)

func mustAddress(t *testing.T) shared.Address {
	t.Helper()
	addr, err := shared.NewAddress("Street 1", "1", "", "City", "ST", "00000")
	require.NoError(t, err)
	return addr
}

func seedClient(t *testing.T, ctx context.Context) *clientadm.Client {
	t.Helper()
	c, err := clientadm.New(clientadm.Props{
		Name: "Client 1", Email: "c1@example.com", Document: "123", Address: mustAddress(t),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.NewClientRepository(testPool).Add(ctx, c))
	return c
}

func TestClientRepo(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewClientRepository(testPool)
	c := seedClient(t, ctx)

	got, err := repo.Find(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, "Street 1", got.Address.Street())
	assert.Empty(t, got.Address.Complement())

	err = repo.Add(ctx, c)
	require.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = repo.Find(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductRepos(t *testing.T) {
	ctx := context.Background()
	adm := postgres.NewProductAdmRepository(testPool)
	cat := postgres.NewCatalogRepository(testPool)

	sales := decimal.RequireFromString("150.50")
	p, err := productadm.New(productadm.Props{
		Name: "Product 1", Description: "d", PurchasePrice: decimal.NewFromInt(100), SalesPrice: &sales, Stock: 4,
	})
	require.NoError(t, err)
	require.NoError(t, adm.Add(ctx, p))

	got, err := adm.Find(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, 4, got.Stock)
	assert.True(t, got.SalesPrice.Equal(sales))

	cp, err := cat.Find(ctx, p.ID())
	require.NoError(t, err)
	assert.True(t, cp.SalesPrice.Equal(sales))

	all, err := cat.FindAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	_, err = cat.Find(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found", err.Error())
}

func TestInvoiceRepo_GenerateFind(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewInvoiceRepository(testPool)

	i1, err := invoice.NewItem(invoice.ItemProps{ID: "p1", Name: "Item 1", Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	i2, err := invoice.NewItem(invoice.ItemProps{ID: "p1", Name: "Item 1 again", Price: decimal.RequireFromString("2.50")})
	require.NoError(t, err)
	inv, err := invoice.New(invoice.Props{Name: "N", Document: "D", Address: mustAddress(t), Items: []invoice.Item{i1, i2}})
	require.NoError(t, err)

	require.NoError(t, repo.Generate(ctx, inv))

	got, err := repo.Find(ctx, inv.ID())
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Item 1", got.Items[0].Name)
	assert.Equal(t, "Item 1 again", got.Items[1].Name)
	assert.True(t, got.Total().Equal(decimal.RequireFromString("12.50")))

	_, err = repo.Find(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Invoice not found", err.Error())
}

func TestTxRunner_RollbackDescartaEscrituras(t *testing.T) {
	ctx := context.Background()
	client := seedClient(t, ctx)
	runner := postgres.NewTxRunner(testPool)

	cc, err := checkoutdomain.NewClient(checkoutdomain.ClientProps{
		ID: client.ID(), Name: client.Name, Address: client.Address,
	})
	require.NoError(t, err)
	prod, err := checkoutdomain.NewProduct(checkoutdomain.ProductProps{ID: "px", Name: "X", SalesPrice: decimal.NewFromInt(5)})
	require.NoError(t, err)
	order, err := checkoutdomain.NewOrder(checkoutdomain.OrderProps{Client: cc, Products: []checkoutdomain.Product{prod, prod}})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = runner.RunCheckout(ctx, func(repos checkout.Repositories) error {
		tx, err := payment.NewTransaction(payment.Props{OrderID: order.ID().String(), Amount: order.Total()})
		require.NoError(t, err)
		require.NoError(t, repos.Payments.Save(ctx, tx))
		require.NoError(t, repos.Orders.AddOrder(ctx, order))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = postgres.NewOrderRepository(testPool).FindOrder(ctx, order.ID())
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = runner.RunCheckout(ctx, func(repos checkout.Repositories) error {
		order.Approve()
		return repos.Orders.AddOrder(ctx, order)
	})
	require.NoError(t, err)

	got, err := postgres.NewOrderRepository(testPool).FindOrder(ctx, order.ID())
	require.NoError(t, err)
	assert.Equal(t, checkoutdomain.StatusApproved, got.Status())
	assert.Len(t, got.Products, 2)
	assert.True(t, got.Total().Equal(decimal.NewFromInt(10)))
	assert.Equal(t, client.ID(), got.Client.ID())
	assert.Equal(t, client.Name, got.Client.Name)

	// El pedido conserva los datos del cliente del momento del checkout.
	_, err = testPool.Exec(ctx, `UPDATE clients SET name = 'Renamed', city = 'Elsewhere' WHERE id = $1`, client.ID())
	require.NoError(t, err)
	got, err = postgres.NewOrderRepository(testPool).FindOrder(ctx, order.ID())
	require.NoError(t, err)
	assert.Equal(t, client.Name, got.Client.Name)
	assert.Equal(t, "City", got.Client.Address.City())
}
