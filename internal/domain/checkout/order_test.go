package checkout_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/checkout"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

func newClient(t *testing.T) *checkout.Client {
	t.Helper()
	c, err := checkout.NewClient(checkout.ClientProps{ID: "c1", Name: "Client 1", Email: "c@x.com", Document: "000"})
	require.NoError(t, err)
	return c
}

func newProduct(t *testing.T, id string, price int64) checkout.Product {
	t.Helper()
	p, err := checkout.NewProduct(checkout.ProductProps{ID: shared.ID(id), Name: "Product " + id, SalesPrice: decimal.NewFromInt(price)})
	require.NoError(t, err)
	return p
}

func TestNewOrder_TotalYEstado(t *testing.T) {
	order, err := checkout.NewOrder(checkout.OrderProps{
		Client:   newClient(t),
		Products: []checkout.Product{newProduct(t, "a", 100), newProduct(t, "b", 250)},
	})
	require.NoError(t, err)

	assert.False(t, order.ID().IsZero())
	assert.Equal(t, checkout.StatusPending, order.Status())
	assert.True(t, decimal.NewFromInt(350).Equal(order.Total()))
	assert.Len(t, order.Products, 2)
}

func TestOrder_ApproveDecline(t *testing.T) {
	order, err := checkout.NewOrder(checkout.OrderProps{Client: newClient(t), Products: []checkout.Product{newProduct(t, "a", 1)}})
	require.NoError(t, err)
	id := order.ID()

	order.Approve()
	assert.Equal(t, checkout.StatusApproved, order.Status())
	order.Decline()
	assert.Equal(t, checkout.StatusDeclined, order.Status())
	assert.Equal(t, id, order.ID())
}

func TestNewOrder_SinProductos(t *testing.T) {
	_, err := checkout.NewOrder(checkout.OrderProps{Client: newClient(t)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.EqualError(t, err, "No products selected")
}

func TestNewOrder_EstadoDesconocido(t *testing.T) {
	_, err := checkout.NewOrder(checkout.OrderProps{
		Client:   newClient(t),
		Products: []checkout.Product{newProduct(t, "a", 1)},
		Status:   "shipped",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewClient_RequiereID(t *testing.T) {
	_, err := checkout.NewClient(checkout.ClientProps{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewProduct_RequiereID(t *testing.T) {
	_, err := checkout.NewProduct(checkout.ProductProps{Name: "x", SalesPrice: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
