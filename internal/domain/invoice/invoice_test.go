package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/invoice"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

func testAddress(t *testing.T) shared.Address {
	t.Helper()
	addr, err := shared.NewAddress("Street 1", "123", "Complement", "City", "State", "12345-678")
	require.NoError(t, err)
	return addr
}

func testItems(t *testing.T) (invoice.Item, invoice.Item) {
	t.Helper()
	item1, err := invoice.NewItem(invoice.ItemProps{ID: "1", Name: "Item 1", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)
	item2, err := invoice.NewItem(invoice.ItemProps{ID: "2", Name: "Item 2", Price: decimal.NewFromInt(200)})
	require.NoError(t, err)
	return item1, item2
}

func TestNewItem(t *testing.T) {
	item, err := invoice.NewItem(invoice.ItemProps{ID: "1", Name: "Item 1", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)

	assert.Equal(t, shared.ID("1"), item.ID())
	assert.Equal(t, "Item 1", item.Name)
	assert.True(t, decimal.NewFromInt(100).Equal(item.Price))
}

func TestNewItem_SinID(t *testing.T) {
	item, err := invoice.NewItem(invoice.ItemProps{Name: "Item 1", Price: decimal.NewFromInt(100)})
	require.NoError(t, err)

	assert.False(t, item.ID().IsZero())
}

func TestNewItem_Invalido(t *testing.T) {
	_, err := invoice.NewItem(invoice.ItemProps{Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = invoice.NewItem(invoice.ItemProps{Name: "x", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNew(t *testing.T) {
	addr := testAddress(t)
	item1, item2 := testItems(t)

	inv, err := invoice.New(invoice.Props{
		ID:       "1",
		Name:     "Invoice 1",
		Document: "123456789",
		Address:  addr,
		Items:    []invoice.Item{item1, item2},
	})
	require.NoError(t, err)

	assert.Equal(t, shared.ID("1"), inv.ID())
	assert.Equal(t, "Invoice 1", inv.Name)
	assert.Equal(t, "123456789", inv.Document)
	assert.Equal(t, addr, inv.Address)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, item1, inv.Items[0])
	assert.Equal(t, item2, inv.Items[1])
	assert.False(t, inv.CreatedAt().IsZero())
}

func TestTotal(t *testing.T) {
	item1, item2 := testItems(t)
	inv, err := invoice.New(invoice.Props{
		Name:     "Invoice 1",
		Document: "123456789",
		Address:  testAddress(t),
		Items:    []invoice.Item{item1, item2},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(300).Equal(inv.Total()), "total = %s", inv.Total())
}

func TestNew_Invalida(t *testing.T) {
	item1, _ := testItems(t)
	cases := map[string]invoice.Props{
		"sin nombre":    {Document: "1", Address: testAddress(t), Items: []invoice.Item{item1}},
		"sin documento": {Name: "n", Address: testAddress(t), Items: []invoice.Item{item1}},
		"sin dirección": {Name: "n", Document: "1", Items: []invoice.Item{item1}},
		"sin líneas":    {Name: "n", Document: "1", Address: testAddress(t)},
	}
	for name, props := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := invoice.New(props)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
