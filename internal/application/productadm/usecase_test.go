package productadm

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	productdomain "github.com/jhoicas/ecommerce-api/internal/domain/productadm"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

type mockProductRepo struct {
	byID map[shared.ID]*productdomain.Product
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{byID: map[shared.ID]*productdomain.Product{}}
}

func (m *mockProductRepo) Add(_ context.Context, p *productdomain.Product) error {
	if _, ok := m.byID[p.ID()]; ok {
		return domain.Conflict("product %s already exists", p.ID())
	}
	m.byID[p.ID()] = p
	return nil
}

func (m *mockProductRepo) Find(_ context.Context, id shared.ID) (*productdomain.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, domain.NotFound("Product not found")
	}
	return p, nil
}

func ptrDec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func ptrInt(v int) *int { return &v }

func TestAddProduct_SalesPricePorDefecto(t *testing.T) {
	f := NewFacade(newMockProductRepo())

	out, err := f.AddProduct(context.Background(), dto.AddProductInput{
		ID:            "p1",
		Name:          "Product 1",
		Description:   "Description 1",
		PurchasePrice: ptrDec("100"),
		Stock:         ptrInt(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "p1", out.ID)
	assert.True(t, out.SalesPrice.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 10, out.Stock)
}

func TestAddProduct_CamposFaltantes(t *testing.T) {
	f := NewFacade(newMockProductRepo())

	_, err := f.AddProduct(context.Background(), dto.AddProductInput{Name: "x", Description: "y"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "purchasePrice")
	assert.Contains(t, err.Error(), "stock")
}

func TestAddProduct_StockCeroEsValido(t *testing.T) {
	f := NewFacade(newMockProductRepo())

	out, err := f.AddProduct(context.Background(), dto.AddProductInput{
		Name: "x", Description: "y", PurchasePrice: ptrDec("1"), Stock: ptrInt(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Stock)
}

func TestAddProduct_Duplicado(t *testing.T) {
	f := NewFacade(newMockProductRepo())
	in := dto.AddProductInput{
		ID: "p1", Name: "x", Description: "y", PurchasePrice: ptrDec("1"), Stock: ptrInt(1),
	}
	_, err := f.AddProduct(context.Background(), in)
	require.NoError(t, err)

	_, err = f.AddProduct(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCheckStock(t *testing.T) {
	f := NewFacade(newMockProductRepo())
	_, err := f.AddProduct(context.Background(), dto.AddProductInput{
		ID: "p1", Name: "x", Description: "y", PurchasePrice: ptrDec("1"), Stock: ptrInt(7),
	})
	require.NoError(t, err)

	out, err := f.CheckStock(context.Background(), dto.CheckStockInput{ProductID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, &dto.CheckStockOutput{ProductID: "p1", Stock: 7}, out)

	_, err = f.CheckStock(context.Background(), dto.CheckStockInput{ProductID: "missing"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
