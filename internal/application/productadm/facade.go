package productadm

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	productdomain "github.com/jhoicas/ecommerce-api/internal/domain/productadm"
)

// Facade expone AddProduct y CheckStock.
type Facade struct {
	add   *AddProductUseCase
	stock *CheckStockUseCase
}

func NewFacade(repo productdomain.Gateway) *Facade {
	return &Facade{
		add:   NewAddProductUseCase(repo),
		stock: NewCheckStockUseCase(repo),
	}
}

func (f *Facade) AddProduct(ctx context.Context, in dto.AddProductInput) (*dto.AddProductOutput, error) {
	return f.add.Execute(ctx, in)
}

func (f *Facade) CheckStock(ctx context.Context, in dto.CheckStockInput) (*dto.CheckStockOutput, error) {
	return f.stock.Execute(ctx, in)
}
