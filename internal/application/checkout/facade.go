package checkout

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
)

// Facade expone PlaceOrder y FindOrder.
type Facade struct {
	place *PlaceOrderUseCase
	find  *FindOrderUseCase
}

func NewFacade(place *PlaceOrderUseCase, find *FindOrderUseCase) *Facade {
	return &Facade{place: place, find: find}
}

func (f *Facade) PlaceOrder(ctx context.Context, in dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error) {
	return f.place.Execute(ctx, in)
}

func (f *Facade) FindOrder(ctx context.Context, in dto.FindOrderInput) (*dto.OrderOutput, error) {
	return f.find.Execute(ctx, in)
}
