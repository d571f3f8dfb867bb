package checkout

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	checkoutdomain "github.com/jhoicas/ecommerce-api/internal/domain/checkout"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// FindOrderUseCase consulta un pedido persistido.
type FindOrderUseCase struct {
	orders checkoutdomain.Gateway
}

func NewFindOrderUseCase(orders checkoutdomain.Gateway) *FindOrderUseCase {
	return &FindOrderUseCase{orders: orders}
}

func (uc *FindOrderUseCase) Execute(ctx context.Context, in dto.FindOrderInput) (*dto.OrderOutput, error) {
	order, err := uc.orders.FindOrder(ctx, shared.ID(in.ID))
	if err != nil {
		return nil, err
	}
	products := make([]dto.OrderProductOutput, 0, len(order.Products))
	for _, p := range order.Products {
		products = append(products, dto.OrderProductOutput{
			ProductID:  p.ID().String(),
			Name:       p.Name,
			SalesPrice: p.SalesPrice,
		})
	}
	return &dto.OrderOutput{
		ID:        order.ID().String(),
		ClientID:  order.Client.ID().String(),
		Status:    order.Status(),
		Total:     order.Total(),
		Products:  products,
		CreatedAt: order.CreatedAt(),
	}, nil
}
