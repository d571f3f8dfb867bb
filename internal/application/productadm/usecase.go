// Package productadm casos de uso de administración de productos.
package productadm

import (
	"context"
	"strings"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	productdomain "github.com/jhoicas/ecommerce-api/internal/domain/productadm"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// AddProductUseCase registra un producto con su stock inicial.
type AddProductUseCase struct {
	repo productdomain.Gateway
}

// NewAddProductUseCase construye el caso de uso.
func NewAddProductUseCase(repo productdomain.Gateway) *AddProductUseCase {
	return &AddProductUseCase{repo: repo}
}

// Execute exige purchasePrice y stock; salesPrice es opcional.
func (uc *AddProductUseCase) Execute(ctx context.Context, in dto.AddProductInput) (*dto.AddProductOutput, error) {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.PurchasePrice == nil {
		missing = append(missing, "purchasePrice")
	}
	if in.Stock == nil {
		missing = append(missing, "stock")
	}
	if len(missing) > 0 {
		return nil, domain.Validation("product: missing %s", strings.Join(missing, ", "))
	}

	p, err := productdomain.New(productdomain.Props{
		ID:            shared.ID(in.ID),
		Name:          in.Name,
		Description:   in.Description,
		PurchasePrice: *in.PurchasePrice,
		SalesPrice:    in.SalesPrice,
		Stock:         *in.Stock,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Add(ctx, p); err != nil {
		return nil, err
	}
	return &dto.AddProductOutput{
		ID:            p.ID().String(),
		Name:          p.Name,
		Description:   p.Description,
		PurchasePrice: p.PurchasePrice,
		SalesPrice:    p.SalesPrice,
		Stock:         p.Stock,
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}, nil
}

// CheckStockUseCase consulta el stock disponible.
type CheckStockUseCase struct {
	repo productdomain.Gateway
}

// NewCheckStockUseCase construye el caso de uso.
func NewCheckStockUseCase(repo productdomain.Gateway) *CheckStockUseCase {
	return &CheckStockUseCase{repo: repo}
}

func (uc *CheckStockUseCase) Execute(ctx context.Context, in dto.CheckStockInput) (*dto.CheckStockOutput, error) {
	p, err := uc.repo.Find(ctx, shared.ID(in.ProductID))
	if err != nil {
		return nil, err
	}
	return &dto.CheckStockOutput{ProductID: p.ID().String(), Stock: p.Stock}, nil
}
