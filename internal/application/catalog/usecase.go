// Package catalog consultas del catálogo de la tienda.
package catalog

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	catalogdomain "github.com/jhoicas/ecommerce-api/internal/domain/catalog"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// Facade expone Find y FindAll sobre el catálogo.
type Facade struct {
	repo catalogdomain.Gateway
}

// NewFacade construye la fachada del catálogo.
func NewFacade(repo catalogdomain.Gateway) *Facade {
	return &Facade{repo: repo}
}

// Find devuelve NotFound "Product not found" si el producto no existe.
func (f *Facade) Find(ctx context.Context, in dto.FindCatalogProductInput) (*dto.CatalogProductOutput, error) {
	p, err := f.repo.Find(ctx, shared.ID(in.ID))
	if err != nil {
		return nil, err
	}
	out := toOutput(p)
	return &out, nil
}

// FindAll lista todos los productos; nunca devuelve un slice nil.
func (f *Facade) FindAll(ctx context.Context) (*dto.CatalogListOutput, error) {
	list, err := f.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogProductOutput, 0, len(list))
	for _, p := range list {
		out = append(out, toOutput(p))
	}
	return &dto.CatalogListOutput{Products: out}, nil
}

func toOutput(p *catalogdomain.Product) dto.CatalogProductOutput {
	return dto.CatalogProductOutput{
		ID:          p.ID().String(),
		Name:        p.Name,
		Description: p.Description,
		SalesPrice:  p.SalesPrice,
	}
}
