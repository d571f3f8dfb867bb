package invoice

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	invoicedomain "github.com/jhoicas/ecommerce-api/internal/domain/invoice"
)

// Facade expone Generate y Find; el checkout la usa para emitir facturas.
type Facade struct {
	generate *GenerateInvoiceUseCase
	find     *FindInvoiceUseCase
}

func NewFacade(repo invoicedomain.Gateway) *Facade {
	return &Facade{
		generate: NewGenerateInvoiceUseCase(repo),
		find:     NewFindInvoiceUseCase(repo),
	}
}

func (f *Facade) Generate(ctx context.Context, in dto.GenerateInvoiceInput) (*dto.GenerateInvoiceOutput, error) {
	return f.generate.Execute(ctx, in)
}

func (f *Facade) Find(ctx context.Context, in dto.FindInvoiceInput) (*dto.FindInvoiceOutput, error) {
	return f.find.Execute(ctx, in)
}
