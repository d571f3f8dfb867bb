// Package invoice casos de uso de facturación: generación, consulta y documentos.
package invoice

import (
	"context"
	"fmt"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	invoicedomain "github.com/jhoicas/ecommerce-api/internal/domain/invoice"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// GenerateInvoiceUseCase construye y persiste una factura a partir de datos planos.
type GenerateInvoiceUseCase struct {
	repo invoicedomain.Gateway
}

// NewGenerateInvoiceUseCase construye el caso de uso.
func NewGenerateInvoiceUseCase(repo invoicedomain.Gateway) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{repo: repo}
}

// Execute genera los IDs faltantes de las líneas y devuelve la factura con su total.
func (uc *GenerateInvoiceUseCase) Execute(ctx context.Context, in dto.GenerateInvoiceInput) (*dto.GenerateInvoiceOutput, error) {
	addr, err := shared.NewAddress(in.Street, in.Number, in.Complement, in.City, in.State, in.ZipCode)
	if err != nil {
		return nil, err
	}
	items := make([]invoicedomain.Item, 0, len(in.Items))
	for _, it := range in.Items {
		item, err := invoicedomain.NewItem(invoicedomain.ItemProps{
			ID:    shared.ID(it.ID),
			Name:  it.Name,
			Price: it.Price,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	inv, err := invoicedomain.New(invoicedomain.Props{
		Name:     in.Name,
		Document: in.Document,
		Address:  addr,
		Items:    items,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Generate(ctx, inv); err != nil {
		return nil, fmt.Errorf("generate invoice: %w", err)
	}

	return &dto.GenerateInvoiceOutput{
		ID:         inv.ID().String(),
		Name:       inv.Name,
		Document:   inv.Document,
		Street:     inv.Address.Street(),
		Number:     inv.Address.Number(),
		Complement: inv.Address.Complement(),
		City:       inv.Address.City(),
		State:      inv.Address.State(),
		ZipCode:    inv.Address.ZipCode(),
		Items:      toItemDTOs(inv.Items),
		Total:      inv.Total(),
	}, nil
}

func toItemDTOs(items []invoicedomain.Item) []dto.InvoiceItemDTO {
	out := make([]dto.InvoiceItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InvoiceItemDTO{ID: it.ID().String(), Name: it.Name, Price: it.Price})
	}
	return out
}
