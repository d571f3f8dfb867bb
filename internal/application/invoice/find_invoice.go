package invoice

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	invoicedomain "github.com/jhoicas/ecommerce-api/internal/domain/invoice"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

// FindInvoiceUseCase reconstruye una factura persistida.
type FindInvoiceUseCase struct {
	repo invoicedomain.Gateway
}

func NewFindInvoiceUseCase(repo invoicedomain.Gateway) *FindInvoiceUseCase {
	return &FindInvoiceUseCase{repo: repo}
}

// Execute devuelve NotFound "Invoice not found" si no existe.
func (uc *FindInvoiceUseCase) Execute(ctx context.Context, in dto.FindInvoiceInput) (*dto.FindInvoiceOutput, error) {
	inv, err := uc.repo.Find(ctx, shared.ID(in.ID))
	if err != nil {
		return nil, err
	}
	return &dto.FindInvoiceOutput{
		ID:       inv.ID().String(),
		Name:     inv.Name,
		Document: inv.Document,
		Address: dto.AddressDTO{
			Street:     inv.Address.Street(),
			Number:     inv.Address.Number(),
			Complement: inv.Address.Complement(),
			City:       inv.Address.City(),
			State:      inv.Address.State(),
			ZipCode:    inv.Address.ZipCode(),
		},
		Items:     toItemDTOs(inv.Items),
		Total:     inv.Total(),
		CreatedAt: inv.CreatedAt(),
	}, nil
}
