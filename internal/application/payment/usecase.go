// Package payment procesa el pago de los pedidos.
package payment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	paymentdomain "github.com/jhoicas/ecommerce-api/internal/domain/payment"
)

// ProcessPaymentUseCase crea la transacción, decide aprobación y la persiste.
type ProcessPaymentUseCase struct {
	repo        paymentdomain.Gateway
	minApproved decimal.Decimal
}

// NewProcessPaymentUseCase construye el caso de uso. minApproved se usa tal cual: cero aprueba todo pago.
func NewProcessPaymentUseCase(repo paymentdomain.Gateway, minApproved decimal.Decimal) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{repo: repo, minApproved: minApproved}
}

func (uc *ProcessPaymentUseCase) Execute(ctx context.Context, in dto.ProcessPaymentInput) (*dto.ProcessPaymentOutput, error) {
	tx, err := paymentdomain.NewTransaction(paymentdomain.Props{
		OrderID: in.OrderID,
		Amount:  in.Amount,
	})
	if err != nil {
		return nil, err
	}
	tx.Process(uc.minApproved)
	if err := uc.repo.Save(ctx, tx); err != nil {
		return nil, err
	}
	return &dto.ProcessPaymentOutput{
		TransactionID: tx.ID().String(),
		OrderID:       tx.OrderID,
		Amount:        tx.Amount,
		Status:        tx.Status(),
		CreatedAt:     tx.CreatedAt(),
		UpdatedAt:     tx.UpdatedAt(),
	}, nil
}

// Facade punto de entrada del módulo de pagos.
type Facade struct {
	process *ProcessPaymentUseCase
}

func NewFacade(repo paymentdomain.Gateway, minApproved decimal.Decimal) *Facade {
	return &Facade{process: NewProcessPaymentUseCase(repo, minApproved)}
}

func (f *Facade) Process(ctx context.Context, in dto.ProcessPaymentInput) (*dto.ProcessPaymentOutput, error) {
	return f.process.Execute(ctx, in)
}
