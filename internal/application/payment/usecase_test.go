package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/application/dto"
	"github.com/jhoicas/ecommerce-api/internal/domain"
	paymentdomain "github.com/jhoicas/ecommerce-api/internal/domain/payment"
)

type mockTransactionRepo struct {
	saved []*paymentdomain.Transaction
}

func (m *mockTransactionRepo) Save(_ context.Context, tx *paymentdomain.Transaction) error {
	m.saved = append(m.saved, tx)
	return nil
}

func TestProcess_Aprobado(t *testing.T) {
	repo := &mockTransactionRepo{}
	f := NewFacade(repo, paymentdomain.DefaultMinApprovedAmount)

	out, err := f.Process(context.Background(), dto.ProcessPaymentInput{
		OrderID: "o1",
		Amount:  decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	assert.Equal(t, paymentdomain.StatusApproved, out.Status)
	assert.Equal(t, "o1", out.OrderID)
	assert.NotEmpty(t, out.TransactionID)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, out.TransactionID, repo.saved[0].ID().String())
}

func TestProcess_Rechazado(t *testing.T) {
	f := NewFacade(&mockTransactionRepo{}, paymentdomain.DefaultMinApprovedAmount)

	out, err := f.Process(context.Background(), dto.ProcessPaymentInput{
		OrderID: "o1",
		Amount:  decimal.RequireFromString("99.99"),
	})
	require.NoError(t, err)
	assert.Equal(t, paymentdomain.StatusDeclined, out.Status)
}

func TestProcess_UmbralConfigurado(t *testing.T) {
	f := NewFacade(&mockTransactionRepo{}, decimal.NewFromInt(10))

	out, err := f.Process(context.Background(), dto.ProcessPaymentInput{
		OrderID: "o1",
		Amount:  decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, paymentdomain.StatusApproved, out.Status)
}

func TestProcess_MontoInvalido(t *testing.T) {
	repo := &mockTransactionRepo{}
	_, err := NewFacade(repo, paymentdomain.DefaultMinApprovedAmount).Process(context.Background(), dto.ProcessPaymentInput{
		OrderID: "o1",
		Amount:  decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.saved)
}

func TestProcess_UmbralCeroApruebaTodo(t *testing.T) {
	f := NewFacade(&mockTransactionRepo{}, decimal.Zero)

	out, err := f.Process(context.Background(), dto.ProcessPaymentInput{
		OrderID: "o1",
		Amount:  decimal.NewFromInt(40),
	})
	require.NoError(t, err)
	assert.Equal(t, paymentdomain.StatusApproved, out.Status)
}

func TestProcess_MontoCeroSeRechaza(t *testing.T) {
	repo := &mockTransactionRepo{}
	f := NewFacade(repo, paymentdomain.DefaultMinApprovedAmount)

	out, err := f.Process(context.Background(), dto.ProcessPaymentInput{OrderID: "o1", Amount: decimal.Zero})
	require.NoError(t, err)
	assert.Equal(t, paymentdomain.StatusDeclined, out.Status)
	assert.Len(t, repo.saved, 1)
}
