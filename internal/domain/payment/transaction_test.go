package payment_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/payment"
)

func TestProcess(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, payment.StatusDeclined},
		{99, payment.StatusDeclined},
		{100, payment.StatusApproved},
		{250, payment.StatusApproved},
	}
	for _, tc := range cases {
		tx, err := payment.NewTransaction(payment.Props{OrderID: "o1", Amount: decimal.NewFromInt(tc.amount)})
		require.NoError(t, err)
		assert.Equal(t, payment.StatusPending, tx.Status())

		tx.Process(payment.DefaultMinApprovedAmount)
		assert.Equal(t, tc.want, tx.Status(), "amount %d", tc.amount)
	}
}

func TestNewTransaction_Invalida(t *testing.T) {
	_, err := payment.NewTransaction(payment.Props{Amount: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = payment.NewTransaction(payment.Props{OrderID: "o1", Amount: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProcess_UmbralCero(t *testing.T) {
	tx, err := payment.NewTransaction(payment.Props{OrderID: "o1", Amount: decimal.Zero})
	require.NoError(t, err)

	tx.Process(decimal.Zero)
	assert.Equal(t, payment.StatusApproved, tx.Status())
}
