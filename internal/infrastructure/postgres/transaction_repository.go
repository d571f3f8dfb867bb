package postgres

import (
	"context"

	"github.com/jhoicas/ecommerce-api/internal/domain/payment"
)

var _ payment.Gateway = (*TransactionRepo)(nil)

// TransactionRepo persiste las transacciones de pago.
type TransactionRepo struct {
	q Querier
}

func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Save inserta la transacción ya procesada.
func (r *TransactionRepo) Save(ctx context.Context, t *payment.Transaction) error {
	const query = `
		INSERT INTO transactions (id, order_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, t.ID(), t.OrderID, t.Amount, t.Status(), t.CreatedAt(), t.UpdatedAt())
	if err != nil {
		return writeError("insert transaction", "transaction", t.ID().String(), err)
	}
	return nil
}
