package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/clientadm"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

var _ clientadm.Gateway = (*ClientRepo)(nil)

// ClientRepo implementación de clientadm.Gateway (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Add persiste un nuevo cliente. ID repetido -> Conflict.
func (r *ClientRepo) Add(ctx context.Context, c *clientadm.Client) error {
	const query = `
		INSERT INTO clients (id, name, email, document, street, number, complement, city, state, zip_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		c.ID(), c.Name, c.Email, c.Document,
		c.Address.Street(), c.Address.Number(), c.Address.Complement(),
		c.Address.City(), c.Address.State(), c.Address.ZipCode(),
		c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return writeError("insert client", "client", c.ID().String(), err)
	}
	return nil
}

// Find obtiene un cliente por ID.
func (r *ClientRepo) Find(ctx context.Context, id shared.ID) (*clientadm.Client, error) {
	const query = `
		SELECT id, name, email, document, street, number, complement, city, state, zip_code, created_at, updated_at
		FROM clients WHERE id = $1`
	var (
		row                                          clientadm.Props
		street, number, complement, city, state, zip string
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Name, &row.Email, &row.Document,
		&street, &number, &complement, &city, &state, &zip,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Client not found")
		}
		return nil, domain.Persistence("get client", err)
	}
	addr, err := shared.NewAddress(street, number, complement, city, state, zip)
	if err != nil {
		return nil, err
	}
	row.Address = addr
	return clientadm.New(row)
}
