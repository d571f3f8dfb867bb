package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/invoice"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

var _ invoice.Gateway = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de invoice.Gateway (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Generate persiste cabecera y líneas en una transacción (savepoint si q ya es una tx).
// Las líneas se envían en un pgx.Batch y conservan su orden en la columna position.
func (r *InvoiceRepo) Generate(ctx context.Context, inv *invoice.Invoice) error {
	tx, err := r.q.Begin(ctx)
	if err != nil {
		return domain.Persistence("begin invoice", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const header = `
		INSERT INTO invoices (id, name, document, street, number, complement, city, state, zip_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(ctx, header,
		inv.ID(), inv.Name, inv.Document,
		inv.Address.Street(), inv.Address.Number(), inv.Address.Complement(),
		inv.Address.City(), inv.Address.State(), inv.Address.ZipCode(),
		inv.CreatedAt(), inv.UpdatedAt(),
	)
	if err != nil {
		return writeError("insert invoice", "invoice", inv.ID().String(), err)
	}

	const item = `
		INSERT INTO invoice_items (invoice_id, position, id, name, price)
		VALUES ($1, $2, $3, $4, $5)`
	batch := &pgx.Batch{}
	for i, it := range inv.Items {
		batch.Queue(item, inv.ID(), i, it.ID(), it.Name, it.Price)
	}
	br := tx.SendBatch(ctx, batch)
	for range inv.Items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return domain.Persistence("insert invoice item", err)
		}
	}
	if err := br.Close(); err != nil {
		return domain.Persistence("insert invoice items", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Persistence("commit invoice", err)
	}
	return nil
}

// Find reconstruye la factura con sus líneas en orden.
func (r *InvoiceRepo) Find(ctx context.Context, id shared.ID) (*invoice.Invoice, error) {
	const header = `
		SELECT id, name, document, street, number, complement, city, state, zip_code, created_at, updated_at
		FROM invoices WHERE id = $1`
	var (
		props                                        invoice.Props
		street, number, complement, city, state, zip string
	)
	err := r.q.QueryRow(ctx, header, id).Scan(
		&props.ID, &props.Name, &props.Document,
		&street, &number, &complement, &city, &state, &zip,
		&props.CreatedAt, &props.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Invoice not found")
		}
		return nil, domain.Persistence("get invoice", err)
	}
	props.Address, err = shared.NewAddress(street, number, complement, city, state, zip)
	if err != nil {
		return nil, err
	}

	const items = `SELECT id, name, price FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, items, id)
	if err != nil {
		return nil, domain.Persistence("list invoice items", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			itemID shared.ID
			name   string
			price  decimal.Decimal
		)
		if err := rows.Scan(&itemID, &name, &price); err != nil {
			return nil, domain.Persistence("scan invoice item", err)
		}
		it, err := invoice.NewItem(invoice.ItemProps{ID: itemID, Name: name, Price: price})
		if err != nil {
			return nil, err
		}
		props.Items = append(props.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list invoice items", err)
	}
	return invoice.New(props)
}
