package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/checkout"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

var _ checkout.Gateway = (*OrderRepo)(nil)

// OrderRepo implementación de checkout.Gateway (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// AddOrder persiste el pedido con el snapshot del cliente y de sus productos.
func (r *OrderRepo) AddOrder(ctx context.Context, o *checkout.Order) error {
	const header = `
		INSERT INTO orders (
			id, client_id, client_name, client_email, client_document,
			client_street, client_number, client_complement, client_city, client_state, client_zip_code,
			status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	c, a := o.Client, o.Client.Address
	if _, err := r.q.Exec(ctx, header,
		o.ID(), c.ID(), c.Name, c.Email, c.Document,
		a.Street(), a.Number(), a.Complement(), a.City(), a.State(), a.ZipCode(),
		o.Status(), o.CreatedAt(), o.UpdatedAt(),
	); err != nil {
		return writeError("insert order", "order", o.ID().String(), err)
	}

	const item = `
		INSERT INTO order_items (order_id, position, product_id, name, description, sales_price)
		VALUES ($1, $2, $3, $4, $5, $6)`
	batch := &pgx.Batch{}
	for i, p := range o.Products {
		batch.Queue(item, o.ID(), i, p.ID(), p.Name, p.Description, p.SalesPrice)
	}
	br := r.q.SendBatch(ctx, batch)
	defer func() { _ = br.Close() }()
	for range o.Products {
		if _, err := br.Exec(); err != nil {
			return domain.Persistence("insert order item", err)
		}
	}
	return nil
}

// FindOrder reconstruye el pedido tal como quedó en el checkout: los cambios
// posteriores del cliente en client-adm no lo afectan.
func (r *OrderRepo) FindOrder(ctx context.Context, id shared.ID) (*checkout.Order, error) {
	const header = `
		SELECT id, status, created_at, updated_at,
		       client_id, client_name, client_email, client_document,
		       client_street, client_number, client_complement, client_city, client_state, client_zip_code
		FROM orders
		WHERE id = $1`
	var (
		props                                        checkout.OrderProps
		client                                       checkout.ClientProps
		street, number, complement, city, state, zip string
	)
	err := r.q.QueryRow(ctx, header, id).Scan(
		&props.ID, &props.Status, &props.CreatedAt, &props.UpdatedAt,
		&client.ID, &client.Name, &client.Email, &client.Document,
		&street, &number, &complement, &city, &state, &zip,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Order not found")
		}
		return nil, domain.Persistence("get order", err)
	}
	if client.Address, err = shared.NewAddress(street, number, complement, city, state, zip); err != nil {
		return nil, err
	}
	if props.Client, err = checkout.NewClient(client); err != nil {
		return nil, err
	}

	const items = `
		SELECT product_id, name, description, sales_price
		FROM order_items WHERE order_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, items, id)
	if err != nil {
		return nil, domain.Persistence("list order items", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			pp    checkout.ProductProps
			price decimal.Decimal
		)
		if err := rows.Scan(&pp.ID, &pp.Name, &pp.Description, &price); err != nil {
			return nil, domain.Persistence("scan order item", err)
		}
		pp.SalesPrice = price
		p, err := checkout.NewProduct(pp)
		if err != nil {
			return nil, err
		}
		props.Products = append(props.Products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list order items", err)
	}
	return checkout.NewOrder(props)
}
