package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ecommerce-api/internal/domain"
	"github.com/jhoicas/ecommerce-api/internal/domain/catalog"
	"github.com/jhoicas/ecommerce-api/internal/domain/productadm"
	"github.com/jhoicas/ecommerce-api/internal/domain/shared"
)

var (
	_ productadm.Gateway = (*ProductAdmRepo)(nil)
	_ catalog.Gateway    = (*CatalogRepo)(nil)
)

// ProductAdmRepo vista de administración sobre la tabla products.
type ProductAdmRepo struct {
	q Querier
}

// NewProductAdmRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductAdmRepository(q Querier) *ProductAdmRepo {
	return &ProductAdmRepo{q: q}
}

// Add persiste el producto con su stock inicial.
func (r *ProductAdmRepo) Add(ctx context.Context, p *productadm.Product) error {
	const query = `
		INSERT INTO products (id, name, description, purchase_price, sales_price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		p.ID(), p.Name, p.Description, p.PurchasePrice, p.SalesPrice, p.Stock,
		p.CreatedAt(), p.UpdatedAt(),
	)
	if err != nil {
		return writeError("insert product", "product", p.ID().String(), err)
	}
	return nil
}

// Find obtiene el producto con precios y stock.
func (r *ProductAdmRepo) Find(ctx context.Context, id shared.ID) (*productadm.Product, error) {
	const query = `
		SELECT id, name, description, purchase_price, sales_price, stock, created_at, updated_at
		FROM products WHERE id = $1`
	var (
		row   productadm.Props
		sales decimal.Decimal
	)
	err := r.q.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Name, &row.Description, &row.PurchasePrice, &sales, &row.Stock,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Product not found")
		}
		return nil, domain.Persistence("get product", err)
	}
	row.SalesPrice = &sales
	return productadm.New(row)
}

// CatalogRepo vista de solo lectura del catálogo sobre la tabla products.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// FindAll lista el catálogo ordenado por nombre.
func (r *CatalogRepo) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	const query = `SELECT id, name, description, sales_price FROM products ORDER BY name, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, domain.Persistence("list catalog", err)
	}
	defer rows.Close()
	list := make([]*catalog.Product, 0)
	for rows.Next() {
		var (
			id                shared.ID
			name, description string
			price             decimal.Decimal
		)
		if err := rows.Scan(&id, &name, &description, &price); err != nil {
			return nil, domain.Persistence("scan catalog product", err)
		}
		list = append(list, catalog.NewProduct(id, name, description, price))
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("list catalog", err)
	}
	return list, nil
}

// Find obtiene un producto del catálogo.
func (r *CatalogRepo) Find(ctx context.Context, id shared.ID) (*catalog.Product, error) {
	const query = `SELECT id, name, description, sales_price FROM products WHERE id = $1`
	var (
		pid               shared.ID
		name, description string
		price             decimal.Decimal
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&pid, &name, &description, &price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("Product not found")
		}
		return nil, domain.Persistence("get catalog product", err)
	}
	return catalog.NewProduct(pid, name, description, price), nil
}
