package postgres

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/domain"
)

func TestWriteError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505"}
	err := writeError("insert client", "client", "c1", dup)
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, "client c1 already exists", err.Error())

	other := errors.New("connection refused")
	err = writeError("insert client", "client", "c1", other)
	require.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, other)
}

func TestMigrationsEmbebidas(t *testing.T) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ddl, err := migrationsFS.ReadFile(names[0])
	require.NoError(t, err)
	for _, table := range []string{"clients", "products", "orders", "order_items", "invoices", "invoice_items", "transactions"} {
		assert.Contains(t, string(ddl), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
