package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ecommerce-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.True(t, cfg.DB.RunMigrations)
	assert.True(t, cfg.Payment.MinApprovedAmount.Equal(decimal.NewFromInt(100)))
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_RUN_MIGRATIONS", "false")
	t.Setenv("PAYMENT_MIN_APPROVED_AMOUNT", "25.50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.DB.RunMigrations)
	assert.True(t, cfg.Payment.MinApprovedAmount.Equal(decimal.RequireFromString("25.50")))
}

func TestLoad_MontoInvalido(t *testing.T) {
	t.Setenv("PAYMENT_MIN_APPROVED_AMOUNT", "abc")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_MontoCeroSeRespeta(t *testing.T) {
	t.Setenv("PAYMENT_MIN_APPROVED_AMOUNT", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Payment.MinApprovedAmount.IsZero())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "shop", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/shop?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
