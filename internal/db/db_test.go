package db

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/orders-service/internal/config"
)

func memoryConfig() *config.Config {
	return &config.Config{
		DB: config.DBConfig{
			Driver: config.DriverSQLite,
			DSN:    "file::memory:?_pragma=foreign_keys(1)",
		},
	}
}

func TestNewCreatesSchema(t *testing.T) {
	database, err := New(memoryConfig(), zerolog.Nop())
	require.NoError(t, err)
	defer Close(database)

	for _, table := range []string{"users", "customers", "executors", "orders", "offers"} {
		assert.True(t, database.Migrator().HasTable(table), table)
	}
	assert.True(t, database.Migrator().HasIndex("orders", "idx_orders_customer_id"))
	assert.True(t, database.Migrator().HasIndex("offers", "idx_offers_order_id"))
}

func TestOpenDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := openDialector(config.DBConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestIsMemory(t *testing.T) {
	assert.True(t, isMemory(memoryConfig().DB))
	assert.False(t, isMemory(config.DBConfig{Driver: config.DriverSQLite, DSN: "orders.db"}))
	assert.False(t, isMemory(config.DBConfig{Driver: config.DriverPostgres, DSN: "postgres://x/:memory:"}))
}
