// Package dbtest opens throwaway in-memory stores for tests.
package dbtest

import (
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/orders-service/internal/config"
	"github.com/nurpe/orders-service/internal/db"
)

func Config() *config.Config {
	return &config.Config{
		Environment: "test",
		DB: config.DBConfig{
			Driver:       config.DriverSQLite,
			DSN:          "file::memory:?_pragma=foreign_keys(1)",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}
}

// New returns a migrated, empty store that is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	database, err := db.New(Config(), zerolog.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})
	return database
}
