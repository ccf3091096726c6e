package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nurpe/orders-service/internal/config"
)

// New opens the configured store, tunes the pool and applies migrations.
func New(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, err := openDialector(cfg.DB)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	database, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DB.Driver, err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("obtain sql.DB: %w", err)
	}

	if isMemory(cfg.DB) {
		// every connection to :memory: sees its own empty database,
		// so the single connection must never be closed or replaced
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	} else {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping %s: %w", cfg.DB.Driver, err)
	}

	if err := runMigrations(database); err != nil {
		return nil, err
	}

	log.Info().
		Str("driver", cfg.DB.Driver).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("database ready")
	return database, nil
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openDialector(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func isMemory(cfg config.DBConfig) bool {
	return cfg.Driver == config.DriverSQLite && strings.Contains(cfg.DSN, ":memory:")
}
