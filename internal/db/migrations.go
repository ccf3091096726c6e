package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/nurpe/orders-service/internal/model"
)

var migrationModels = []interface{}{
	&model.User{},
	&model.Customer{},
	&model.Executor{},
	&model.Order{},
	&model.Offer{},
}

var migrationStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_orders_executor_id ON orders (executor_id);`,
	`CREATE INDEX IF NOT EXISTS idx_offers_order_id ON offers (order_id);`,
	`CREATE INDEX IF NOT EXISTS idx_offers_executor_id ON offers (executor_id);`,
	`CREATE INDEX IF NOT EXISTS idx_users_role ON users (role);`,
}

func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(migrationModels...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
