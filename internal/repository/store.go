package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store groups the repositories sharing one database handle. Inside Atomic
// the handle is the transaction, so every repository call joins it.
type Store struct {
	db *gorm.DB

	Users    *UserRepository
	Profiles *ProfileRepository
	Orders   *OrderRepository
	Offers   *OfferRepository
}

func NewStore(db *gorm.DB) *Store {
	offers := NewOfferRepository(db)
	orders := NewOrderRepository(db, offers)
	profiles := NewProfileRepository(db, orders)
	users := NewUserRepository(db, profiles)

	return &Store{
		db:       db,
		Users:    users,
		Profiles: profiles,
		Orders:   orders,
		Offers:   offers,
	}
}

// Atomic runs fn in a transaction bound to ctx. Any error rolls back every
// write made through the Store passed to fn.
func (s *Store) Atomic(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// SyncSequences moves postgres serial sequences past rows inserted with
// explicit ids. Other dialects allocate from MAX(id) already.
func (s *Store) SyncSequences(ctx context.Context) error {
	for _, table := range []string{"users", "orders", "offers"} {
		if err := syncSequence(ctx, s.db, table); err != nil {
			return err
		}
	}
	return nil
}

func syncSequence(ctx context.Context, db *gorm.DB, table string) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	stmt := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`,
		table,
	)
	if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
		return fmt.Errorf("sync %s sequence: %w", table, err)
	}
	return nil
}
