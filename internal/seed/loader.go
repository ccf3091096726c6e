package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/nurpe/orders-service/internal/model"
	"github.com/nurpe/orders-service/internal/repository"
	"github.com/nurpe/orders-service/internal/service"
)

const (
	UsersFile  = "users.json"
	OrdersFile = "orders.json"
	OffersFile = "offers.json"
)

// ErrSeed marks failures that must stop the process before it serves.
var ErrSeed = errors.New("seed failed")

type Loader struct {
	store *repository.Store
	dir   string
	log   zerolog.Logger
}

func NewLoader(store *repository.Store, dir string, log zerolog.Logger) *Loader {
	return &Loader{store: store, dir: dir, log: log}
}

type Result struct {
	Users     int
	Customers int
	Executors int
	Orders    int
	Offers    int
}

// Load reads every fixture first and then inserts users, role rows, orders and
// offers in that order within a single transaction.
func (l *Loader) Load(ctx context.Context) (Result, error) {
	start := time.Now()

	var (
		users  []model.User
		orders []model.Order
		offers []model.Offer
		result Result
	)
	if err := l.readFixture(UsersFile, &users); err != nil {
		return result, err
	}
	if err := l.readFixture(OrdersFile, &orders); err != nil {
		return result, err
	}
	if err := l.readFixture(OffersFile, &offers); err != nil {
		return result, err
	}
	if err := validateFixtures(users, orders); err != nil {
		return result, err
	}

	err := l.store.Atomic(ctx, func(tx *repository.Store) error {
		for i := range users {
			if err := tx.Users.Create(ctx, &users[i]); err != nil {
				return fmt.Errorf("users[%d]: %w", i, err)
			}
		}
		result.Users = len(users)

		customerIDs, err := tx.Users.ListIDsByRole(ctx, model.RoleCustomer)
		if err != nil {
			return fmt.Errorf("list customers: %w", err)
		}
		for _, id := range customerIDs {
			if err := tx.Profiles.CreateCustomer(ctx, id); err != nil {
				return fmt.Errorf("customer %d: %w", id, err)
			}
		}
		result.Customers = len(customerIDs)

		executorIDs, err := tx.Users.ListIDsByRole(ctx, model.RoleExecutor)
		if err != nil {
			return fmt.Errorf("list executors: %w", err)
		}
		for _, id := range executorIDs {
			if err := tx.Profiles.CreateExecutor(ctx, id); err != nil {
				return fmt.Errorf("executor %d: %w", id, err)
			}
		}
		result.Executors = len(executorIDs)

		for i := range orders {
			if err := tx.Orders.Create(ctx, &orders[i]); err != nil {
				return fmt.Errorf("orders[%d]: %w", i, err)
			}
		}
		result.Orders = len(orders)

		for i := range offers {
			if err := tx.Offers.Create(ctx, &offers[i]); err != nil {
				return fmt.Errorf("offers[%d]: %w", i, err)
			}
		}
		result.Offers = len(offers)

		return tx.SyncSequences(ctx)
	})
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrSeed, err)
	}

	l.log.Info().
		Str("dir", l.dir).
		Int("users", result.Users).
		Int("customers", result.Customers).
		Int("executors", result.Executors).
		Int("orders", result.Orders).
		Int("offers", result.Offers).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("fixtures loaded")
	return result, nil
}

// validateFixtures holds fixture rows to the same field rules as API writes.
func validateFixtures(users []model.User, orders []model.Order) error {
	for i := range users {
		if err := service.ValidateUser(&users[i]); err != nil {
			return fmt.Errorf("%w: %s users[%d]: %w", ErrSeed, UsersFile, i, err)
		}
	}
	for i := range orders {
		if err := service.ValidateOrder(&orders[i]); err != nil {
			return fmt.Errorf("%w: %s orders[%d]: %w", ErrSeed, OrdersFile, i, err)
		}
	}
	return nil
}

func (l *Loader) readFixture(name string, dest interface{}) error {
	path := filepath.Join(l.dir, name)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrSeed, path, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrSeed, path, err)
	}
	return nil
}
