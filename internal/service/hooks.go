package service

import (
	"context"

	"github.com/nurpe/orders-service/internal/model"
	"github.com/nurpe/orders-service/internal/repository"
)

// UserHook runs inside the write transaction right after a user row is stored.
type UserHook func(ctx context.Context, tx *repository.Store, user *model.User) error

// OrderHook runs inside the create transaction right after an order row is stored.
type OrderHook func(ctx context.Context, tx *repository.Store, order *model.Order) error

// SyncRoleProjection keeps the customers and executors rows in line with the
// user's role: the matching row is added when missing and the other one is
// removed along with what it owns.
func SyncRoleProjection(ctx context.Context, tx *repository.Store, user *model.User) error {
	isCustomer, err := tx.Profiles.HasCustomer(ctx, user.ID)
	if err != nil {
		return err
	}
	isExecutor, err := tx.Profiles.HasExecutor(ctx, user.ID)
	if err != nil {
		return err
	}

	switch wantCustomer := user.HasRole(model.RoleCustomer); {
	case wantCustomer && !isCustomer:
		if err := tx.Profiles.CreateCustomer(ctx, user.ID); err != nil {
			return err
		}
	case !wantCustomer && isCustomer:
		if err := tx.Profiles.DeleteCustomer(ctx, user.ID); err != nil {
			return err
		}
	}

	switch wantExecutor := user.HasRole(model.RoleExecutor); {
	case wantExecutor && !isExecutor:
		return tx.Profiles.CreateExecutor(ctx, user.ID)
	case !wantExecutor && isExecutor:
		return tx.Profiles.DeleteExecutor(ctx, user.ID)
	}
	return nil
}

// OfferForAssignedExecutor records an offer linking a new order to the
// executor it was created with.
func OfferForAssignedExecutor(ctx context.Context, tx *repository.Store, order *model.Order) error {
	if order.ExecutorID == nil {
		return nil
	}
	orderID := order.ID
	executorID := *order.ExecutorID
	return tx.Offers.Create(ctx, &model.Offer{OrderID: &orderID, ExecutorID: &executorID})
}
