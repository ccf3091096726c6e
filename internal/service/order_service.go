package service

import (
	"context"

	"github.com/nurpe/orders-service/internal/model"
	"github.com/nurpe/orders-service/internal/repository"
)

type OrderService struct {
	store *repository.Store
	hooks []OrderHook
}

func NewOrderService(store *repository.Store) *OrderService {
	return &OrderService{
		store: store,
		hooks: []OrderHook{OfferForAssignedExecutor},
	}
}

type OrderInput struct {
	ID          uint
	Name        string
	Description *string
	StartDate   *string
	EndDate     *string
	Address     *string
	Price       *int
	CustomerID  *uint
	ExecutorID  *uint
}

func (in OrderInput) validate() error {
	var order model.Order
	in.apply(&order)
	return ValidateOrder(&order)
}

func (in OrderInput) apply(order *model.Order) {
	order.Name = in.Name
	order.Description = in.Description
	order.StartDate = in.StartDate
	order.EndDate = in.EndDate
	order.Address = in.Address
	order.Price = in.Price
	order.CustomerID = optionalID(in.CustomerID)
	order.ExecutorID = optionalID(in.ExecutorID)
}

func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	return s.store.Orders.List(ctx)
}

func (s *OrderService) Get(ctx context.Context, id uint) (*model.Order, error) {
	order, err := s.store.Orders.Get(ctx, id)
	if err != nil {
		return nil, lookup(err, "order", id)
	}
	return order, nil
}

func (s *OrderService) Create(ctx context.Context, in OrderInput) (*model.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	order := &model.Order{ID: in.ID}
	in.apply(order)

	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		if err := tx.Orders.Create(ctx, order); err != nil {
			return err
		}
		for _, hook := range s.hooks {
			if err := hook(ctx, tx, order); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return order, nil
}

func (s *OrderService) Update(ctx context.Context, id uint, in OrderInput) (*model.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var order *model.Order
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		existing, err := tx.Orders.Get(ctx, id)
		if err != nil {
			return lookup(err, "order", id)
		}
		in.apply(existing)
		if err := tx.Orders.Update(ctx, existing); err != nil {
			return err
		}
		order = existing
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		return tx.Orders.Delete(ctx, id)
	})
	if err != nil {
		return lookup(err, "order", id)
	}
	return nil
}

// optionalID treats a zero reference as absent.
func optionalID(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}
