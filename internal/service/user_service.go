package service

import (
	"context"

	"github.com/nurpe/orders-service/internal/model"
	"github.com/nurpe/orders-service/internal/repository"
)

type UserService struct {
	store *repository.Store
	hooks []UserHook
}

func NewUserService(store *repository.Store) *UserService {
	return &UserService{
		store: store,
		hooks: []UserHook{SyncRoleProjection},
	}
}

// UserInput is the full set of writable user fields. ID is honoured on
// create only; updates are keyed by the path id.
type UserInput struct {
	ID        uint
	FirstName string
	LastName  string
	Age       *int
	Email     *string
	Phone     *string
	Role      *string
}

func (in UserInput) validate() error {
	var user model.User
	in.apply(&user)
	return ValidateUser(&user)
}

func (in UserInput) apply(user *model.User) {
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	user.Age = in.Age
	user.Email = in.Email
	user.Phone = in.Phone
	user.Role = in.Role
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.store.Users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.store.Users.Get(ctx, id)
	if err != nil {
		return nil, lookup(err, "user", id)
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, in UserInput) (*model.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	user := &model.User{ID: in.ID}
	in.apply(user)

	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		if err := tx.Users.Create(ctx, user); err != nil {
			return err
		}
		return s.runHooks(ctx, tx, user)
	})
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, in UserInput) (*model.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var user *model.User
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		existing, err := tx.Users.Get(ctx, id)
		if err != nil {
			return lookup(err, "user", id)
		}
		in.apply(existing)
		if err := tx.Users.Update(ctx, existing); err != nil {
			return err
		}
		user = existing
		return s.runHooks(ctx, tx, existing)
	})
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	err := s.store.Atomic(ctx, func(tx *repository.Store) error {
		return tx.Users.Delete(ctx, id)
	})
	if err != nil {
		return lookup(err, "user", id)
	}
	return nil
}

func (s *UserService) runHooks(ctx context.Context, tx *repository.Store, user *model.User) error {
	for _, hook := range s.hooks {
		if err := hook(ctx, tx, user); err != nil {
			return err
		}
	}
	return nil
}
