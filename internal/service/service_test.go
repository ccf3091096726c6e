package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/orders-service/internal/db/dbtest"
	"github.com/nurpe/orders-service/internal/model"
	"github.com/nurpe/orders-service/internal/repository"
)

type fixture struct {
	store  *repository.Store
	users  *UserService
	orders *OrderService
	offers *OfferService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store := repository.NewStore(dbtest.New(t))
	return fixture{
		store:  store,
		users:  NewUserService(store),
		orders: NewOrderService(store),
		offers: NewOfferService(store),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func uintPtr(u uint) *uint    { return &u }

func userInput(id uint, role, email string) UserInput {
	return UserInput{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Doe",
		Age:       intPtr(30),
		Email:     strPtr(email),
		Role:      strPtr(role),
	}
}

func (f fixture) profiles(t *testing.T, id uint) (customer, executor bool) {
	t.Helper()
	ctx := context.Background()
	customer, err := f.store.Profiles.HasCustomer(ctx, id)
	require.NoError(t, err)
	executor, err = f.store.Profiles.HasExecutor(ctx, id)
	require.NoError(t, err)
	return customer, executor
}

func TestCreateUserDerivesRoleRow(t *testing.T) {
	tests := []struct {
		role         string
		wantCustomer bool
		wantExecutor bool
	}{
		{role: model.RoleCustomer, wantCustomer: true},
		{role: model.RoleExecutor, wantExecutor: true},
		{role: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			f := newFixture(t)

			user, err := f.users.Create(context.Background(), userInput(0, tt.role, tt.role+"@example.com"))
			require.NoError(t, err)
			require.NotZero(t, user.ID)

			customer, executor := f.profiles(t, user.ID)
			assert.Equal(t, tt.wantCustomer, customer)
			assert.Equal(t, tt.wantExecutor, executor)
		})
	}
}

func TestCreateUserAgeBoundary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := userInput(0, model.RoleCustomer, "young@example.com")
	in.Age = intPtr(17)
	_, err := f.users.Create(ctx, in)
	assert.ErrorIs(t, err, ErrConstraintViolation)
	assert.Equal(t, KindConstraintViolation, Kind(err))
	assert.Contains(t, err.Error(), model.UserAgeCheck)

	in.Age = intPtr(18)
	_, err = f.users.Create(ctx, in)
	assert.NoError(t, err)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, userInput(0, model.RoleCustomer, "same@example.com"))
	require.NoError(t, err)

	_, err = f.users.Create(ctx, userInput(0, model.RoleExecutor, "same@example.com"))
	require.ErrorIs(t, err, ErrConstraintViolation)
	assert.Contains(t, err.Error(), "email")

	users, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCreateUserRejectsMalformedPayload(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := userInput(0, model.RoleCustomer, "a@example.com")
	in.FirstName = ""
	_, err := f.users.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = userInput(0, model.RoleCustomer, "a@example.com")
	in.Phone = strPtr("+1234567890123")
	_, err = f.users.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateUserIsFullOverwriteKeyedByPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.users.Create(ctx, UserInput{
		FirstName: "Old",
		LastName:  "Name",
		Age:       intPtr(40),
		Email:     strPtr("old@example.com"),
		Phone:     strPtr("111"),
		Role:      strPtr("admin"),
	})
	require.NoError(t, err)

	update := UserInput{
		ID:        999,
		FirstName: "New",
		LastName:  "Person",
		Email:     strPtr("new@example.com"),
		Role:      strPtr("admin"),
	}
	_, err = f.users.Update(ctx, created.ID, update)
	require.NoError(t, err)

	got, err := f.users.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "New", got.FirstName)
	assert.Equal(t, "Person", got.LastName)
	assert.Nil(t, got.Age)
	assert.Nil(t, got.Phone)
	assert.Equal(t, "new@example.com", *got.Email)

	_, err = f.users.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUserRoleChangeMovesProjection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Create(ctx, userInput(0, model.RoleCustomer, "c@example.com"))
	require.NoError(t, err)
	_, err = f.orders.Create(ctx, OrderInput{Name: "Clean flat", CustomerID: uintPtr(user.ID)})
	require.NoError(t, err)

	_, err = f.users.Update(ctx, user.ID, userInput(0, model.RoleExecutor, "c@example.com"))
	require.NoError(t, err)

	customer, executor := f.profiles(t, user.ID)
	assert.False(t, customer)
	assert.True(t, executor)

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestUpdateAndDeleteMissingUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Update(ctx, 5, userInput(0, model.RoleCustomer, "x@example.com"))
	assert.ErrorIs(t, err, ErrNotFound)

	err = f.users.Delete(ctx, 5)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, KindNotFound, Kind(err))
}

func TestCreateOrderWithExecutorCreatesOffer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, userInput(1, model.RoleCustomer, "c@example.com"))
	require.NoError(t, err)
	_, err = f.users.Create(ctx, userInput(2, model.RoleExecutor, "e@example.com"))
	require.NoError(t, err)

	order, err := f.orders.Create(ctx, OrderInput{
		ID:         5,
		Name:       "Fix sink",
		Price:      intPtr(1500),
		CustomerID: uintPtr(1),
		ExecutorID: uintPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), order.ID)

	offers, err := f.offers.List(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, uint(5), *offers[0].OrderID)
	assert.Equal(t, uint(2), *offers[0].ExecutorID)
}

func TestCreateOrderWithoutExecutorCreatesNoOffer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.orders.Create(ctx, OrderInput{Name: "Walk dog"})
	require.NoError(t, err)
	_, err = f.orders.Create(ctx, OrderInput{Name: "Feed cat", ExecutorID: uintPtr(0)})
	require.NoError(t, err)

	offers, err := f.offers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestCreateOrderFailureLeavesNoRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.orders.Create(ctx, OrderInput{Name: "Ghost job", ExecutorID: uintPtr(77)})
	require.ErrorIs(t, err, ErrConstraintViolation)

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	_, err = f.orders.Create(ctx, OrderInput{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteUserCascadesToOrdersAndOffers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, userInput(1, model.RoleCustomer, "c@example.com"))
	require.NoError(t, err)
	_, err = f.users.Create(ctx, userInput(2, model.RoleExecutor, "e@example.com"))
	require.NoError(t, err)
	_, err = f.orders.Create(ctx, OrderInput{ID: 5, Name: "Fix sink", CustomerID: uintPtr(1), ExecutorID: uintPtr(2)})
	require.NoError(t, err)
	_, err = f.orders.Create(ctx, OrderInput{ID: 6, Name: "Fix roof", ExecutorID: uintPtr(2)})
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(ctx, 1))

	orders, err := f.orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, uint(6), orders[0].ID)

	offers, err := f.offers.List(ctx)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, uint(6), *offers[0].OrderID)

	require.NoError(t, f.users.Delete(ctx, 2))

	orders, err = f.orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
	offers, err = f.offers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestOrderUpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, userInput(2, model.RoleExecutor, "e@example.com"))
	require.NoError(t, err)
	order, err := f.orders.Create(ctx, OrderInput{
		Name:        "Fix sink",
		Description: strPtr("kitchen"),
		ExecutorID:  uintPtr(2),
	})
	require.NoError(t, err)

	updated, err := f.orders.Update(ctx, order.ID, OrderInput{ID: 123, Name: "Fix sink and tap", Address: strPtr("Main st 1")})
	require.NoError(t, err)
	assert.Equal(t, order.ID, updated.ID)

	got, err := f.orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fix sink and tap", got.Name)
	assert.Nil(t, got.Description)
	assert.Nil(t, got.ExecutorID)
	assert.Equal(t, "Main st 1", *got.Address)

	require.NoError(t, f.orders.Delete(ctx, order.ID))
	offers, err := f.offers.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)

	_, err = f.orders.Get(ctx, order.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOfferLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Create(ctx, userInput(2, model.RoleExecutor, "e@example.com"))
	require.NoError(t, err)
	_, err = f.users.Create(ctx, userInput(3, model.RoleExecutor, "f@example.com"))
	require.NoError(t, err)
	order, err := f.orders.Create(ctx, OrderInput{Name: "Move piano"})
	require.NoError(t, err)

	offer, err := f.offers.Create(ctx, OfferInput{OrderID: uintPtr(order.ID), ExecutorID: uintPtr(2)})
	require.NoError(t, err)

	_, err = f.offers.Update(ctx, offer.ID, OfferInput{OrderID: uintPtr(order.ID), ExecutorID: uintPtr(3)})
	require.NoError(t, err)

	got, err := f.offers.Get(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), *got.ExecutorID)

	_, err = f.offers.Create(ctx, OfferInput{OrderID: uintPtr(404)})
	assert.ErrorIs(t, err, ErrConstraintViolation)

	require.NoError(t, f.offers.Delete(ctx, offer.ID))
	assert.ErrorIs(t, f.offers.Delete(ctx, offer.ID), ErrNotFound)
}

func TestKind(t *testing.T) {
	assert.Equal(t, KindInvalidInput, Kind(ErrInvalidInput))
	assert.Equal(t, KindInternal, Kind(assert.AnError))
}

func TestValidateFixtureRows(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"valid user", ValidateUser(&model.User{FirstName: "A", LastName: "B", Phone: strPtr("123456789012"), Age: intPtr(18)}), nil},
		{"blank first name", ValidateUser(&model.User{FirstName: " ", LastName: "B"}), ErrInvalidInput},
		{"missing last name", ValidateUser(&model.User{FirstName: "A"}), ErrInvalidInput},
		{"long phone", ValidateUser(&model.User{FirstName: "A", LastName: "B", Phone: strPtr("1234567890123")}), ErrInvalidInput},
		{"underage", ValidateUser(&model.User{FirstName: "A", LastName: "B", Age: intPtr(17)}), ErrConstraintViolation},
		{"valid order", ValidateOrder(&model.Order{Name: "Fix sink"}), nil},
		{"unnamed order", ValidateOrder(&model.Order{}), ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want == nil {
				assert.NoError(t, tt.err)
				return
			}
			assert.ErrorIs(t, tt.err, tt.want)
		})
	}
}
