package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/orders-service/internal/model"
)

func TestSyncRoleProjectionIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := &model.User{ID: 4, FirstName: "A", LastName: "B", Role: strPtr(model.RoleExecutor)}
	require.NoError(t, f.store.Users.Create(ctx, user))

	require.NoError(t, SyncRoleProjection(ctx, f.store, user))
	require.NoError(t, SyncRoleProjection(ctx, f.store, user))

	customer, executor := f.profiles(t, 4)
	assert.False(t, customer)
	assert.True(t, executor)

	user.Role = nil
	require.NoError(t, SyncRoleProjection(ctx, f.store, user))

	customer, executor = f.profiles(t, 4)
	assert.False(t, customer)
	assert.False(t, executor)
}

func TestOfferForAssignedExecutor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Users.Create(ctx, &model.User{ID: 2, FirstName: "E", LastName: "X"}))
	require.NoError(t, f.store.Profiles.CreateExecutor(ctx, 2))

	unassigned := &model.Order{Name: "Unassigned"}
	require.NoError(t, f.store.Orders.Create(ctx, unassigned))
	require.NoError(t, OfferForAssignedExecutor(ctx, f.store, unassigned))

	assigned := &model.Order{Name: "Assigned", ExecutorID: uintPtr(2)}
	require.NoError(t, f.store.Orders.Create(ctx, assigned))
	require.NoError(t, OfferForAssignedExecutor(ctx, f.store, assigned))

	offers, err := f.store.Offers.ListByOrder(ctx, assigned.ID)
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, uint(2), *offers[0].ExecutorID)

	offers, err = f.store.Offers.ListByOrder(ctx, unassigned.ID)
	require.NoError(t, err)
	assert.Empty(t, offers)
}
