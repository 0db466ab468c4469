package queries_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetEateryOrdersQuery_InvalidEateryID(t *testing.T) {
	_, err := queries.NewGetEateryOrdersQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetEateryOrdersQueryHandler_Handle_ShowsCustomerNames(t *testing.T) {
	ctx := context.Background()
	alice := newCustomerAccount(t, "Alice", "hunter2")
	bob := newCustomerAccount(t, "Bob", "swordfish")
	eatery, itemIDs := newEateryAccount(t, "Pizza House", "Margherita")
	other, otherItemIDs := newEateryAccount(t, "Sushi Corner", "Nigiri")

	first := newPlacedOrder(t, alice.ID(), eatery.ID(), itemIDs, time.Now())
	second := newPlacedOrder(t, bob.ID(), eatery.ID(), itemIDs, time.Now())
	foreign := newPlacedOrder(t, alice.ID(), other.ID(), otherItemIDs, time.Now())

	readModel := &fakeReadModel{
		accounts: []*account.Account{alice, bob, eatery, other},
		orders:   []*order.Order{first, second, foreign},
	}

	h := queries.NewGetEateryOrdersQueryHandler(readModel)
	query, err := queries.NewGetEateryOrdersQuery(eatery.ID())
	require.NoError(t, err)

	views, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID(), views[0].ID)
	assert.Equal(t, "Alice", views[0].Counterparty)
	assert.Equal(t, second.ID(), views[1].ID)
	assert.Equal(t, "Bob", views[1].Counterparty)
}

func TestGetEateryOrdersQueryHandler_Handle_KeepsStoredStatusForAdvancing(t *testing.T) {
	ctx := context.Background()
	alice := newCustomerAccount(t, "Alice", "hunter2")
	eatery, itemIDs := newEateryAccount(t, "Pizza House", "Margherita")

	o := newPlacedOrder(t, alice.ID(), eatery.ID(), itemIDs, time.Now())
	require.True(t, o.Advance(order.EnRoute))

	readModel := &fakeReadModel{
		accounts: []*account.Account{alice, eatery},
		orders:   []*order.Order{o},
	}

	h := queries.NewGetEateryOrdersQueryHandler(readModel)
	query, err := queries.NewGetEateryOrdersQuery(eatery.ID())
	require.NoError(t, err)

	views, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, order.EnRoute, views[0].Status)
	assert.Equal(t, order.DisplayEnRoute.String(), views[0].DisplayStatus)
}
