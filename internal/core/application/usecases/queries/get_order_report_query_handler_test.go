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

func TestGetOrderReportQueryHandler_Handle_EmptyLedger(t *testing.T) {
	ctx := context.Background()
	readModel := &fakeReadModel{}

	h := queries.NewGetOrderReportQueryHandler(readModel)
	response, err := h.Handle(ctx, queries.NewGetOrderReportQuery())
	require.NoError(t, err)
	assert.Zero(t, response.TotalOrders)
	assert.Empty(t, response.TopItems)
}

func TestGetOrderReportQueryHandler_Handle_CountsRepeatsWithinOneOrder(t *testing.T) {
	ctx := context.Background()
	alice := newCustomerAccount(t, "Alice", "hunter2")
	eatery, itemIDs := newEateryAccount(t, "Pizza House", "Margherita", "Calzone")

	o := newPlacedOrder(
		t, alice.ID(), eatery.ID(),
		[]kernel.UUID{itemIDs[0], itemIDs[0], itemIDs[1]},
		time.Now(),
	)

	readModel := &fakeReadModel{
		accounts: []*account.Account{alice, eatery},
		orders:   []*order.Order{o},
	}

	h := queries.NewGetOrderReportQueryHandler(readModel)
	response, err := h.Handle(ctx, queries.NewGetOrderReportQuery())
	require.NoError(t, err)
	assert.Equal(t, 1, response.TotalOrders)
	require.Len(t, response.TopItems, 2)
	assert.Equal(t, queries.ItemCount{Name: "Margherita", Count: 2}, response.TopItems[0])
	assert.Equal(t, queries.ItemCount{Name: "Calzone", Count: 1}, response.TopItems[1])
}

func TestGetOrderReportQueryHandler_Handle_CapsRankingAtFive(t *testing.T) {
	ctx := context.Background()
	alice := newCustomerAccount(t, "Alice", "hunter2")
	eatery, itemIDs := newEateryAccount(
		t, "Pizza House",
		"Margherita", "Calzone", "Tiramisu", "Nigiri", "Ramen", "Burger",
	)

	orders := make([]*order.Order, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		orders = append(orders, newPlacedOrder(
			t, alice.ID(), eatery.ID(), []kernel.UUID{itemID}, time.Now(),
		))
	}

	readModel := &fakeReadModel{
		accounts: []*account.Account{alice, eatery},
		orders:   orders,
	}

	h := queries.NewGetOrderReportQueryHandler(readModel)
	response, err := h.Handle(ctx, queries.NewGetOrderReportQuery())
	require.NoError(t, err)
	assert.Equal(t, 6, response.TotalOrders)
	assert.Len(t, response.TopItems, 5)
}

func TestGetOrderReportQueryHandler_Handle_TiesKeepFirstAppearanceOrder(t *testing.T) {
	ctx := context.Background()
	alice := newCustomerAccount(t, "Alice", "hunter2")
	eatery, itemIDs := newEateryAccount(t, "Pizza House", "Calzone", "Margherita")

	// Calzone appears first in the ledger, both dishes tie at one
	first := newPlacedOrder(t, alice.ID(), eatery.ID(), []kernel.UUID{itemIDs[0]}, time.Now())
	second := newPlacedOrder(t, alice.ID(), eatery.ID(), []kernel.UUID{itemIDs[1]}, time.Now())

	readModel := &fakeReadModel{
		accounts: []*account.Account{alice, eatery},
		orders:   []*order.Order{first, second},
	}

	h := queries.NewGetOrderReportQueryHandler(readModel)
	response, err := h.Handle(ctx, queries.NewGetOrderReportQuery())
	require.NoError(t, err)
	require.Len(t, response.TopItems, 2)
	assert.Equal(t, "Calzone", response.TopItems[0].Name)
	assert.Equal(t, "Margherita", response.TopItems[1].Name)
}

func TestGetOrderReportQuery_NotConstructed(t *testing.T) {
	query := queries.GetOrderReportQuery{}
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderReportQueryIsNotConstructed)
}
