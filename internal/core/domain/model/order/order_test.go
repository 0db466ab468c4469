package order_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var basePlacedAt = time.Date(2024, 5, 12, 18, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID()},
		basePlacedAt, 30*time.Minute,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	eateryID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	t.Run("should create valid order", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, eateryID,
			[]kernel.UUID{itemID}, basePlacedAt, 30*time.Minute)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.EateryID().IsEqual(eateryID))
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, basePlacedAt, o.PlacedAt())
		assert.Equal(t, basePlacedAt.Add(30*time.Minute), o.Deadline())
	})

	t.Run("should keep item sequence with repeats", func(t *testing.T) {
		other := kernel.NewUUID()

		o, err := order.NewOrder(validID, customerID, eateryID,
			[]kernel.UUID{itemID, other, itemID}, basePlacedAt, 30*time.Minute)

		require.NoError(t, err)
		ids := o.ItemIDs()
		require.Len(t, ids, 3)
		assert.True(t, ids[0].IsEqual(itemID))
		assert.True(t, ids[1].IsEqual(other))
		assert.True(t, ids[2].IsEqual(itemID))
	})

	t.Run("should fail with empty item sequence", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, eateryID,
			nil, basePlacedAt, 30*time.Minute)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should fail with invalid item reference", func(t *testing.T) {
		var invalidItem kernel.UUID

		o, err := order.NewOrder(validID, customerID, eateryID,
			[]kernel.UUID{invalidItem}, basePlacedAt, 30*time.Minute)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "item reference 0")
	})

	t.Run("should fail with zero placement time", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, eateryID,
			[]kernel.UUID{itemID}, time.Time{}, 30*time.Minute)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with non-positive delivery window", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, eateryID,
			[]kernel.UUID{itemID}, basePlacedAt, 0)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "delivery window is invalid")
	})

	t.Run("item slice is defensively copied", func(t *testing.T) {
		items := []kernel.UUID{itemID}

		o, err := order.NewOrder(validID, customerID, eateryID,
			items, basePlacedAt, 30*time.Minute)
		require.NoError(t, err)

		items[0] = kernel.NewUUID()
		assert.True(t, o.ItemIDs()[0].IsEqual(itemID))
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("constructed order passes", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("walks the full forward sequence", func(t *testing.T) {
		o := newTestOrder(t)

		assert.True(t, o.Advance(order.EnRoute))
		assert.Equal(t, order.EnRoute, o.Status())

		assert.True(t, o.Advance(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("skipping a state is a silent no-op", func(t *testing.T) {
		o := newTestOrder(t)

		assert.False(t, o.Advance(order.Delivered))
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("backward transition is a silent no-op", func(t *testing.T) {
		o := newTestOrder(t)
		require.True(t, o.Advance(order.EnRoute))

		assert.False(t, o.Advance(order.Preparing))
		assert.Equal(t, order.EnRoute, o.Status())
	})

	t.Run("terminal state never moves", func(t *testing.T) {
		o := newTestOrder(t)
		require.True(t, o.Advance(order.EnRoute))
		require.True(t, o.Advance(order.Delivered))

		assert.False(t, o.Advance(order.Delivered))
		assert.False(t, o.Advance(order.EnRoute))
		assert.False(t, o.Advance(order.Preparing))
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestOrder_PromoteAt(t *testing.T) {
	const (
		enRouteAfter   = 10 * time.Second
		deliveredAfter = 20 * time.Second
	)

	t.Run("no promotion before the first dwell threshold", func(t *testing.T) {
		o := newTestOrder(t)

		changed := o.PromoteAt(basePlacedAt.Add(9*time.Second), enRouteAfter, deliveredAfter)

		assert.False(t, changed)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("promotes one step per sweep", func(t *testing.T) {
		o := newTestOrder(t)

		// Even far past both thresholds a single sweep advances one step only.
		changed := o.PromoteAt(basePlacedAt.Add(25*time.Second), enRouteAfter, deliveredAfter)
		assert.True(t, changed)
		assert.Equal(t, order.EnRoute, o.Status())

		changed = o.PromoteAt(basePlacedAt.Add(25*time.Second), enRouteAfter, deliveredAfter)
		assert.True(t, changed)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("reference timeline", func(t *testing.T) {
		o := newTestOrder(t)

		require.True(t, o.PromoteAt(basePlacedAt.Add(10*time.Second), enRouteAfter, deliveredAfter))
		assert.Equal(t, order.EnRoute, o.Status())

		require.True(t, o.PromoteAt(basePlacedAt.Add(20*time.Second), enRouteAfter, deliveredAfter))
		assert.Equal(t, order.Delivered, o.Status())

		assert.False(t, o.PromoteAt(basePlacedAt.Add(time.Hour), enRouteAfter, deliveredAfter))
	})

	t.Run("en route order waits for the second threshold", func(t *testing.T) {
		o := newTestOrder(t)
		require.True(t, o.Advance(order.EnRoute))

		assert.False(t, o.PromoteAt(basePlacedAt.Add(15*time.Second), enRouteAfter, deliveredAfter))
		assert.Equal(t, order.EnRoute, o.Status())
	})
}

func TestOrder_DisplayStatusAt(t *testing.T) {
	t.Run("mirrors stored status before the deadline", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.DisplayPreparing, o.DisplayStatusAt(basePlacedAt.Add(time.Minute)))

		require.True(t, o.Advance(order.EnRoute))
		assert.Equal(t, order.DisplayEnRoute, o.DisplayStatusAt(basePlacedAt.Add(2*time.Minute)))
	})

	t.Run("late once the deadline passes", func(t *testing.T) {
		o := newTestOrder(t)
		afterDeadline := basePlacedAt.Add(31 * time.Minute)

		assert.Equal(t, order.DisplayLate, o.DisplayStatusAt(afterDeadline))

		require.True(t, o.Advance(order.EnRoute))
		assert.Equal(t, order.DisplayLate, o.DisplayStatusAt(afterDeadline))
	})

	t.Run("not late exactly at the deadline", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.DisplayPreparing, o.DisplayStatusAt(o.Deadline()))
	})

	t.Run("delivered is never late", func(t *testing.T) {
		o := newTestOrder(t)
		require.True(t, o.Advance(order.EnRoute))
		require.True(t, o.Advance(order.Delivered))

		assert.Equal(t, order.DisplayDelivered, o.DisplayStatusAt(basePlacedAt.Add(24*time.Hour)))
	})

	t.Run("reference scenario stays on time", func(t *testing.T) {
		// Dwell thresholds fire long before the 30-minute deadline, so the
		// order is never displayed Late along the automatic path.
		o := newTestOrder(t)

		assert.Equal(t, order.DisplayPreparing, o.DisplayStatusAt(basePlacedAt))

		require.True(t, o.PromoteAt(basePlacedAt.Add(10*time.Second), 10*time.Second, 20*time.Second))
		assert.Equal(t, order.DisplayEnRoute, o.DisplayStatusAt(basePlacedAt.Add(10*time.Second)))

		require.True(t, o.PromoteAt(basePlacedAt.Add(20*time.Second), 10*time.Second, 20*time.Second))
		assert.Equal(t, order.DisplayDelivered, o.DisplayStatusAt(basePlacedAt.Add(20*time.Second)))
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	eateryID := kernel.NewUUID()
	itemID := kernel.NewUUID()
	deadline := basePlacedAt.Add(30 * time.Minute)

	t.Run("restores persisted fields verbatim", func(t *testing.T) {
		o, err := order.RestoreOrder(id, customerID, eateryID,
			[]kernel.UUID{itemID}, basePlacedAt, deadline, order.EnRoute)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.EnRoute, o.Status())
		assert.Equal(t, basePlacedAt, o.PlacedAt())
		assert.Equal(t, deadline, o.Deadline())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, eateryID,
			[]kernel.UUID{itemID}, basePlacedAt, deadline, order.Unknown)

		require.Error(t, err)
	})

	t.Run("rejects zero timestamps", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, eateryID,
			[]kernel.UUID{itemID}, time.Time{}, deadline, order.Preparing)
		require.Error(t, err)

		_, err = order.RestoreOrder(id, customerID, eateryID,
			[]kernel.UUID{itemID}, basePlacedAt, time.Time{}, order.Preparing)
		require.Error(t, err)
	})

	t.Run("rejects empty item sequence", func(t *testing.T) {
		_, err := order.RestoreOrder(id, customerID, eateryID,
			nil, basePlacedAt, deadline, order.Preparing)

		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})
}
