package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses pass", func(t *testing.T) {
		for _, s := range []order.Status{order.Preparing, order.EnRoute, order.Delivered} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown fails", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("out of range fails", func(t *testing.T) {
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Preparing", order.Preparing.String())
	assert.Equal(t, "EnRoute", order.EnRoute.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Next(t *testing.T) {
	t.Run("preparing advances to en route", func(t *testing.T) {
		next, ok := order.Preparing.Next()

		assert.True(t, ok)
		assert.Equal(t, order.EnRoute, next)
	})

	t.Run("en route advances to delivered", func(t *testing.T) {
		next, ok := order.EnRoute.Next()

		assert.True(t, ok)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		_, ok := order.Delivered.Next()

		assert.False(t, ok)
	})
}

func TestStatus_CanAdvanceTo(t *testing.T) {
	cases := []struct {
		name    string
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{"preparing to en route", order.Preparing, order.EnRoute, true},
		{"en route to delivered", order.EnRoute, order.Delivered, true},
		{"preparing skips to delivered", order.Preparing, order.Delivered, false},
		{"en route back to preparing", order.EnRoute, order.Preparing, false},
		{"delivered back to en route", order.Delivered, order.EnRoute, false},
		{"delivered to delivered", order.Delivered, order.Delivered, false},
		{"preparing to preparing", order.Preparing, order.Preparing, false},
		{"unknown target", order.Preparing, order.Unknown, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanAdvanceTo(tc.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("parses english names", func(t *testing.T) {
		for want, raw := range map[order.Status]string{
			order.Preparing: "Preparing",
			order.EnRoute:   "EnRoute",
			order.Delivered: "Delivered",
		} {
			got, err := order.ParseStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("parses legacy locale strings", func(t *testing.T) {
		for want, raw := range map[order.Status]string{
			order.Preparing: "Em preparo",
			order.EnRoute:   "A caminho",
			order.Delivered: "Entregue",
		} {
			got, err := order.ParseStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.ParseStatus("Lost")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDisplayStatus_String(t *testing.T) {
	assert.Equal(t, "Preparing", order.DisplayPreparing.String())
	assert.Equal(t, "EnRoute", order.DisplayEnRoute.String())
	assert.Equal(t, "Delivered", order.DisplayDelivered.String())
	assert.Equal(t, "Late", order.DisplayLate.String())
	assert.Equal(t, "Unknown", order.DisplayUnknown.String())
}
