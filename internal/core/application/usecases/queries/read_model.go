// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS split.
// Queries bypass the unit of work and read the state store directly through
// the ReadModel contract, returning view structs shaped for display.
package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// ReadModel is the read-side contract over the state store. Listings
// preserve insertion order; name lookups resolve the earliest match.
// Implementations return detached copies that stay valid after the call
// even while background jobs mutate the live aggregates.
type ReadModel interface {
	// AccountByID retrieves an account of either role by its identifier.
	AccountByID(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// FirstAccountByName retrieves the first account of the given role
	// registered under the given display name.
	FirstAccountByName(ctx context.Context, role account.Role, name string) (*account.Account, error)

	// AccountsByRole retrieves every account of the given role.
	AccountsByRole(ctx context.Context, role account.Role) ([]*account.Account, error)

	// AllOrders retrieves every order in the ledger, oldest first.
	AllOrders(ctx context.Context) ([]*order.Order, error)
}

// timeLayout is the wall-clock format used in order views.
const timeLayout = "2006-01-02 15:04:05"
