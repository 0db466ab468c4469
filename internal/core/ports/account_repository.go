// Package ports defines repository and unit-of-work interfaces between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates,
// customers and eateries alike.
type AccountRepository interface {
	// Add persists a new account aggregate. Duplicate display names are not
	// rejected; name lookups resolve the first registered match.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetFirstByName retrieves the first-registered account of the given role
	// whose display name matches exactly. Duplicate names are a documented
	// ambiguity: later registrations with the same name are unreachable here.
	GetFirstByName(ctx context.Context, role account.Role, name string) (*account.Account, error)

	// GetAllByRole retrieves all accounts of the given role in registration order.
	GetAllByRole(ctx context.Context, role account.Role) ([]*account.Account, error)
}
