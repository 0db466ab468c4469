package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; all listings preserve insertion order.
type OrderRepository interface {
	// Add persists a newly placed order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves the orders placed by a customer, oldest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllByEatery retrieves the orders addressed to an eatery, oldest first.
	GetAllByEatery(ctx context.Context, eateryID kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order in the ledger, oldest first.
	// Used by the automatic promotion sweep.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
