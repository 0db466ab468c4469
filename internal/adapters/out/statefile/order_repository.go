package statefile

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// OrderRepository implements the order persistence port over the state
// store. Orders are append-only; the ledger keeps insertion order.
type OrderRepository struct {
	uow *UnitOfWork
}

// Add appends a newly placed order to the ledger.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	store := r.uow.store
	for _, o := range store.state.orders {
		if o.ID().IsEqual(aggregate.ID()) {
			return errs.NewValueIsInvalidErrorWithCause("orderId", ErrAlreadyRegistered)
		}
	}

	r.uow.dirty = true
	store.state.orders = append(store.state.orders, aggregate)
	return nil
}

// Update persists changes to an existing order. Aggregates are mutated in
// place, so Update verifies membership and keeps the slot.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	store := r.uow.store
	for i, o := range store.state.orders {
		if o.ID().IsEqual(aggregate.ID()) {
			r.uow.dirty = true
			store.state.orders[i] = aggregate
			return nil
		}
	}
	return errs.NewObjectNotFoundError("orderId", aggregate.ID())
}

// Get retrieves an order by identifier.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	for _, o := range r.uow.store.state.orders {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", id)
}

// GetAllByCustomer retrieves the orders placed by a customer, oldest first.
func (r *OrderRepository) GetAllByCustomer(
	_ context.Context,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	matched := make([]*order.Order, 0)
	for _, o := range r.uow.store.state.orders {
		if o.CustomerID().IsEqual(customerID) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// GetAllByEatery retrieves the orders addressed to an eatery, oldest first.
func (r *OrderRepository) GetAllByEatery(
	_ context.Context,
	eateryID kernel.UUID,
) ([]*order.Order, error) {
	matched := make([]*order.Order, 0)
	for _, o := range r.uow.store.state.orders {
		if o.EateryID().IsEqual(eateryID) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// GetAll retrieves the whole ledger, oldest first.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	store := r.uow.store
	orders := make([]*order.Order, len(store.state.orders))
	copy(orders, store.state.orders)
	return orders, nil
}
