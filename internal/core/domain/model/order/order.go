package order

import (
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when an order is placed with an empty
	// item sequence.
	ErrItemsAreRequired = errors.New("order must contain at least one item")
)

// Order represents one placed order. It is the aggregate root of the order
// lifecycle, from placement through automatic or explicit status advancement.
//
// Order follows these invariants:
//   - References exactly one customer, one eatery and at least one menu item
//   - Items keep their placement order; the same item may appear repeatedly
//   - The deadline equals the placement time plus the delivery window
//   - The stored status only moves forward, one step at a time
//   - Immutable after placement except for the status field
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	eateryID   kernel.UUID

	// itemIDs reference menu items inside the eatery's catalog, in the
	// sequence the customer selected them.
	itemIDs []kernel.UUID

	placedAt time.Time
	deadline time.Time
	status   Status

	isConstructed bool
}

// NewOrder creates a new Order in Preparing status. The deadline is derived
// as placedAt plus the delivery window.
func NewOrder(
	id, customerID, eateryID kernel.UUID,
	itemIDs []kernel.UUID,
	placedAt time.Time,
	deliveryWindow time.Duration,
) (*Order, error) {
	o := &Order{
		status:        Preparing,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setEateryID(eateryID),
		o.setItemIDs(itemIDs),
		o.setTimes(placedAt, deliveryWindow),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order with its original timestamps and
// stored status. Used only by the persistence layer.
func RestoreOrder(
	id, customerID, eateryID kernel.UUID,
	itemIDs []kernel.UUID,
	placedAt, deadline time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setEateryID(eateryID),
		o.setItemIDs(itemIDs),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if placedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("placedAt")
	}
	if deadline.IsZero() {
		return nil, errs.NewValueIsRequiredError("deadline")
	}

	o.placedAt = placedAt
	o.deadline = deadline
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer that placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// EateryID returns the identifier of the eatery fulfilling the order.
func (o *Order) EateryID() kernel.UUID {
	return o.eateryID
}

// ItemIDs returns the ordered item references. The returned slice is a copy.
func (o *Order) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(o.itemIDs))
	copy(ids, o.itemIDs)
	return ids
}

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Deadline returns the delivery deadline.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// Status returns the stored status. For what users see, including the derived
// Late state, use DisplayStatusAt.
func (o *Order) Status() Status {
	return o.status
}

// Advance moves the status to target if and only if target is the immediate
// successor of the current status. Any other request is silently discarded:
// the return value reports whether the transition applied, and no error is
// ever raised for a discarded request.
func (o *Order) Advance(target Status) bool {
	if !o.status.CanAdvanceTo(target) {
		return false
	}

	o.status = target
	return true
}

// PromoteAt applies at most one automatic promotion step based on how long
// the order has dwelled since placement: Preparing becomes EnRoute once
// enRouteAfter has elapsed, and EnRoute becomes Delivered once deliveredAfter
// has elapsed. Reports whether a promotion applied.
//
// The dwell thresholds are independent of the delivery deadline; with the
// reference defaults they fire well before an order can turn Late.
func (o *Order) PromoteAt(now time.Time, enRouteAfter, deliveredAfter time.Duration) bool {
	dwell := now.Sub(o.placedAt)

	switch {
	case o.status == Preparing && dwell >= enRouteAfter:
		o.status = EnRoute
		return true
	case o.status == EnRoute && dwell >= deliveredAfter:
		o.status = Delivered
		return true
	}

	return false
}

// DisplayStatusAt derives the status shown to users at the given instant:
// Late when an undelivered order has passed its deadline, otherwise the
// stored status. A Delivered order is never Late.
func (o *Order) DisplayStatusAt(now time.Time) DisplayStatus {
	if (o.status == Preparing || o.status == EnRoute) && now.After(o.deadline) {
		return DisplayLate
	}
	return o.status.Display()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("customer reference: %w", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setEateryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("eatery reference: %w", err)
	}
	o.eateryID = id
	return nil
}

func (o *Order) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return ErrItemsAreRequired
	}

	for i, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return fmt.Errorf("item reference %d: %w", i, err)
		}
	}

	o.itemIDs = make([]kernel.UUID, len(itemIDs))
	copy(o.itemIDs, itemIDs)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTimes(placedAt time.Time, deliveryWindow time.Duration) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	if deliveryWindow <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery window is invalid",
			fmt.Errorf("%s is not greater than 0", deliveryWindow))
	}

	o.placedAt = placedAt
	o.deadline = placedAt.Add(deliveryWindow)
	return nil
}
