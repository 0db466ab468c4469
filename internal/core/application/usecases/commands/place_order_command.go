package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place an order with an eatery.
// The item list may repeat entries; repeats count toward reporting.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	eateryID   kernel.UUID
	itemIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// At least one item is required.
func NewPlaceOrderCommand(
	orderID, customerID, eateryID kernel.UUID,
	itemIDs []kernel.UUID,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setEateryID(eateryID),
		cmd.setItemIDs(itemIDs),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// EateryID returns the identifier of the eatery receiving the order.
func (c PlaceOrderCommand) EateryID() kernel.UUID {
	return c.eateryID
}

// ItemIDs returns the ordered menu item identifiers.
func (c PlaceOrderCommand) ItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.itemIDs))
	copy(ids, c.itemIDs)
	return ids
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setEateryID(eateryID kernel.UUID) error {
	if err := eateryID.Validate(); err != nil {
		return err
	}

	c.eateryID = eateryID
	return nil
}

func (c *PlaceOrderCommand) setItemIDs(itemIDs []kernel.UUID) error {
	if len(itemIDs) == 0 {
		return order.ErrItemsAreRequired
	}

	for _, id := range itemIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.itemIDs = make([]kernel.UUID, len(itemIDs))
	copy(c.itemIDs, itemIDs)
	return nil
}
