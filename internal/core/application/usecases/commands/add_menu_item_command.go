package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
)

// AddMenuItemCommand represents a request to append a dish to an eatery's
// catalog.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	eateryID    kernel.UUID
	itemID      kernel.UUID
	name        string
	price       float64
	description string

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item. The price must
// not be negative; zero is allowed.
func NewAddMenuItemCommand(
	eateryID, itemID kernel.UUID,
	name string,
	price float64,
	description string,
) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEateryID(eateryID),
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// EateryID returns the identifier of the eatery that owns the catalog.
func (c AddMenuItemCommand) EateryID() kernel.UUID {
	return c.eateryID
}

// ItemID returns the identifier for the new menu item.
func (c AddMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the dish name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Price returns the dish price.
func (c AddMenuItemCommand) Price() float64 {
	return c.price
}

// Description returns the free-form dish description.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

func (c *AddMenuItemCommand) setEateryID(eateryID kernel.UUID) error {
	if err := eateryID.Validate(); err != nil {
		return err
	}

	c.eateryID = eateryID
	return nil
}

func (c *AddMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}
