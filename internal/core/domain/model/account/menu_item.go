package account

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through the NewMenuItem or RestoreMenuItem factory functions.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a sellable item owned by exactly one eatery. It is identified by
// its UUID; the name is a display attribute that must stay unique within the
// owning catalog only so interactive selection and legacy documents resolve
// reliably.
type MenuItem struct {
	id          kernel.UUID
	name        string
	price       float64
	description string
	image       string

	isConstructed bool
}

// NewMenuItem creates a menu item with validation.
// The price must be a non-negative amount; the name must not be empty.
func NewMenuItem(id kernel.UUID, name string, price float64, description string) (*MenuItem, error) {
	item := &MenuItem{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem rebuilds a menu item from persistence, including the
// optional image reference. The same validation as NewMenuItem applies.
func RestoreMenuItem(id kernel.UUID, name string, price float64, description, image string) (*MenuItem, error) {
	item, err := NewMenuItem(id, name, price, description)
	if err != nil {
		return nil, err
	}

	item.image = image
	return item, nil
}

// Validate ensures the item was created through a factory function.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Name returns the item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the item's price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// Description returns the item's description.
func (m *MenuItem) Description() string {
	return m.description
}

// Image returns the optional image reference, empty when absent.
func (m *MenuItem) Image() string {
	return m.image
}

// IsEqual compares two menu items by identifier.
func (m *MenuItem) IsEqual(other *MenuItem) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%.2f is negative", price))
	}
	m.price = price
	return nil
}
