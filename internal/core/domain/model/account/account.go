package account

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through the NewAccount or RestoreAccount factory functions.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

	// ErrCatalogRequiresEatery is returned when catalog operations are invoked
	// on an account that does not hold the Eatery role.
	ErrCatalogRequiresEatery = errors.New("only an eatery account owns a menu catalog")
)

// Account represents one registered identity, customer or eatery.
//
// Account follows these invariants:
//   - Must have a valid unique identifier and a valid role
//   - Must have a non-empty display name
//   - Only eatery accounts carry a menu catalog
//   - Can only be created through NewAccount or RestoreAccount
//
// Passwords and secret answers are stored and compared as plain values;
// credential hardening is out of scope for this system.
type Account struct {
	id   kernel.UUID
	role Role

	name         string
	phone        string
	address      string
	email        string
	fiscalID     string
	password     string
	secretAnswer string

	// catalog is the ordered list of menu items; eatery accounts only.
	catalog []*MenuItem

	isConstructed bool
}

// NewAccount creates a new Account instance with validation. This is the only
// way (besides RestoreAccount) to create a valid Account.
func NewAccount(
	id kernel.UUID,
	role Role,
	name, phone, address, email, fiscalID, password, secretAnswer string,
) (*Account, error) {
	// Passwords may be empty: legacy state documents default missing
	// credentials to the empty string and must still load.
	acc := &Account{
		phone:         phone,
		address:       address,
		email:         email,
		fiscalID:      fiscalID,
		password:      password,
		secretAnswer:  secretAnswer,
		isConstructed: true,
	}

	if err := errors.Join(
		acc.setID(id),
		acc.setRole(role),
		acc.setName(name),
	); err != nil {
		return nil, err
	}

	return acc, nil
}

// RestoreAccount rebuilds an account from persistence together with its
// catalog. The catalog must be nil or empty for customer accounts.
func RestoreAccount(
	id kernel.UUID,
	role Role,
	name, phone, address, email, fiscalID, password, secretAnswer string,
	catalog []*MenuItem,
) (*Account, error) {
	acc, err := NewAccount(id, role, name, phone, address, email, fiscalID, password, secretAnswer)
	if err != nil {
		return nil, err
	}

	for _, item := range catalog {
		if err = acc.AddMenuItem(item); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Role returns the account's role tag.
func (a *Account) Role() Role {
	return a.role
}

// Name returns the display name. Names are unique within a role only by
// convention; lookups resolve the first registered match.
func (a *Account) Name() string {
	return a.name
}

// Phone returns the contact phone number.
func (a *Account) Phone() string {
	return a.phone
}

// Address returns the postal address.
func (a *Account) Address() string {
	return a.address
}

// Email returns the contact email address.
func (a *Account) Email() string {
	return a.email
}

// FiscalID returns the fiscal identifier (CPF for customers, CNPJ for eateries).
func (a *Account) FiscalID() string {
	return a.fiscalID
}

// Password returns the stored plain password; needed by the persistence layer.
func (a *Account) Password() string {
	return a.password
}

// SecretAnswer returns the stored recovery answer; needed by the persistence layer.
func (a *Account) SecretAnswer() string {
	return a.secretAnswer
}

// Authenticate reports whether the supplied password matches exactly.
// The comparison is case-sensitive.
func (a *Account) Authenticate(password string) bool {
	return a.password == password
}

// CheckSecretAnswer reports whether the supplied recovery answer matches.
// The comparison is case-insensitive.
func (a *Account) CheckSecretAnswer(answer string) bool {
	return strings.EqualFold(a.secretAnswer, answer)
}

// ChangePassword overwrites the stored password.
// Callers are responsible for verifying the secret answer first.
func (a *Account) ChangePassword(newPassword string) error {
	if newPassword == "" {
		return errs.NewValueIsRequiredError("password")
	}
	a.password = newPassword
	return nil
}

// AddMenuItem appends a menu item to the eatery's catalog.
// Returns ErrCatalogRequiresEatery for customer accounts.
func (a *Account) AddMenuItem(item *MenuItem) error {
	if a.role != RoleEatery {
		return errs.NewValueIsInvalidErrorWithCause("account role", ErrCatalogRequiresEatery)
	}
	if err := item.Validate(); err != nil {
		return err
	}

	a.catalog = append(a.catalog, item)
	return nil
}

// Catalog returns the ordered catalog view. The returned slice is a copy; the
// items themselves are shared references.
func (a *Account) Catalog() []*MenuItem {
	catalog := make([]*MenuItem, len(a.catalog))
	copy(catalog, a.catalog)
	return catalog
}

// MenuItemByID resolves a catalog item by identifier.
func (a *Account) MenuItemByID(id kernel.UUID) (*MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, item := range a.catalog {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("menuItemId", id.String())
}

// MenuItemByName resolves a catalog item by display name, first match wins.
// Used when loading legacy documents that reference items by name.
func (a *Account) MenuItemByName(name string) (*MenuItem, error) {
	for _, item := range a.catalog {
		if item.Name() == name {
			return item, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("menuItemName", name)
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("account name")
	}
	a.name = name
	return nil
}
