package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrAccountNameIsRequired = errors.New("account name is required")
	ErrPasswordIsRequired    = errors.New("password is required")
)

// RegisterAccountCommand represents a request to register a new customer or
// eatery account. No uniqueness check is applied to the display name; a
// duplicate registration succeeds and later name lookups resolve the
// first-registered match.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID    kernel.UUID
	role         account.Role
	name         string
	phone        string
	address      string
	email        string
	fiscalID     string
	password     string
	secretAnswer string

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a command to register an account.
// Requires a valid account ID and role, a non-empty name and a non-empty
// password; the remaining identity fields are free-form.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	role account.Role,
	name, phone, address, email, fiscalID, password, secretAnswer string,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		phone:        phone,
		address:      address,
		email:        email,
		fiscalID:     fiscalID,
		secretAnswer: secretAnswer,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setRole(role),
		cmd.setName(name),
		cmd.setPassword(password),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier for the account to create.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Role returns the role tag of the account to create.
func (c RegisterAccountCommand) Role() account.Role {
	return c.role
}

// Name returns the display name.
func (c RegisterAccountCommand) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c RegisterAccountCommand) Phone() string {
	return c.phone
}

// Address returns the postal address.
func (c RegisterAccountCommand) Address() string {
	return c.address
}

// Email returns the contact email address.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

// FiscalID returns the fiscal identifier.
func (c RegisterAccountCommand) FiscalID() string {
	return c.fiscalID
}

// Password returns the plain password to store.
func (c RegisterAccountCommand) Password() string {
	return c.password
}

// SecretAnswer returns the recovery answer to store.
func (c RegisterAccountCommand) SecretAnswer() string {
	return c.secretAnswer
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if name == "" {
		return ErrAccountNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
