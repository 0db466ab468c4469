package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrResetPasswordCommandIsNotConstructed = errors.New(
		"ResetPasswordCommand must be created via NewResetPasswordCommand constructor",
	)
	ErrNewPasswordIsRequired = errors.New("new password is required")
)

// ResetPasswordCommand represents a password recovery request. The account
// is located by display name within the given role, and the stored secret
// answer must match the supplied one.
type ResetPasswordCommand struct { //nolint:recvcheck //using for validation
	role         account.Role
	name         string
	secretAnswer string
	newPassword  string

	guard guard.ConstructorGuard
}

// NewResetPasswordCommand creates a command to reset an account password.
func NewResetPasswordCommand(
	role account.Role,
	name, secretAnswer, newPassword string,
) (ResetPasswordCommand, error) {
	cmd := ResetPasswordCommand{
		secretAnswer: secretAnswer,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setName(name),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ResetPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPasswordCommand) Validate() error {
	return c.guard.Validate(ErrResetPasswordCommandIsNotConstructed)
}

// Role returns the role to search within.
func (c ResetPasswordCommand) Role() account.Role {
	return c.role
}

// Name returns the display name of the account to recover.
func (c ResetPasswordCommand) Name() string {
	return c.name
}

// SecretAnswer returns the supplied recovery answer.
func (c ResetPasswordCommand) SecretAnswer() string {
	return c.secretAnswer
}

// NewPassword returns the replacement password.
func (c ResetPasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ResetPasswordCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *ResetPasswordCommand) setName(name string) error {
	if name == "" {
		return ErrAccountNameIsRequired
	}

	c.name = name
	return nil
}

func (c *ResetPasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return ErrNewPasswordIsRequired
	}

	c.newPassword = newPassword
	return nil
}
