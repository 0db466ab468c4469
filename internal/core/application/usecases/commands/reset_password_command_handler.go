package commands

import (
	"context"

	"fooddelivery/internal/pkg/errs"
)

// ResetPasswordCommandHandler handles password recovery. The secret answer
// comparison is case-insensitive; a mismatch leaves the account untouched
// and reports a generic authentication failure.
type ResetPasswordCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewResetPasswordCommandHandler creates a handler for password recovery.
func NewResetPasswordCommandHandler(uowFactory AccountUoWFactory) ResetPasswordCommandHandler {
	return ResetPasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locates the first account of the given role with the given name,
// checks the secret answer and replaces the password on success.
func (h *ResetPasswordCommandHandler) Handle(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	acc, err := uow.AccountRepository().GetFirstByName(ctx, cmd.Role(), cmd.Name())
	if err != nil {
		return err
	}

	if !acc.CheckSecretAnswer(cmd.SecretAnswer()) {
		return errs.NewAuthenticationFailedError()
	}

	if err = acc.ChangePassword(cmd.NewPassword()); err != nil {
		return err
	}

	if err = uow.AccountRepository().Update(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
