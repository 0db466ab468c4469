package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
)

// RegisterAccountCommandHandler handles the business logic for account
// registration. Creates the aggregate and persists the full system state.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterAccountCommandHandler creates a handler for account registration.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Duplicate display names are
// accepted by design; the new account simply becomes unreachable through
// first-match name lookups.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
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

	acc, err := account.NewAccount(
		cmd.AccountID(), cmd.Role(),
		cmd.Name(), cmd.Phone(), cmd.Address(), cmd.Email(), cmd.FiscalID(),
		cmd.Password(), cmd.SecretAnswer(),
	)
	if err != nil {
		return err
	}

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
