package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
)

// AddMenuItemCommandHandler handles appending dishes to eatery catalogs.
type AddMenuItemCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for catalog additions.
func NewAddMenuItemCommandHandler(uowFactory AccountUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the eatery, appends the new item to its catalog and persists
// the change. The whole catalog, including any items with duplicate names,
// is kept; name lookups resolve the earliest match.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
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

	eatery, err := uow.AccountRepository().Get(ctx, cmd.EateryID())
	if err != nil {
		return err
	}

	item, err := account.NewMenuItem(cmd.ItemID(), cmd.Name(), cmd.Price(), cmd.Description())
	if err != nil {
		return err
	}

	if err = eatery.AddMenuItem(item); err != nil {
		return err
	}

	if err = uow.AccountRepository().Update(ctx, eatery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
