package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles order placement. Resolves the customer,
// the eatery and every ordered item before creating the order aggregate.
type PlaceOrderCommandHandler struct {
	uowFactory     UoWFactory
	deliveryWindow time.Duration
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// deliveryWindow is the span between placement and the delivery deadline.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	deliveryWindow time.Duration,
) (PlaceOrderCommandHandler, error) {
	if deliveryWindow <= 0 {
		return PlaceOrderCommandHandler{}, errs.NewValueIsInvalidError("deliveryWindow")
	}

	return PlaceOrderCommandHandler{
		uowFactory:     uowFactory,
		deliveryWindow: deliveryWindow,
	}, nil
}

// Handle verifies every reference in the command and persists the new order.
// The order starts in the preparing state with its deadline fixed at
// placement time plus the delivery window.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	customer, err := uow.AccountRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if customer.Role() != account.RoleCustomer {
		return errs.NewValueIsInvalidError("customerId")
	}

	eatery, err := uow.AccountRepository().Get(ctx, cmd.EateryID())
	if err != nil {
		return err
	}
	if eatery.Role() != account.RoleEatery {
		return errs.NewValueIsInvalidError("eateryId")
	}

	itemIDs := cmd.ItemIDs()
	for _, itemID := range itemIDs {
		if _, err = eatery.MenuItemByID(itemID); err != nil {
			return err
		}
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), customer.ID(), eatery.ID(),
		itemIDs, time.Now(), h.deliveryWindow,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
