package queries

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderView is one order shaped for display. Counterparty carries the name
// on the other side of the order: the eatery name in a customer listing and
// the customer name in an eatery listing. Status is the stored lifecycle
// state; DisplayStatus additionally reports Late for undelivered orders past
// their deadline at view time.
type OrderView struct {
	ID            kernel.UUID
	Counterparty  string
	Items         []string
	PlacedAt      string
	Deadline      string
	Status        order.Status
	DisplayStatus string
}

// orderViewBuilder is embedded by the order listing handlers.
type orderViewBuilder struct {
	readModel ReadModel
}

// buildOrderView resolves item names through the eatery catalog and formats
// the order for display against the given view instant.
func (h orderViewBuilder) buildOrderView(
	ctx context.Context,
	o *order.Order,
	counterparty string,
	now time.Time,
) (OrderView, error) {
	eatery, err := h.readModel.AccountByID(ctx, o.EateryID())
	if err != nil {
		return OrderView{}, err
	}

	itemIDs := o.ItemIDs()
	items := make([]string, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		item, itemErr := eatery.MenuItemByID(itemID)
		if itemErr != nil {
			return OrderView{}, itemErr
		}
		items = append(items, item.Name())
	}

	return OrderView{
		ID:            o.ID(),
		Counterparty:  counterparty,
		Items:         items,
		PlacedAt:      o.PlacedAt().Format(timeLayout),
		Deadline:      o.Deadline().Format(timeLayout),
		Status:        o.Status(),
		DisplayStatus: o.DisplayStatusAt(now).String(),
	}, nil
}
