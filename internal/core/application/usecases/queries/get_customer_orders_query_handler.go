package queries

import (
	"context"
	"time"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history with
// resolved eatery and item names.
type GetCustomerOrdersQueryHandler struct {
	orderViewBuilder
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// listings.
func NewGetCustomerOrdersQueryHandler(readModel ReadModel) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{orderViewBuilder{readModel: readModel}}
}

// Handle returns the customer's orders oldest first. Every order is
// evaluated against the same view instant, so one listing never shows a
// mixed picture of lateness.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.readModel.AllOrders(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]OrderView, 0)

	for _, o := range orders {
		if !o.CustomerID().IsEqual(query.CustomerID()) {
			continue
		}

		eatery, eateryErr := h.readModel.AccountByID(ctx, o.EateryID())
		if eateryErr != nil {
			return nil, eateryErr
		}

		view, viewErr := h.buildOrderView(ctx, o, eatery.Name(), now)
		if viewErr != nil {
			return nil, viewErr
		}

		views = append(views, view)
	}

	return views, nil
}
