package queries

import (
	"context"
	"time"
)

// GetEateryOrdersQueryHandler retrieves the orders addressed to one eatery
// with resolved customer and item names. The view keeps the stored status
// alongside the display status so the console can offer the matching manual
// transition.
type GetEateryOrdersQueryHandler struct {
	orderViewBuilder
}

// NewGetEateryOrdersQueryHandler creates a handler for eatery order listings.
func NewGetEateryOrdersQueryHandler(readModel ReadModel) GetEateryOrdersQueryHandler {
	return GetEateryOrdersQueryHandler{orderViewBuilder{readModel: readModel}}
}

// Handle returns the eatery's incoming orders oldest first, all evaluated
// against the same view instant.
func (h GetEateryOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetEateryOrdersQuery,
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
		if !o.EateryID().IsEqual(query.EateryID()) {
			continue
		}

		customer, customerErr := h.readModel.AccountByID(ctx, o.CustomerID())
		if customerErr != nil {
			return nil, customerErr
		}

		view, viewErr := h.buildOrderView(ctx, o, customer.Name(), now)
		if viewErr != nil {
			return nil, viewErr
		}

		views = append(views, view)
	}

	return views, nil
}
