package queries

import (
	"context"
	"sort"
)

// GetOrderReportQueryHandler builds the admin order report from the ledger.
type GetOrderReportQueryHandler struct {
	readModel ReadModel
}

// NewGetOrderReportQueryHandler creates a handler for the admin report.
func NewGetOrderReportQueryHandler(readModel ReadModel) GetOrderReportQueryHandler {
	return GetOrderReportQueryHandler{readModel: readModel}
}

// Handle counts orders and ranks dish names by how often they appear across
// all orders, repeats included. The ranking is capped at five entries; ties
// resolve by first appearance in the ledger.
func (h GetOrderReportQueryHandler) Handle(
	ctx context.Context,
	query GetOrderReportQuery,
) (GetOrderReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderReportQueryResponse{}, err
	}

	orders, err := h.readModel.AllOrders(ctx)
	if err != nil {
		return GetOrderReportQueryResponse{}, err
	}

	counts := make(map[string]int)
	names := make([]string, 0)

	for _, o := range orders {
		eatery, eateryErr := h.readModel.AccountByID(ctx, o.EateryID())
		if eateryErr != nil {
			return GetOrderReportQueryResponse{}, eateryErr
		}

		for _, itemID := range o.ItemIDs() {
			item, itemErr := eatery.MenuItemByID(itemID)
			if itemErr != nil {
				return GetOrderReportQueryResponse{}, itemErr
			}

			if _, seen := counts[item.Name()]; !seen {
				names = append(names, item.Name())
			}
			counts[item.Name()]++
		}
	}

	// stable sort keeps first-appearance order among equal counts
	sort.SliceStable(names, func(i, j int) bool {
		return counts[names[i]] > counts[names[j]]
	})

	if len(names) > topItemLimit {
		names = names[:topItemLimit]
	}

	topItems := make([]ItemCount, 0, len(names))
	for _, name := range names {
		topItems = append(topItems, ItemCount{Name: name, Count: counts[name]})
	}

	return GetOrderReportQueryResponse{
		TotalOrders: len(orders),
		TopItems:    topItems,
	}, nil
}
