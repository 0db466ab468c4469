package queries

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrderReportQueryIsNotConstructed = errors.New(
	"GetOrderReportQuery must be created via NewGetOrderReportQuery constructor",
)

// topItemLimit caps the popularity ranking in the admin report.
const topItemLimit = 5

// GetOrderReportQuery retrieves aggregate order statistics for the admin
// panel.
type GetOrderReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderReportQuery creates a query for the admin order report.
func NewGetOrderReportQuery() GetOrderReportQuery {
	return GetOrderReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderReportQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderReportQueryIsNotConstructed)
}

// GetOrderReportQueryResponse aggregates the order ledger for reporting.
// TopItems ranks dish names by how often they were ordered, repeats
// included, capped at five entries. Ties keep the order in which the names
// first appeared in the ledger.
type GetOrderReportQueryResponse struct {
	TotalOrders int
	TopItems    []ItemCount
}

// ItemCount is one entry in the popularity ranking.
type ItemCount struct {
	Name  string
	Count int
}
