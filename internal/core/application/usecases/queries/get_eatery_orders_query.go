package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetEateryOrdersQueryIsNotConstructed = errors.New(
	"GetEateryOrdersQuery must be created via NewGetEateryOrdersQuery constructor",
)

// GetEateryOrdersQuery retrieves the orders addressed to one eatery.
type GetEateryOrdersQuery struct { //nolint:recvcheck //using for validation
	eateryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEateryOrdersQuery creates a query for an eatery's incoming orders.
func NewGetEateryOrdersQuery(eateryID kernel.UUID) (GetEateryOrdersQuery, error) {
	query := GetEateryOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setEateryID(eateryID); err != nil {
		return GetEateryOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEateryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetEateryOrdersQueryIsNotConstructed)
}

// EateryID returns the identifier of the eatery whose orders are requested.
func (q GetEateryOrdersQuery) EateryID() kernel.UUID {
	return q.eateryID
}

func (q *GetEateryOrdersQuery) setEateryID(eateryID kernel.UUID) error {
	if err := eateryID.Validate(); err != nil {
		return err
	}

	q.eateryID = eateryID
	return nil
}
