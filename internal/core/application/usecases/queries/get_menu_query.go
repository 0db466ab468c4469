package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the catalog of one eatery for display.
type GetMenuQuery struct { //nolint:recvcheck //using for validation
	eateryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for an eatery's catalog.
func NewGetMenuQuery(eateryID kernel.UUID) (GetMenuQuery, error) {
	query := GetMenuQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setEateryID(eateryID); err != nil {
		return GetMenuQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// EateryID returns the identifier of the eatery whose catalog is requested.
func (q GetMenuQuery) EateryID() kernel.UUID {
	return q.eateryID
}

func (q *GetMenuQuery) setEateryID(eateryID kernel.UUID) error {
	if err := eateryID.Validate(); err != nil {
		return err
	}

	q.eateryID = eateryID
	return nil
}

// GetMenuQueryResponse is the displayable catalog of one eatery.
// Items keep their catalog order; Index is the 1-based display position
// used by the console surface for selection.
type GetMenuQueryResponse struct {
	EateryName string
	Items      []MenuItemView
}

// MenuItemView is one catalog entry shaped for display.
type MenuItemView struct {
	Index       int
	ID          kernel.UUID
	Name        string
	Price       float64
	Description string
}
