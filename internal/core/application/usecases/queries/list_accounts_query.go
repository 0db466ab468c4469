package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListAccountsQueryIsNotConstructed = errors.New(
	"ListAccountsQuery must be created via NewListAccountsQuery constructor",
)

// ListAccountsQuery retrieves every account of one role. Used by the order
// flow to present eateries for selection and by the admin panel to list
// registered accounts.
type ListAccountsQuery struct { //nolint:recvcheck //using for validation
	role account.Role

	guard guard.ConstructorGuard
}

// NewListAccountsQuery creates a query for accounts of the given role.
func NewListAccountsQuery(role account.Role) (ListAccountsQuery, error) {
	query := ListAccountsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setRole(role); err != nil {
		return ListAccountsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAccountsQuery) Validate() error {
	return q.guard.Validate(ErrListAccountsQueryIsNotConstructed)
}

// Role returns the role to list.
func (q ListAccountsQuery) Role() account.Role {
	return q.role
}

func (q *ListAccountsQuery) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

// ListAccountsQueryResponse is one account entry in a role listing.
type ListAccountsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
}
