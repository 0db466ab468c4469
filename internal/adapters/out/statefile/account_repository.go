package statefile

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrAlreadyRegistered reports an Add with an identifier that is already in
// the state.
var ErrAlreadyRegistered = errors.New("identifier is already registered")

// AccountRepository implements the account persistence port over the state
// store. It operates on the live in-memory state and relies on the owning
// unit of work for locking and durability.
type AccountRepository struct {
	uow *UnitOfWork
}

// Add appends a new account. Display names may repeat; identifiers may not.
func (r *AccountRepository) Add(_ context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	store := r.uow.store
	if store.findAccountByID(aggregate.ID()) != nil {
		return errs.NewValueIsInvalidErrorWithCause("accountId", ErrAlreadyRegistered)
	}

	r.uow.dirty = true
	if aggregate.Role() == account.RoleEatery {
		store.state.eateries = append(store.state.eateries, aggregate)
	} else {
		store.state.customers = append(store.state.customers, aggregate)
	}
	return nil
}

// Update persists changes to an existing account. Aggregates are mutated in
// place, so Update verifies membership and keeps the slot.
func (r *AccountRepository) Update(_ context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	accounts := r.uow.store.roleSlice(aggregate.Role())
	for i, acc := range accounts {
		if acc.ID().IsEqual(aggregate.ID()) {
			r.uow.dirty = true
			accounts[i] = aggregate
			return nil
		}
	}
	return errs.NewObjectNotFoundError("accountId", aggregate.ID())
}

// Get retrieves an account of either role by identifier.
func (r *AccountRepository) Get(_ context.Context, id kernel.UUID) (*account.Account, error) {
	acc := r.uow.store.findAccountByID(id)
	if acc == nil {
		return nil, errs.NewObjectNotFoundError("accountId", id)
	}
	return acc, nil
}

// GetFirstByName retrieves the earliest registered account of the role with
// the given display name.
func (r *AccountRepository) GetFirstByName(
	_ context.Context,
	role account.Role,
	name string,
) (*account.Account, error) {
	for _, acc := range r.uow.store.roleSlice(role) {
		if acc.Name() == name {
			return acc, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("name", name)
}

// GetAllByRole retrieves every account of the role in registration order.
func (r *AccountRepository) GetAllByRole(_ context.Context, role account.Role) ([]*account.Account, error) {
	accounts := r.uow.store.roleSlice(role)
	listed := make([]*account.Account, len(accounts))
	copy(listed, accounts)
	return listed, nil
}
