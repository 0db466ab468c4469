package statefile

import (
	"context"
	"errors"

	"fooddelivery/internal/core/ports"
)

// ErrNoActiveTransaction reports Commit or Rollback without a prior Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates unit of work instances over one shared store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a fresh unit of work. Each business operation gets its
// own instance.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements one business transaction over the state store.
// Begin takes the store mutex and snapshots the state; Commit writes the
// whole document to disk in one atomic replace and releases the mutex;
// Rollback restores the snapshot and releases the mutex. A transaction
// that never touched the state releases the mutex without rebuilding
// anything, so read-only sweeps leave the live aggregates untouched.
type UnitOfWork struct {
	store    *Store
	active   bool
	dirty    bool
	snapshot StateDTO
}

// Begin starts the transaction. Calling Begin on an already active unit of
// work is safe and keeps the original snapshot.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()

	snapshot, err := uow.store.snapshotLocked()
	if err != nil {
		uow.store.mu.Unlock()
		return err
	}

	uow.snapshot = snapshot
	uow.active = true
	uow.dirty = false
	return nil
}

// Commit saves the state to disk and ends the transaction. One commit
// equals exactly one save of the whole document.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	err := uow.store.saveLocked()
	uow.active = false
	uow.store.mu.Unlock()
	return err
}

// Rollback restores the snapshot taken at Begin and ends the transaction.
// When no repository mutated the state the snapshot restore is skipped.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	var err error
	if uow.dirty {
		err = uow.store.restoreSnapshotLocked(uow.snapshot)
	}
	uow.active = false
	uow.store.mu.Unlock()
	return err
}

// AccountRepository returns the account repository bound to this transaction.
func (uow *UnitOfWork) AccountRepository() ports.AccountRepository {
	return &AccountRepository{uow: uow}
}

// OrderRepository returns the order repository bound to this transaction.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}
