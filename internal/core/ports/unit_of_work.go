package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances, one per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one business transaction over the system state.
// Client code must explicitly manage the transaction lifecycle.
//
// With the state-file backend, Begin snapshots the in-memory state, Commit
// writes the whole document to disk in one atomic replace, and Rollback
// restores the snapshot. One commit therefore equals exactly one save,
// which is what lets a sweep persist as a single batch.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes all changes durable.
	// Returns an error if no transaction is active or the save fails.
	Commit(ctx context.Context) error

	// Rollback discards all changes made since Begin.
	// Returns an error if no transaction is active.
	Rollback(ctx context.Context) error

	// AccountRepository returns an AccountRepository bound to the transaction.
	AccountRepository() AccountRepository

	// OrderRepository returns an OrderRepository bound to the transaction.
	OrderRepository() OrderRepository
}
