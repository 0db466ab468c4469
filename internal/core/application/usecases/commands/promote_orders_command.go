package commands

import (
	"errors"

	"fooddelivery/internal/pkg/guard"
)

var ErrPromoteOrdersCommandIsNotConstructed = errors.New(
	"PromoteOrdersCommand must be created via NewPromoteOrdersCommand constructor",
)

// PromoteOrdersCommand represents a request to run one automatic promotion
// sweep over the whole order ledger. The command carries no parameters; the
// dwell thresholds live in the handler's promotion service.
type PromoteOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewPromoteOrdersCommand creates a command to run a promotion sweep.
func NewPromoteOrdersCommand() PromoteOrdersCommand {
	return PromoteOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c PromoteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPromoteOrdersCommandIsNotConstructed)
}
