package commands

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/services"
)

// PromoteOrdersCommandHandler runs the automatic promotion sweep.
// Each sweep evaluates every order against a single reference instant and
// moves each eligible order by at most one lifecycle step. All changes from
// one sweep are committed together in a single save.
type PromoteOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	promoter   services.OrderPromoter
}

// NewPromoteOrdersCommandHandler creates a handler for promotion sweeps.
func NewPromoteOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	promoter services.OrderPromoter,
) PromoteOrdersCommandHandler {
	return PromoteOrdersCommandHandler{
		uowFactory: uowFactory,
		promoter:   promoter,
	}
}

// Handle walks the ledger and promotes every order whose dwell time has
// passed its threshold. A sweep with no eligible orders commits nothing.
func (h *PromoteOrdersCommandHandler) Handle(ctx context.Context, cmd PromoteOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	changed := false

	for _, aggregate := range orders {
		promoted, promoteErr := h.promoter.Promote(aggregate, now)
		if promoteErr != nil {
			return promoteErr
		}

		if !promoted {
			continue
		}

		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}

		changed = true
	}

	if !changed {
		return nil
	}

	return uow.Commit(ctx)
}
