package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderPromotionJob manages the scheduled promotion of orders.
// Runs every second to move eligible orders one lifecycle step forward.
type OrderPromotionJob struct {
	handler commands.PromoteOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderPromotionJob creates a new job for promoting orders.
// Uses PromoteOrdersCommandHandler to run one sweep every second.
func NewOrderPromotionJob(handler commands.PromoteOrdersCommandHandler, logger *slog.Logger) *OrderPromotionJob {
	return &OrderPromotionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_promotion_job"),
	}
}

// Start begins the order promotion job to run every second.
func (j *OrderPromotionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewPromoteOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order promotion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order promotion job started (running every second)")
	return nil
}

// Stop stops the order promotion job.
func (j *OrderPromotionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order promotion job stopped")
}
