package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"oms/internal/core/application/usecases/commands"
)

const (
	seedingSchedule = "0 */5 * * * *"
	seedingCount    = 2
)

// OrderSeedingJob periodically creates a small batch of mock orders so the
// lifecycle always has fresh traffic to work on.
type OrderSeedingJob struct {
	handler commands.SeedOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSeedingJob creates a new job that seeds mock orders every five minutes.
func NewOrderSeedingJob(handler commands.SeedOrdersCommandHandler, logger *slog.Logger) *OrderSeedingJob {
	return &OrderSeedingJob{
		handler: handler,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "order_seeding_job"),
	}
}

// Start begins the order seeding job on its five minute schedule.
func (j *OrderSeedingJob) Start() error {
	cmd, err := commands.NewSeedOrdersCommand(seedingCount)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(seedingSchedule, func() {
		ctx := context.Background()

		if tickErr := j.handler.Handle(ctx, cmd); tickErr != nil {
			j.logger.ErrorContext(ctx, "Order seeding tick failed", "error", tickErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order seeding job started (running every 5 minutes)")
	return nil
}

// Stop stops the order seeding job. An in-flight tick completes.
func (j *OrderSeedingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order seeding job stopped")
}
