package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"oms/internal/core/application/usecases/commands"
)

const (
	advancementSchedule = "0 */2 * * * *"
	advancementPageSize = 500
)

// OrderAdvancementJob manages the scheduled advancement of orders through
// their lifecycle. Runs every two minutes over a bounded page of orders.
type OrderAdvancementJob struct {
	handler commands.AdvanceOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderAdvancementJob creates a new job for advancing order statuses.
// A tick that is still running when the next one fires is skipped so ticks
// never overlap within an instance.
func NewOrderAdvancementJob(handler commands.AdvanceOrdersCommandHandler, logger *slog.Logger) *OrderAdvancementJob {
	jobLogger := logger.With("component", "order_advancement_job")

	return &OrderAdvancementJob{
		handler: handler,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: jobLogger,
	}
}

// Start begins the order advancement job on its two minute schedule.
func (j *OrderAdvancementJob) Start() error {
	cmd, err := commands.NewAdvanceOrdersCommand(advancementPageSize)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(advancementSchedule, func() {
		ctx := context.Background()

		if tickErr := j.handler.Handle(ctx, cmd); tickErr != nil {
			j.logger.ErrorContext(ctx, "Order advancement tick failed", "error", tickErr)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order advancement job started (running every 2 minutes)")
	return nil
}

// Stop stops the order advancement job. An in-flight tick completes.
func (j *OrderAdvancementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order advancement job stopped")
}
