package jobs

import (
	"fmt"
	"log/slog"

	"oms/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderAdvancementJob *OrderAdvancementJob
	orderSeedingJob     *OrderSeedingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	advanceOrdersHandler commands.AdvanceOrdersCommandHandler,
	seedOrdersHandler commands.SeedOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderAdvancementJob: NewOrderAdvancementJob(advanceOrdersHandler, logger),
		orderSeedingJob:     NewOrderSeedingJob(seedOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAdvancementJob.Start(); err != nil {
		return fmt.Errorf("failed to start order advancement job: %w", err)
	}

	if err := jm.orderSeedingJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderAdvancementJob.Stop()
		return fmt.Errorf("failed to start order seeding job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderAdvancementJob.Stop()
	jm.orderSeedingJob.Stop()
}
