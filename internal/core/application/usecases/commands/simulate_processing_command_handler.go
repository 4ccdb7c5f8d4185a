package commands

import (
	"context"
	"math/rand"
	"time"

	"oms/internal/core/domain/model/order"
)

// SleepFunc pauses the caller for the given duration. Production code passes
// time.Sleep; tests pass a no-op.
type SleepFunc func(time.Duration)

// SimulateProcessingCommandHandler runs the validation pipeline over a batch
// of PENDING orders, pausing for a randomized 0.5-2.5s before each one to
// emulate real processing latency and avoid hammering the order store.
//
// Per-order failures are swallowed: the batch always runs to the end.
type SimulateProcessingCommandHandler struct {
	uowFactory     OrderUoWFactory
	processHandler ProcessOrderCommandHandler
	sleep          SleepFunc
}

// NewSimulateProcessingCommandHandler creates a batch handler delegating each
// order to the given pipeline handler.
func NewSimulateProcessingCommandHandler(
	uowFactory OrderUoWFactory,
	processHandler ProcessOrderCommandHandler,
	sleep SleepFunc,
) SimulateProcessingCommandHandler {
	return SimulateProcessingCommandHandler{
		uowFactory:     uowFactory,
		processHandler: processHandler,
		sleep:          sleep,
	}
}

// Handle scans a page of orders and processes the PENDING ones.
func (h *SimulateProcessingCommandHandler) Handle(ctx context.Context, cmd SimulateProcessingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	page, err := h.fetchPage(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}

	for _, aggregate := range page {
		if aggregate.Status() != order.Pending {
			continue
		}

		h.sleep(processingDelay())

		processCmd, cmdErr := NewProcessOrderCommand(aggregate.ID())
		if cmdErr != nil {
			continue
		}

		// per-order failures do not stop the batch
		_, _ = h.processHandler.Handle(ctx, processCmd)
	}

	return nil
}

func (h *SimulateProcessingCommandHandler) fetchPage(ctx context.Context, batchSize int) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	page, err := uow.OrderRepository().GetPage(ctx, batchSize, 0)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return page, nil
}

// processingDelay draws a uniform delay in [500ms, 2500ms).
func processingDelay() time.Duration {
	return 500*time.Millisecond + time.Duration(rand.Int63n(int64(2*time.Second))) //nolint:gosec //simulation jitter
}
