package commands

import (
	"context"

	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
	"oms/internal/pkg/metrics"
)

// Audit note attached when the pipeline approves an order.
const noteValidatedByCommerce = "Validated by commerce engine"

// ProcessOrderCommandHandler runs the commerce validation pipeline for one
// order: fetch the snapshot, evaluate the checks, and reflect the outcome
// back into the order store as PROCESSING or HOLDED.
//
// The write-back is best-effort: its failure never changes the returned
// ProcessingResult and never propagates to the caller. Only a missing order
// aborts the pipeline, with a typed not-found error.
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pipeline   services.ValidationPipeline
}

// NewProcessOrderCommandHandler creates a handler running the given pipeline.
func NewProcessOrderCommandHandler(uowFactory OrderUoWFactory, pipeline services.ValidationPipeline) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		pipeline:   pipeline,
	}
}

// Handle executes the pipeline and returns its result.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) (services.ProcessingResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ProcessingResult{}, err
	}

	aggregate, err := h.fetchOrder(ctx, cmd)
	if err != nil {
		return services.ProcessingResult{}, err
	}

	result := h.pipeline.Process(aggregate)

	target := order.Processing
	note := noteValidatedByCommerce
	outcome := "approved"
	if !result.Success {
		target = order.Holded
		note = result.ErrorMessage
		outcome = "held"
	}
	metrics.PipelineResults.WithLabelValues(outcome).Inc()

	// best-effort status write-back; the pipeline result stands regardless
	h.writeBack(ctx, aggregate, target, note)

	return result, nil
}

func (h *ProcessOrderCommandHandler) fetchOrder(ctx context.Context, cmd ProcessOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h *ProcessOrderCommandHandler) writeBack(ctx context.Context, aggregate *order.Order, target order.Status, note string) {
	if err := aggregate.ChangeStatus(target, note); err != nil {
		return
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return
	}

	_ = uow.Commit(ctx)
}
