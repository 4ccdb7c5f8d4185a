package commands

import (
	"context"
	"errors"
	"fmt"

	"oms/internal/core/domain/model/order"
	"oms/internal/core/domain/services"
	"oms/internal/pkg/metrics"
)

// AdvanceOrdersCommandHandler orchestrates one tick of the automatic order
// advancer. For every non-terminal order in the scanned page it asks the
// lifecycle engine for the next transition and applies it as an atomic status
// update with an audit note.
//
// Per-order failures are isolated: one failed update never aborts the scan of
// the remaining orders. The handler collects per-order errors and returns
// them joined for the caller to report; only a failure of the page fetch
// itself aborts the tick.
type AdvanceOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.LifecycleEngine
}

// NewAdvanceOrdersCommandHandler creates a handler driving orders through the
// given lifecycle engine.
func NewAdvanceOrdersCommandHandler(uowFactory OrderUoWFactory, engine services.LifecycleEngine) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle processes one advancement tick.
func (h *AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	page, err := h.fetchPage(ctx, cmd.PageSize())
	if err != nil {
		return fmt.Errorf("fetching orders page: %w", err)
	}

	var tickErrs []error
	for _, aggregate := range page {
		if aggregate.Status().IsTerminal() {
			continue
		}

		transition, ok := h.engine.Next(aggregate.Status())
		if !ok {
			continue
		}

		if err := h.applyTransition(ctx, aggregate, transition); err != nil {
			tickErrs = append(tickErrs, fmt.Errorf("advancing order %s: %w", aggregate.ID(), err))
			continue
		}

		if transition.Next.IsTerminal() && transition.Note == services.NoteAutoException {
			metrics.OrdersExcepted.WithLabelValues(transition.Next.String()).Inc()
		} else {
			metrics.OrdersAdvanced.Inc()
		}
	}

	return errors.Join(tickErrs...)
}

// fetchPage reads the bounded order page inside its own short transaction.
func (h *AdvanceOrdersCommandHandler) fetchPage(ctx context.Context, pageSize int) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	page, err := uow.OrderRepository().GetPage(ctx, pageSize, 0)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return page, nil
}

// applyTransition updates a single order inside its own transaction, keeping
// failures isolated between orders.
func (h *AdvanceOrdersCommandHandler) applyTransition(
	ctx context.Context,
	aggregate *order.Order,
	transition services.Transition,
) error {
	if err := aggregate.ChangeStatus(transition.Next, transition.Note); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
