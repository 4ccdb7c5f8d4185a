package commands

import (
	"context"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Assigns a generated identifier and persists the order in PENDING status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted order
// including its generated identifier and PENDING status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(
		kernel.NewOrderID(),
		cmd.Customer(),
		cmd.Total(),
		cmd.Channel(),
		cmd.ItemID(),
		cmd.PaymentMethod(),
		cmd.ShippingAddress(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
