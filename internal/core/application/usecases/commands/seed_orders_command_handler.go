package commands

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"oms/internal/core/domain/model/item"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
)

// seedCustomerNames is the pool of mock customer names used when generating
// orders for simulation.
var seedCustomerNames = []string{
	"Alex Morgan", "Bailey Quinn", "Casey Reed", "Dana Wells", "Eli Foster",
	"Frankie Adams", "Gray Bennett", "Harper Coleman", "Indie Shaw", "Jordan Blake",
	"Kai Sutton", "Logan Pierce", "Morgan Ellis", "Noa Hartley", "Oakley Marsh",
	"Parker Lane", "Quinn Avery", "Riley Dawson", "Sage Monroe", "Taylor Brooks",
	"Uma Hollis", "Val Kendall", "Winter Hayes", "Xen Carver", "Yael Norton",
}

// SeedOrdersCommandHandler generates mock PENDING orders for simulation and
// load purposes. Per-order creation failures are collected and returned
// joined; a failure never stops the rest of the batch.
type SeedOrdersCommandHandler struct {
	createHandler CreateOrderCommandHandler
}

// NewSeedOrdersCommandHandler creates a handler delegating each generated
// draft to the regular order creation path.
func NewSeedOrdersCommandHandler(createHandler CreateOrderCommandHandler) SeedOrdersCommandHandler {
	return SeedOrdersCommandHandler{
		createHandler: createHandler,
	}
}

// Handle generates and persists cmd.Count() mock orders.
func (h *SeedOrdersCommandHandler) Handle(ctx context.Context, cmd SeedOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var seedErrs []error
	for i := 0; i < cmd.Count(); i++ {
		createCmd, err := h.mockOrderDraft(i)
		if err != nil {
			seedErrs = append(seedErrs, fmt.Errorf("generating mock order %d: %w", i+1, err))
			continue
		}

		if _, err = h.createHandler.Handle(ctx, createCmd); err != nil {
			seedErrs = append(seedErrs, fmt.Errorf("creating mock order %d: %w", i+1, err))
		}
	}

	return errors.Join(seedErrs...)
}

func (h *SeedOrdersCommandHandler) mockOrderDraft(i int) (CreateOrderCommand, error) {
	nameIdx := i % len(seedCustomerNames)
	customer, err := order.NewCustomer(
		fmt.Sprintf("CUST-%d", nameIdx+1),
		seedCustomerNames[nameIdx],
		fmt.Sprintf("customer%d@example.com", nameIdx+1),
		fmt.Sprintf("090%07d", rand.Intn(9000000)+1000000), //nolint:gosec //mock data
	)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	// dollars-and-cents total between 10.00 and 2000.00
	amount := float64(rand.Intn(199001)+1000) / 100 //nolint:gosec //mock data
	total, err := kernel.NewMoney(amount, kernel.DefaultCurrency)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	channels := order.Channels()
	channel := channels[rand.Intn(len(channels))] //nolint:gosec //mock data

	itemID := rand.Intn(item.CatalogSize) + 1 //nolint:gosec //mock data

	address := fmt.Sprintf("%d Main Street, District %d, Metro City",
		rand.Intn(100)+1, rand.Intn(20)+1) //nolint:gosec //mock data

	return NewCreateOrderCommand(
		customer, total, channel, &itemID,
		"CREDIT_CARD", address,
		fmt.Sprintf("Mock order %d", i+1),
	)
}
