package commands

import (
	"errors"
	"fmt"

	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

// maxSeedBatch bounds one mock seeding request.
const maxSeedBatch = 100

var (
	ErrSeedOrdersCommandIsNotConstructed = errors.New(
		"SeedOrdersCommand must be created via NewSeedOrdersCommand constructor",
	)
)

// SeedOrdersCommand represents a request to generate a batch of mock PENDING
// orders with plausible randomized customer, channel, amount, and item data.
type SeedOrdersCommand struct { //nolint:recvcheck //using for validation
	count int

	guard guard.ConstructorGuard
}

// NewSeedOrdersCommand creates a seeding command for count orders.
func NewSeedOrdersCommand(count int) (SeedOrdersCommand, error) {
	if count < 1 || count > maxSeedBatch {
		return SeedOrdersCommand{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"count", count, 1, maxSeedBatch,
			fmt.Errorf("seed batch size must stay within bounds"))
	}

	return SeedOrdersCommand{
		count: count,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSeedOrdersCommandIsNotConstructed)
}

// Count returns the number of orders to generate.
func (c SeedOrdersCommand) Count() int {
	return c.count
}
