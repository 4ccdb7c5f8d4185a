package commands

import (
	"errors"
	"fmt"

	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

var (
	ErrSimulateProcessingCommandIsNotConstructed = errors.New(
		"SimulateProcessingCommand must be created via NewSimulateProcessingCommand constructor",
	)
)

// SimulateProcessingCommand represents a batch validation run: scan a small
// page of orders and push every PENDING one through the validation pipeline.
type SimulateProcessingCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewSimulateProcessingCommand creates a batch processing command scanning at
// most batchSize orders.
func NewSimulateProcessingCommand(batchSize int) (SimulateProcessingCommand, error) {
	if batchSize <= 0 {
		return SimulateProcessingCommand{}, errs.NewValueIsInvalidErrorWithCause("batchSize",
			fmt.Errorf("%d is not greater than 0", batchSize))
	}

	return SimulateProcessingCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SimulateProcessingCommand) Validate() error {
	return c.guard.Validate(ErrSimulateProcessingCommandIsNotConstructed)
}

// BatchSize returns the maximum number of orders scanned per run.
func (c SimulateProcessingCommand) BatchSize() int {
	return c.batchSize
}
