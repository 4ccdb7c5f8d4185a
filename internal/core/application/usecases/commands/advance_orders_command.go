package commands

import (
	"errors"
	"fmt"

	"oms/internal/pkg/errs"
	"oms/internal/pkg/guard"
)

var (
	ErrAdvanceOrdersCommandIsNotConstructed = errors.New(
		"AdvanceOrdersCommand must be created via NewAdvanceOrdersCommand constructor",
	)
)

// AdvanceOrdersCommand represents one scheduler tick of the automatic order
// advancer: scan a bounded page of orders and move every non-terminal one a
// single lifecycle step.
type AdvanceOrdersCommand struct { //nolint:recvcheck //using for validation
	pageSize int

	guard guard.ConstructorGuard
}

// NewAdvanceOrdersCommand creates an advancement command scanning at most
// pageSize orders per tick.
func NewAdvanceOrdersCommand(pageSize int) (AdvanceOrdersCommand, error) {
	if pageSize <= 0 {
		return AdvanceOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("pageSize",
			fmt.Errorf("%d is not greater than 0", pageSize))
	}

	return AdvanceOrdersCommand{
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrdersCommandIsNotConstructed)
}

// PageSize returns the maximum number of orders scanned per tick.
func (c AdvanceOrdersCommand) PageSize() int {
	return c.pageSize
}
