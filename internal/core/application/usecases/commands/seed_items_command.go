package commands

import (
	"errors"

	"oms/internal/pkg/guard"
)

var (
	ErrSeedItemsCommandIsNotConstructed = errors.New(
		"SeedItemsCommand must be created via NewSeedItemsCommand constructor",
	)
)

// SeedItemsCommand represents a request to ensure the item catalog holds
// exactly its full set of reference rows.
type SeedItemsCommand struct {
	guard guard.ConstructorGuard
}

// NewSeedItemsCommand creates a catalog seeding command.
func NewSeedItemsCommand() SeedItemsCommand {
	return SeedItemsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c SeedItemsCommand) Validate() error {
	return c.guard.Validate(ErrSeedItemsCommandIsNotConstructed)
}
