package commands

import (
	"context"

	"oms/internal/core/ports"
)

// OrderUoW is the unit-of-work surface needed by commands that only touch
// orders.
type OrderUoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	OrderRepository() ports.OrderRepository
}

// OrderUoWFactory creates order units of work, one per business operation.
type OrderUoWFactory interface {
	Create() OrderUoW
}

// ItemUoW is the unit-of-work surface needed by commands that only touch the
// item catalog.
type ItemUoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	ItemRepository() ports.ItemRepository
}

// ItemUoWFactory creates item units of work, one per business operation.
type ItemUoWFactory interface {
	Create() ItemUoW
}
