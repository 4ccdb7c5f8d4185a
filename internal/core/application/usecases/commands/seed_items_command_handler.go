package commands

import (
	"context"

	"oms/internal/core/domain/model/item"
)

// SeedItemsCommandHandler guarantees the seed-once invariant of the item
// catalog: exactly item.CatalogSize rows exist after a successful run.
//
// The operation is idempotent: when the catalog is already complete it is a
// no-op; an incomplete catalog is wiped and re-inserted inside a single
// transaction.
type SeedItemsCommandHandler struct {
	uowFactory ItemUoWFactory
}

// NewSeedItemsCommandHandler creates a handler for catalog seeding.
func NewSeedItemsCommandHandler(uowFactory ItemUoWFactory) SeedItemsCommandHandler {
	return SeedItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle ensures the catalog is fully seeded.
func (h *SeedItemsCommandHandler) Handle(ctx context.Context, cmd SeedItemsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ItemRepository()

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	if count >= item.CatalogSize {
		return uow.Commit(ctx)
	}

	if err = repo.RemoveAll(ctx); err != nil {
		return err
	}

	if err = repo.AddBatch(ctx, item.DefaultCatalog()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
