package ports

import (
	"context"

	"oms/internal/core/domain/model/item"
)

// ItemRepository defines the persistence contract for the item catalog.
// The catalog is seed-once reference data: exactly item.CatalogSize rows must
// exist before orders reference items.
type ItemRepository interface {
	// Count returns the number of catalog rows currently persisted.
	Count(ctx context.Context) (int64, error)

	// RemoveAll wipes the catalog. Used only when re-seeding an incomplete
	// catalog.
	RemoveAll(ctx context.Context) error

	// AddBatch persists a batch of catalog items.
	AddBatch(ctx context.Context, items []*item.Item) error
}
