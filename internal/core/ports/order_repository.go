// Package ports defines the persistence contracts between the order
// management domain and its storage adapters, enabling dependency inversion
// and testability. The Order Store owns all persisted rows; domain services
// only ever operate on snapshots handed to them.
package ports

import (
	"context"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate atomically with
	// respect to concurrent readers: a reader never observes a half-applied
	// status/note pair. Returns a not-found error when the id does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns a typed not-found error when the id is absent.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetPage retrieves a bounded page of orders ordered by creation time
	// descending, regardless of status.
	GetPage(ctx context.Context, limit, offset int) ([]*order.Order, error)
}
