// Package ports defines repository interfaces for the order tracking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders with their
// complete state: items and the append-only change log.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: the order row,
	// the current item set, and any newly appended change records. The whole
	// write happens in the caller's transaction so an item mutation and its
	// change record land together or not at all.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its items and change log.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
