// Package ports defines the contracts between the core and its external
// collaborators: per-aggregate repositories, the unit of work, and the
// notification sink. The repositories expose the atomic read-modify-write
// operations (stock reservation, table reservation, chef counters, status
// compare-and-swap) the allocation engine depends on.
package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order unconditionally.
	// Lifecycle transitions must go through UpdateStatusFrom instead.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusFrom persists the aggregate only if the stored status
	// still equals expected (compare-and-swap). When another writer
	// performed the transition first, it returns
	// order.ErrAlreadyTransitioned and writes nothing, so compensating
	// actions attached to the transition are never applied twice.
	UpdateStatusFrom(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order by its storage identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInProcessingStatus retrieves the orders the completion sweep
	// scans.
	GetAllInProcessingStatus(ctx context.Context) ([]*order.Order, error)

	// GetActiveByChef retrieves the pending/processing orders assigned to
	// a chef; used when a chef is removed and their load reassigned.
	GetActiveByChef(ctx context.Context, chefID kernel.UUID) ([]*order.Order, error)

	// Delete removes the order and its line items.
	Delete(ctx context.Context, id kernel.UUID) error
}
