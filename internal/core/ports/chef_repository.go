package ports

import (
	"context"

	"kitchen/internal/core/domain/model/chef"
	"kitchen/internal/core/domain/model/kernel"
)

// ChefRepository is the persistence contract for chef aggregates.
//
// AcquireOrder and ReleaseOrder are the allocation engine's entry points:
// they update the active-order counter and the assigned set atomically in
// the database, so concurrent order creations cannot double-count a chef.
type ChefRepository interface {
	// Add persists a new chef.
	Add(ctx context.Context, aggregate *chef.Chef) error

	// Update persists changes to an existing chef's attributes.
	// The load counter and assigned set are maintained through
	// AcquireOrder/ReleaseOrder, not through Update.
	Update(ctx context.Context, aggregate *chef.Chef) error

	// Get retrieves a chef with their assigned order set.
	Get(ctx context.Context, id kernel.UUID) (*chef.Chef, error)

	// GetAll retrieves every chef; the dispatcher scans this for the
	// least-loaded selection.
	GetAll(ctx context.Context) ([]*chef.Chef, error)

	// AcquireOrder atomically adds the order to the chef's assigned set
	// and increments the active-order count.
	AcquireOrder(ctx context.Context, chefID, orderID kernel.UUID) error

	// ReleaseOrder atomically removes the order from the chef's assigned
	// set and decrements the count, floored at zero. It is idempotent:
	// releasing an order the chef no longer holds changes nothing, and a
	// chefID referring to a since-deleted chef is a no-op, not an error.
	ReleaseOrder(ctx context.Context, chefID, orderID kernel.UUID) error

	// Delete removes the chef. Callers reassign or release the chef's
	// active orders first.
	Delete(ctx context.Context, id kernel.UUID) error
}
