package ports

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
)

// MenuRepository is the persistence contract for menu items and the stock
// ledger.
//
// ReserveStock is atomic per item: the decrement only happens if enough
// stock remains, so two orders reserving the same item concurrently can
// never both succeed past the available quantity and stock never goes
// negative.
type MenuRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item by identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetAll retrieves every menu item.
	GetAll(ctx context.Context) ([]*menu.MenuItem, error)

	// ReserveStock atomically decrements stock by quantity and returns
	// the committed name/price/preparation-time snapshot. It fails with
	// errs.ObjectNotFoundError for unknown items and
	// menu.ErrInsufficientStock when fewer units remain than requested.
	ReserveStock(ctx context.Context, id kernel.UUID, quantity int) (menu.Snapshot, error)

	// RestoreStock atomically increments stock by quantity; used when an
	// order is deleted. Restoring a since-deleted item is a no-op.
	RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error

	// Delete removes the menu item.
	Delete(ctx context.Context, id kernel.UUID) error
}
