package ports

import (
	"context"

	"kitchen/internal/core/domain/model/table"
)

// TableRepository is the persistence contract for table aggregates, keyed by
// the numeric business key (table number), never by the storage key, so the
// core correctly observes renumbering after table deletion.
type TableRepository interface {
	// Add persists a new table.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists changes to an existing table's attributes.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table by its number.
	Get(ctx context.Context, number int) (*table.Table, error)

	// GetAll retrieves every table ordered by number.
	GetAll(ctx context.Context) ([]*table.Table, error)

	// Reserve atomically flips the reservation flag and stores the party.
	// It fails with errs.ObjectNotFoundError when the table does not
	// exist and table.ErrAlreadyReserved when it is already held, so two
	// concurrent reservations of one table can never both succeed.
	Reserve(ctx context.Context, number int, party table.Party) error

	// Release clears the reservation; releasing an unreserved or missing
	// table is a no-op.
	Release(ctx context.Context, number int) error

	// Delete removes the table and decrements the number of every
	// higher-numbered table, keeping the numbering dense.
	Delete(ctx context.Context, number int) error
}
