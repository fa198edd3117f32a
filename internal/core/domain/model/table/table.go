// Package table contains the Table aggregate: a dining table identified by
// its numeric business key, with an exclusive reservation flag.
// A table is reserved iff exactly one active dine-in order references its
// number; the reservation must be released when that order is served or
// deleted.
package table

import (
	"errors"
	"fmt"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// Capacities a table may have.
var validCapacities = map[int]bool{2: true, 4: true, 6: true, 8: true}

// ValidateCapacity reports whether the seat count is one a table may have.
func ValidateCapacity(capacity int) error {
	if !validCapacities[capacity] {
		return ErrInvalidCapacity
	}
	return nil
}

var (
	// ErrTableIsNotConstructed is returned when a Table was not created
	// through NewTable or RestoreTable.
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable constructor")

	// ErrAlreadyReserved is returned when reserving a table that is
	// already held by another order.
	ErrAlreadyReserved = errors.New("table is already reserved")

	// ErrInvalidCapacity is returned for capacities outside {2, 4, 6, 8}.
	ErrInvalidCapacity = errors.New("table capacity must be 2, 4, 6, or 8")
)

// Party holds the reservation details stored while a table is reserved.
type Party struct {
	CustomerName string
	PhoneNumber  string
	PartySize    int
}

// Table is an aggregate root keyed by its table number. The number is a
// business key distinct from the storage key: deleting a table renumbers all
// higher-numbered tables, and orders reference tables by this number so they
// observe the renumbering.
type Table struct {
	number     int
	capacity   int
	name       string
	isReserved bool
	reservedBy *Party

	guard guard.ConstructorGuard
}

// NewTable creates an unreserved table.
func NewTable(number, capacity int, name string) (*Table, error) {
	if number < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("table number", fmt.Errorf("%d is not greater than 0", number))
	}
	if err := ValidateCapacity(capacity); err != nil {
		return nil, err
	}

	return &Table{
		number:   number,
		capacity: capacity,
		name:     name,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreTable reconstructs a table from persistence, including an active
// reservation.
func RestoreTable(number, capacity int, name string, reservedBy *Party) (*Table, error) {
	t, err := NewTable(number, capacity, name)
	if err != nil {
		return nil, err
	}

	if reservedBy != nil {
		p := *reservedBy
		t.isReserved = true
		t.reservedBy = &p
	}
	return t, nil
}

// Validate ensures the table was created through a constructor.
func (t *Table) Validate() error {
	if t == nil {
		return ErrTableIsNotConstructed
	}
	return t.guard.Validate(ErrTableIsNotConstructed)
}

// Number returns the table's business key.
func (t *Table) Number() int {
	return t.number
}

// Capacity returns how many guests the table seats.
func (t *Table) Capacity() int {
	return t.capacity
}

// Name returns the optional display name.
func (t *Table) Name() string {
	return t.name
}

// IsReserved reports whether the table is currently held.
func (t *Table) IsReserved() bool {
	return t.isReserved
}

// ReservedBy returns the reservation details, or nil when unreserved.
func (t *Table) ReservedBy() *Party {
	if t.reservedBy == nil {
		return nil
	}
	p := *t.reservedBy
	return &p
}

// Reserve marks the table as held and records the party. Reserving an
// already-reserved table fails with ErrAlreadyReserved.
func (t *Table) Reserve(party Party) error {
	if t.isReserved {
		return fmt.Errorf("%w: table %d", ErrAlreadyReserved, t.number)
	}

	t.isReserved = true
	t.reservedBy = &party
	return nil
}

// Release clears the reservation. Releasing an unreserved table is a no-op,
// so double releases from racing writers are harmless.
func (t *Table) Release() {
	t.isReserved = false
	t.reservedBy = nil
}

// Renumber shifts the business key after a lower-numbered table is deleted.
func (t *Table) Renumber(number int) error {
	if number < 1 {
		return errs.NewValueIsInvalidErrorWithCause("table number", fmt.Errorf("%d is not greater than 0", number))
	}
	t.number = number
	return nil
}
