package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/pkg/guard"
)

var ErrGetTablesQueryIsNotConstructed = errors.New(
	"GetTablesQuery must be created via NewGetTablesQuery constructor",
)

// GetTablesQuery retrieves tables, optionally restricted to unreserved
// tables seating at least a given party size.
type GetTablesQuery struct {
	availableOnly bool
	minCapacity   int

	guard guard.ConstructorGuard
}

// NewGetTablesQuery creates a query for every table.
func NewGetTablesQuery() GetTablesQuery {
	return GetTablesQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAvailableTablesQuery creates a query for unreserved tables whose
// capacity is at least the given seat count.
func NewGetAvailableTablesQuery(minCapacity int) (GetTablesQuery, error) {
	if err := table.ValidateCapacity(minCapacity); err != nil {
		return GetTablesQuery{}, err
	}

	return GetTablesQuery{
		availableOnly: true,
		minCapacity:   minCapacity,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetTablesQueryIsNotConstructed)
}

// AvailableOnly reports whether reserved tables are filtered out.
func (q GetTablesQuery) AvailableOnly() bool {
	return q.availableOnly
}

// MinCapacity returns the capacity floor for the availability filter.
func (q GetTablesQuery) MinCapacity() int {
	return q.minCapacity
}

// GetTablesQueryResponse is one table with its reservation state.
type GetTablesQueryResponse struct {
	Number       int
	Capacity     int
	Name         string
	IsReserved   bool
	CustomerName string
	PhoneNumber  string
	PartySize    int
}
