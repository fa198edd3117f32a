package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrGetAllChefsQueryIsNotConstructed = errors.New(
	"GetAllChefsQuery must be created via NewGetAllChefsQuery constructor",
)

// GetAllChefsQuery retrieves the roster with each chef's current load.
//
// Example:
//
//	query := NewGetAllChefsQuery()
//	handler := NewGetAllChefsQueryHandler(db)
//
//	chefs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get chefs: %w", err)
//	}
type GetAllChefsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllChefsQuery creates a parameterless roster query.
func NewGetAllChefsQuery() GetAllChefsQuery {
	return GetAllChefsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllChefsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllChefsQueryIsNotConstructed)
}

// GetAllChefsQueryResponse is one chef in the roster.
type GetAllChefsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	ActiveOrders int
}
