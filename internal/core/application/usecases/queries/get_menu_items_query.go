package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery retrieves the full menu with current stock levels.
type GetMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a parameterless menu query.
func NewGetMenuItemsQuery() GetMenuItemsQuery {
	return GetMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// GetMenuItemsQueryResponse is one dish on the menu.
type GetMenuItemsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Description     string
	Price           float64
	PreparationTime int
	Category        string
	Stock           int
}
