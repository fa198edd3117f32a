package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery retrieves a single dish.
type GetMenuItemQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a query for one menu item.
func NewGetMenuItemQuery(menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// MenuItemID returns the dish to fetch.
func (q GetMenuItemQuery) MenuItemID() kernel.UUID {
	return q.menuItemID
}
