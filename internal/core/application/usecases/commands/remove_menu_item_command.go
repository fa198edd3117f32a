package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrRemoveMenuItemCommandIsNotConstructed = errors.New(
	"RemoveMenuItemCommand must be created via NewRemoveMenuItemCommand constructor",
)

// RemoveMenuItemCommand represents a request to take a dish off the menu.
type RemoveMenuItemCommand struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveMenuItemCommand creates a command to remove a menu item.
func NewRemoveMenuItemCommand(menuItemID kernel.UUID) (RemoveMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return RemoveMenuItemCommand{}, err
	}

	return RemoveMenuItemCommand{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the item to remove.
func (c RemoveMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}
