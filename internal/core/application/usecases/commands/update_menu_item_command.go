package commands

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to change a dish's attributes.
// Stock is not changed here; it moves only through order creation and order
// deletion.
type UpdateMenuItemCommand struct {
	menuItemID      kernel.UUID
	name            string
	description     string
	price           float64
	preparationTime int
	category        string

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item.
func NewUpdateMenuItemCommand(
	menuItemID kernel.UUID,
	name, description string,
	price float64,
	preparationTime int,
	category string,
) (UpdateMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return UpdateMenuItemCommand{}, err
	}
	if strings.TrimSpace(name) == "" {
		return UpdateMenuItemCommand{}, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return UpdateMenuItemCommand{}, errs.NewValueIsInvalidError("price")
	}
	if preparationTime < 1 {
		return UpdateMenuItemCommand{}, errs.NewValueIsInvalidError("preparationTime")
	}

	return UpdateMenuItemCommand{
		menuItemID:      menuItemID,
		name:            name,
		description:     description,
		price:           price,
		preparationTime: preparationTime,
		category:        category,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the item to update.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the new unit price.
func (c UpdateMenuItemCommand) Price() float64 {
	return c.price
}

// PreparationTime returns the new preparation time in minutes.
func (c UpdateMenuItemCommand) PreparationTime() int {
	return c.preparationTime
}

// Category returns the new category.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}
