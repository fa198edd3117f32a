package commands

import (
	"errors"
	"strings"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add a dish to the menu with
// its initial stock.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	name            string
	description     string
	price           float64
	preparationTime int
	category        string
	stock           int

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
func NewCreateMenuItemCommand(
	name, description string,
	price float64,
	preparationTime int,
	category string,
	stock int,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setPreparationTime(preparationTime),
		cmd.setStock(stock),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	cmd.description = description
	cmd.category = category
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// Name returns the dish name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the optional description.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the unit price.
func (c CreateMenuItemCommand) Price() float64 {
	return c.price
}

// PreparationTime returns the preparation time in minutes.
func (c CreateMenuItemCommand) PreparationTime() int {
	return c.preparationTime
}

// Category returns the optional menu category.
func (c CreateMenuItemCommand) Category() string {
	return c.category
}

// Stock returns the initial stock level.
func (c CreateMenuItemCommand) Stock() int {
	return c.stock
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}

func (c *CreateMenuItemCommand) setPreparationTime(preparationTime int) error {
	if preparationTime < 1 {
		return errs.NewValueIsInvalidError("preparationTime")
	}
	c.preparationTime = preparationTime
	return nil
}

func (c *CreateMenuItemCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidError("stock")
	}
	c.stock = stock
	return nil
}
