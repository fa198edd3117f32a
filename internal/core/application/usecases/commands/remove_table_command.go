package commands

import (
	"errors"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrRemoveTableCommandIsNotConstructed = errors.New(
	"RemoveTableCommand must be created via NewRemoveTableCommand constructor",
)

// RemoveTableCommand represents a request to remove a table from the floor.
type RemoveTableCommand struct {
	number int

	guard guard.ConstructorGuard
}

// NewRemoveTableCommand creates a command to remove a table by number.
func NewRemoveTableCommand(number int) (RemoveTableCommand, error) {
	if number < 1 {
		return RemoveTableCommand{}, errs.NewValueIsInvalidError("number")
	}

	return RemoveTableCommand{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveTableCommand) Validate() error {
	return c.guard.Validate(ErrRemoveTableCommandIsNotConstructed)
}

// Number returns the table to remove.
func (c RemoveTableCommand) Number() int {
	return c.number
}
