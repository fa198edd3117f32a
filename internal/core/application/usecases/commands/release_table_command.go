package commands

import (
	"errors"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrReleaseTableCommandIsNotConstructed = errors.New(
	"ReleaseTableCommand must be created via NewReleaseTableCommand constructor",
)

// ReleaseTableCommand represents a request to clear a table's reservation.
type ReleaseTableCommand struct {
	number int

	guard guard.ConstructorGuard
}

// NewReleaseTableCommand creates a command to release a table.
func NewReleaseTableCommand(number int) (ReleaseTableCommand, error) {
	if number < 1 {
		return ReleaseTableCommand{}, errs.NewValueIsInvalidError("number")
	}

	return ReleaseTableCommand{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseTableCommand) Validate() error {
	return c.guard.Validate(ErrReleaseTableCommandIsNotConstructed)
}

// Number returns the table to release.
func (c ReleaseTableCommand) Number() int {
	return c.number
}
