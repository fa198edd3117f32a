package commands

import (
	"errors"
	"strings"

	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrReserveTableCommandIsNotConstructed = errors.New(
	"ReserveTableCommand must be created via NewReserveTableCommand constructor",
)

// ReserveTableCommand represents a walk-in reservation request for a
// specific table.
type ReserveTableCommand struct {
	number int
	party  table.Party

	guard guard.ConstructorGuard
}

// NewReserveTableCommand creates a command to reserve a table.
func NewReserveTableCommand(number int, party table.Party) (ReserveTableCommand, error) {
	if number < 1 {
		return ReserveTableCommand{}, errs.NewValueIsInvalidError("number")
	}
	if strings.TrimSpace(party.CustomerName) == "" {
		return ReserveTableCommand{}, errs.NewValueIsRequiredError("customerName")
	}
	if party.PartySize < 1 {
		return ReserveTableCommand{}, errs.NewValueIsInvalidError("partySize")
	}

	return ReserveTableCommand{
		number: number,
		party:  party,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveTableCommand) Validate() error {
	return c.guard.Validate(ErrReserveTableCommandIsNotConstructed)
}

// Number returns the table to reserve.
func (c ReserveTableCommand) Number() int {
	return c.number
}

// Party returns who is taking the table.
func (c ReserveTableCommand) Party() table.Party {
	return c.party
}
