package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/pkg/guard"
)

var ErrCreateTableCommandIsNotConstructed = errors.New(
	"CreateTableCommand must be created via NewCreateTableCommand constructor",
)

// CreateTableCommand represents a request to add a table to the floor. The
// number is not part of the request: tables are numbered densely and the new
// table takes the next free number.
type CreateTableCommand struct {
	capacity int
	name     string

	guard guard.ConstructorGuard
}

// NewCreateTableCommand creates a command to add a table.
func NewCreateTableCommand(capacity int, name string) (CreateTableCommand, error) {
	if err := table.ValidateCapacity(capacity); err != nil {
		return CreateTableCommand{}, err
	}

	return CreateTableCommand{
		capacity: capacity,
		name:     name,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTableCommand) Validate() error {
	return c.guard.Validate(ErrCreateTableCommandIsNotConstructed)
}

// Capacity returns the requested seat count.
func (c CreateTableCommand) Capacity() int {
	return c.capacity
}

// Name returns the optional display name.
func (c CreateTableCommand) Name() string {
	return c.name
}
