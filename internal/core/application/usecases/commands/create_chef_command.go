package commands

import (
	"errors"
	"strings"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrCreateChefCommandIsNotConstructed = errors.New(
	"CreateChefCommand must be created via NewCreateChefCommand constructor",
)

// CreateChefCommand represents a request to add a chef to the roster.
type CreateChefCommand struct {
	name string

	guard guard.ConstructorGuard
}

// NewCreateChefCommand creates a command to add a chef.
func NewCreateChefCommand(name string) (CreateChefCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreateChefCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateChefCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateChefCommand) Validate() error {
	return c.guard.Validate(ErrCreateChefCommandIsNotConstructed)
}

// Name returns the chef's name.
func (c CreateChefCommand) Name() string {
	return c.name
}
