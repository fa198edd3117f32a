package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrRemoveChefCommandIsNotConstructed = errors.New(
	"RemoveChefCommand must be created via NewRemoveChefCommand constructor",
)

// RemoveChefCommand represents a request to remove a chef from the roster.
type RemoveChefCommand struct {
	chefID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveChefCommand creates a command to remove a chef.
func NewRemoveChefCommand(chefID kernel.UUID) (RemoveChefCommand, error) {
	if err := chefID.Validate(); err != nil {
		return RemoveChefCommand{}, err
	}

	return RemoveChefCommand{
		chefID: chefID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveChefCommand) Validate() error {
	return c.guard.Validate(ErrRemoveChefCommandIsNotConstructed)
}

// ChefID returns the chef to remove.
func (c RemoveChefCommand) ChefID() kernel.UUID {
	return c.chefID
}
