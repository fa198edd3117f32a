package commands

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrAssignChefCommandIsNotConstructed = errors.New(
	"AssignChefCommand must be created via NewAssignChefCommand constructor",
)

// AssignChefCommand represents a request to manually assign or reassign an
// order to a specific chef, overriding the least-loaded dispatch.
type AssignChefCommand struct {
	orderID kernel.UUID
	chefID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignChefCommand creates a command to assign a chef to an order.
func NewAssignChefCommand(orderID, chefID kernel.UUID) (AssignChefCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		chefID.Validate(),
	); err != nil {
		return AssignChefCommand{}, err
	}

	return AssignChefCommand{
		orderID: orderID,
		chefID:  chefID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignChefCommand) Validate() error {
	return c.guard.Validate(ErrAssignChefCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignChefCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ChefID returns the chef taking the order.
func (c AssignChefCommand) ChefID() kernel.UUID {
	return c.chefID
}
