// Package chef contains the Chef aggregate: a kitchen worker whose load is
// tracked as an active-order count plus the set of assigned order ids.
// The count and the set always move together, so count == |assigned set|
// holds at every step.
package chef

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var (
	// ErrChefIsNotConstructed is returned when a Chef was not created
	// through NewChef or RestoreChef.
	ErrChefIsNotConstructed = errors.New("Chef must be created via NewChef constructor")

	// ErrNameIsRequired is returned when creating a chef without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrOrderAlreadyAssigned is returned when taking an order the chef
	// already holds.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to this chef")
)

// Chef is an aggregate root tracking one chef's identity and load.
// Only active orders (pending or processing) count against the load; an
// order leaving the active set must release the chef through ReleaseOrder.
type Chef struct {
	id             kernel.UUID
	name           string
	activeOrders   int
	assignedOrders []kernel.UUID

	guard guard.ConstructorGuard
}

// NewChef creates a chef with zero load.
func NewChef(id kernel.UUID, name string) (*Chef, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &Chef{
		id:    id,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreChef reconstructs a chef from persistence. The active-order count is
// derived from the assigned set so the two can never disagree after a load.
func RestoreChef(id kernel.UUID, name string, assignedOrders []kernel.UUID) (*Chef, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	for _, orderID := range assignedOrders {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Chef{
		id:             id,
		name:           name,
		activeOrders:   len(assignedOrders),
		assignedOrders: append([]kernel.UUID(nil), assignedOrders...),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the chef was created through a constructor.
func (c *Chef) Validate() error {
	if c == nil {
		return ErrChefIsNotConstructed
	}
	return c.guard.Validate(ErrChefIsNotConstructed)
}

// ID returns the chef's identifier.
func (c *Chef) ID() kernel.UUID {
	return c.id
}

// Name returns the chef's name.
func (c *Chef) Name() string {
	return c.name
}

// ActiveOrders returns the current load.
func (c *Chef) ActiveOrders() int {
	return c.activeOrders
}

// AssignedOrders returns a copy of the assigned order identifiers.
func (c *Chef) AssignedOrders() []kernel.UUID {
	return append([]kernel.UUID(nil), c.assignedOrders...)
}

// HasOrder reports whether the order is currently assigned to this chef.
func (c *Chef) HasOrder(orderID kernel.UUID) bool {
	for _, id := range c.assignedOrders {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// TakeOrder adds the order to the chef's assigned set and bumps the load.
func (c *Chef) TakeOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if c.HasOrder(orderID) {
		return ErrOrderAlreadyAssigned
	}

	c.assignedOrders = append(c.assignedOrders, orderID)
	c.activeOrders++
	return nil
}

// ReleaseOrder removes the order from the assigned set and decrements the
// load, floored at zero. Releasing an order the chef does not hold is a
// no-op, which makes double releases from racing writers harmless.
func (c *Chef) ReleaseOrder(orderID kernel.UUID) {
	for i, id := range c.assignedOrders {
		if id.IsEqual(orderID) {
			c.assignedOrders = append(c.assignedOrders[:i], c.assignedOrders[i+1:]...)
			if c.activeOrders > 0 {
				c.activeOrders--
			}
			return
		}
	}
}

// Rename changes the chef's display name.
func (c *Chef) Rename(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
