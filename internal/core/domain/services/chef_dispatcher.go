// Package services contains stateless domain services coordinating multiple
// aggregates. ChefDispatcher implements the least-loaded assignment policy
// for new orders.
package services

import (
	"errors"
	"math/rand/v2"

	"kitchen/internal/core/domain/model/chef"
	"kitchen/internal/core/domain/model/order"
)

// ErrNoChefsAvailable is returned when the chef set is empty. Callers treat
// it as "order created but unassigned", not as a failure of order creation.
var ErrNoChefsAvailable = errors.New("no chefs available")

// ChefDispatcher selects a chef for a new order.
//
// Policy: pick the minimum active-order count; among chefs tied at the
// minimum, pick one uniformly at random. The random tie-break spreads load
// evenly instead of favoring insertion order.
type ChefDispatcher struct {
	pick func(n int) int
}

// NewChefDispatcher creates a dispatcher with the uniform-random tie-break.
func NewChefDispatcher() ChefDispatcher {
	return ChefDispatcher{pick: rand.IntN}
}

// NewChefDispatcherWithPick creates a dispatcher with a custom tie-break,
// used by tests that need deterministic selection.
func NewChefDispatcherWithPick(pick func(n int) int) ChefDispatcher {
	return ChefDispatcher{pick: pick}
}

// Dispatch binds the least-loaded chef to the order: the chosen chef takes
// the order id (incrementing load) and the order records the chef reference.
// Returns ErrNoChefsAvailable when no chefs exist.
func (d ChefDispatcher) Dispatch(o *order.Order, chefs []*chef.Chef) (*chef.Chef, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	chosen, err := d.selectLeastLoaded(chefs)
	if err != nil {
		return nil, err
	}

	if err = chosen.TakeOrder(o.ID()); err != nil {
		return nil, err
	}

	if err = o.AssignChef(chosen.ID()); err != nil {
		return nil, err
	}

	return chosen, nil
}

// selectLeastLoaded finds the chefs tied at the minimum active-order count
// and picks one of them at random.
func (d ChefDispatcher) selectLeastLoaded(chefs []*chef.Chef) (*chef.Chef, error) {
	var candidates []*chef.Chef
	minLoad := 0

	for _, c := range chefs {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		switch {
		case len(candidates) == 0 || c.ActiveOrders() < minLoad:
			minLoad = c.ActiveOrders()
			candidates = candidates[:0]
			candidates = append(candidates, c)
		case c.ActiveOrders() == minLoad:
			candidates = append(candidates, c)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrNoChefsAvailable
	}

	return candidates[d.pick(len(candidates))], nil
}
