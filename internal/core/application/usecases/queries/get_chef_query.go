package queries

import (
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/guard"
)

var ErrGetChefQueryIsNotConstructed = errors.New(
	"GetChefQuery must be created via NewGetChefQuery constructor",
)

// GetChefQuery retrieves a single chef with their assigned orders.
type GetChefQuery struct {
	chefID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetChefQuery creates a query for one chef.
func NewGetChefQuery(chefID kernel.UUID) (GetChefQuery, error) {
	if err := chefID.Validate(); err != nil {
		return GetChefQuery{}, err
	}

	return GetChefQuery{
		chefID: chefID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetChefQuery) Validate() error {
	return q.guard.Validate(ErrGetChefQueryIsNotConstructed)
}

// ChefID returns the chef to fetch.
func (q GetChefQuery) ChefID() kernel.UUID {
	return q.chefID
}

// GetChefQueryResponse is one chef with the orders they currently hold.
type GetChefQueryResponse struct {
	ID             kernel.UUID
	Name           string
	ActiveOrders   int
	AssignedOrders []kernel.UUID
}
