// Package chefrepo implements chef persistence. The load counter lives on
// the chef row; the assigned set lives in the chef_orders join table. Both
// move together through AcquireOrder and ReleaseOrder, atomically in the
// database.
package chefrepo

import (
	"kitchen/internal/core/domain/model/chef"
	"kitchen/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ChefDTO represents the database structure for chef aggregates.
type ChefDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255)"`
	ActiveOrders int
	Orders       []ChefOrderDTO `gorm:"foreignKey:ChefID;constraint:OnDelete:CASCADE"`
}

// TableName maps ChefDTO to the "chefs" table.
func (ChefDTO) TableName() string {
	return "chefs"
}

// ChefOrderDTO is one row of the chef's assigned set.
type ChefOrderDTO struct {
	ChefID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName maps ChefOrderDTO to the "chef_orders" table.
func (ChefOrderDTO) TableName() string {
	return "chef_orders"
}

// fromDomain converts a chef aggregate to its database representation.
func fromDomain(aggregate *chef.Chef) ChefDTO {
	orders := make([]ChefOrderDTO, 0, len(aggregate.AssignedOrders()))
	for _, orderID := range aggregate.AssignedOrders() {
		orders = append(orders, ChefOrderDTO{
			ChefID:  aggregate.ID().Bytes(),
			OrderID: orderID.Bytes(),
		})
	}

	return ChefDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		ActiveOrders: aggregate.ActiveOrders(),
		Orders:       orders,
	}
}

// toDomain reconstructs a chef aggregate from its database representation.
func toDomain(dto ChefDTO) (*chef.Chef, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assigned := make([]kernel.UUID, 0, len(dto.Orders))
	for _, row := range dto.Orders {
		orderID, rowErr := kernel.UUIDFromBytes(row.OrderID[:])
		if rowErr != nil {
			return nil, rowErr
		}
		assigned = append(assigned, orderID)
	}

	return chef.RestoreChef(id, dto.Name, assigned)
}
