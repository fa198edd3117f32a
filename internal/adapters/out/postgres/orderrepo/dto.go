// Package orderrepo implements order persistence. Orders map to two tables:
// the order row itself and one row per line item, created and deleted
// together with their order.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for order aggregates. Status
// and order type are stored as their wire strings so the read side and ad
// hoc queries stay legible.
type OrderDTO struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Reference            string         `gorm:"type:varchar(32);uniqueIndex"`
	OrderType            string         `gorm:"type:varchar(16)"`
	Status               string         `gorm:"type:varchar(16);index"`
	TotalPrice           float64        `gorm:"type:numeric(10,2)"`
	TotalPreparationTime int
	TableNumber          *int
	CustomerName         string `gorm:"type:varchar(255)"`
	CustomerPhone        string `gorm:"type:varchar(32)"`
	CustomerAddress      string `gorm:"type:varchar(255)"`
	PartySize            int
	CookingInstructions  string
	ChefID               *uuid.UUID `gorm:"type:uuid;index"`
	ProcessingStartedAt  *time.Time
	CreatedAt            time.Time
	Items                []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName maps OrderDTO to the "orders" table.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item with its price and
// preparation-time snapshot.
type OrderItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID      uuid.UUID `gorm:"type:uuid"`
	Name            string    `gorm:"type:varchar(255)"`
	UnitPrice       float64   `gorm:"type:numeric(10,2)"`
	PreparationTime int
	Quantity        int
}

// TableName maps OrderItemDTO to the "order_items" table.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var chefID *uuid.UUID
	if id := aggregate.Chef(); id != nil {
		raw := id.Bytes()
		chefID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:              uuid.New(),
			OrderID:         aggregate.ID().Bytes(),
			MenuItemID:      item.MenuItemID().Bytes(),
			Name:            item.Name(),
			UnitPrice:       item.UnitPrice(),
			PreparationTime: item.PreparationTime(),
			Quantity:        item.Quantity(),
		})
	}

	customer := aggregate.Customer()
	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		Reference:            aggregate.Reference().String(),
		OrderType:            aggregate.Type().String(),
		Status:               aggregate.Status().String(),
		TotalPrice:           aggregate.TotalPrice(),
		TotalPreparationTime: aggregate.TotalPreparationTime(),
		TableNumber:          aggregate.TableNumber(),
		CustomerName:         customer.Name(),
		CustomerPhone:        customer.PhoneNumber(),
		CustomerAddress:      customer.Address(),
		PartySize:            customer.PartySize(),
		CookingInstructions:  aggregate.CookingInstructions(),
		ChefID:               chefID,
		ProcessingStartedAt:  aggregate.ProcessingStartedAt(),
		CreatedAt:            aggregate.CreatedAt(),
		Items:                items,
	}
}

// toDomain reconstructs an order aggregate from its database representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reference, err := kernel.OrderReferenceFromString(dto.Reference)
	if err != nil {
		return nil, err
	}

	orderType, err := order.ParseType(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var chefID *kernel.UUID
	if dto.ChefID != nil {
		cid, chefErr := kernel.UUIDFromBytes((*dto.ChefID)[:])
		if chefErr != nil {
			return nil, chefErr
		}
		chefID = &cid
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewLineItem(
			menuItemID,
			itemDTO.Name,
			itemDTO.UnitPrice,
			itemDTO.PreparationTime,
			itemDTO.Quantity,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	customer, err := order.NewCustomerInfo(
		dto.CustomerName,
		dto.CustomerPhone,
		dto.CustomerAddress,
		dto.PartySize,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		reference,
		orderType,
		items,
		dto.TotalPrice,
		dto.TotalPreparationTime,
		status,
		dto.TableNumber,
		customer,
		dto.CookingInstructions,
		chefID,
		dto.ProcessingStartedAt,
		dto.CreatedAt,
	)
}
