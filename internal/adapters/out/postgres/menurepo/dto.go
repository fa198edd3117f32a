// Package menurepo implements menu item persistence and the stock ledger.
// Stock moves through single-statement conditional updates, never through a
// read-modify-write in application code.
package menurepo

import (
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents the database structure for menu items.
type MenuItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255)"`
	Description     string
	Price           float64 `gorm:"type:numeric(10,2)"`
	PreparationTime int
	Category        string `gorm:"type:varchar(64)"`
	Stock           int
}

// TableName maps MenuItemDTO to the "menu_items" table.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// fromDomain converts a menu item aggregate to its database representation.
func fromDomain(aggregate *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Description:     aggregate.Description(),
		Price:           aggregate.Price(),
		PreparationTime: aggregate.PreparationTime(),
		Category:        aggregate.Category(),
		Stock:           aggregate.Stock(),
	}
}

// toDomain reconstructs a menu item aggregate from its database
// representation.
func toDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		dto.PreparationTime,
		dto.Category,
		dto.Stock,
	)
}
