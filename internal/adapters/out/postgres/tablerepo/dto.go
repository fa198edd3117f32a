// Package tablerepo implements table persistence. Tables carry a surrogate
// storage key, but the core addresses them by table number: numbers shift
// when a table is removed, the storage key never leaks out.
package tablerepo

import (
	"kitchen/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for table aggregates.
type TableDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number            int       `gorm:"uniqueIndex"`
	Capacity          int
	Name              string `gorm:"type:varchar(255)"`
	IsReserved        bool
	ReservedByName    *string `gorm:"type:varchar(255)"`
	ReservedByPhone   *string `gorm:"type:varchar(32)"`
	ReservedPartySize *int
}

// TableName maps TableDTO to the "tables" table.
func (TableDTO) TableName() string {
	return "tables"
}

// fromDomain converts a table aggregate to its database representation.
// The storage key is generated here on first save.
func fromDomain(aggregate *table.Table) TableDTO {
	dto := TableDTO{
		ID:         uuid.New(),
		Number:     aggregate.Number(),
		Capacity:   aggregate.Capacity(),
		Name:       aggregate.Name(),
		IsReserved: aggregate.IsReserved(),
	}

	if party := aggregate.ReservedBy(); party != nil {
		name := party.CustomerName
		phone := party.PhoneNumber
		size := party.PartySize
		dto.ReservedByName = &name
		dto.ReservedByPhone = &phone
		dto.ReservedPartySize = &size
	}

	return dto
}

// toDomain reconstructs a table aggregate from its database representation.
func toDomain(dto TableDTO) (*table.Table, error) {
	var party *table.Party
	if dto.IsReserved && dto.ReservedByName != nil {
		party = &table.Party{
			CustomerName: *dto.ReservedByName,
			PartySize:    1,
		}
		if dto.ReservedByPhone != nil {
			party.PhoneNumber = *dto.ReservedByPhone
		}
		if dto.ReservedPartySize != nil {
			party.PartySize = *dto.ReservedPartySize
		}
	}

	return table.RestoreTable(dto.Number, dto.Capacity, dto.Name, party)
}
