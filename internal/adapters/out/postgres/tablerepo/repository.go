package tablerepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM. Tables are
// addressed by number rather than a kernel identifier, so this repository
// does not participate in aggregate tracking.
type GormTableRepository struct {
	db *gorm.DB
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB) *GormTableRepository {
	return &GormTableRepository{db: db}
}

// Add saves a new table.
func (r *GormTableRepository) Add(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves a table's attributes. The reservation flag moves only
// through Reserve and Release.
func (r *GormTableRepository) Update(ctx context.Context, aggregate *table.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("number = ?", aggregate.Number()).
		Updates(map[string]any{
			"capacity": aggregate.Capacity(),
			"name":     aggregate.Name(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table", aggregate.Number())
	}

	return nil
}

// Get retrieves a table by number.
func (r *GormTableRepository) Get(ctx context.Context, number int) (*table.Table, error) {
	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every table ordered by number.
func (r *GormTableRepository) GetAll(ctx context.Context) ([]*table.Table, error) {
	var dtos []TableDTO
	if err := r.db.WithContext(ctx).Order("number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Reserve flips the reservation flag and stores the party, only when the
// table is currently free. Two writers racing for one table cannot both see
// is_reserved false.
func (r *GormTableRepository) Reserve(ctx context.Context, number int, party table.Party) error {
	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("number = ? AND is_reserved = false", number).
		Updates(map[string]any{
			"is_reserved":         true,
			"reserved_by_name":    party.CustomerName,
			"reserved_by_phone":   party.PhoneNumber,
			"reserved_party_size": party.PartySize,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&TableDTO{}).
			Where("number = ?", number).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("table", number)
		}
		return table.ErrAlreadyReserved
	}

	return nil
}

// Release clears the reservation. Releasing a free or missing table changes
// nothing.
func (r *GormTableRepository) Release(ctx context.Context, number int) error {
	return r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("number = ?", number).
		Updates(map[string]any{
			"is_reserved":         false,
			"reserved_by_name":    nil,
			"reserved_by_phone":   nil,
			"reserved_party_size": nil,
		}).Error
}

// Delete removes the table and shifts every higher number down by one.
func (r *GormTableRepository) Delete(ctx context.Context, number int) error {
	result := r.db.WithContext(ctx).Delete(&TableDTO{}, "number = ?", number)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table", number)
	}

	return r.db.WithContext(ctx).
		Exec("UPDATE tables SET number = number - 1 WHERE number > ?", number).Error
}

func toDomainSlice(dtos []TableDTO) ([]*table.Table, error) {
	tables := make([]*table.Table, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
