package menurepo

import (
	"context"
	"database/sql"
	"errors"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new menu item.
func (r *GormMenuRepository) Add(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a menu item's attributes. Stock moves only through
// ReserveStock and RestoreStock.
func (r *GormMenuRepository) Update(ctx context.Context, aggregate *menu.MenuItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":             dto.Name,
			"description":      dto.Description,
			"price":            dto.Price,
			"preparation_time": dto.PreparationTime,
			"category":         dto.Category,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a menu item by identifier.
func (r *GormMenuRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every menu item.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("category, name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// ReserveStock decrements stock by quantity in one conditional statement and
// returns the committed snapshot. The decrement happens only when enough
// stock remains, so concurrent reservations can never drive stock negative.
func (r *GormMenuRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) (menu.Snapshot, error) {
	if err := id.Validate(); err != nil {
		return menu.Snapshot{}, err
	}
	if quantity < 1 {
		return menu.Snapshot{}, errs.NewValueIsInvalidError("quantity")
	}

	var snapshot menu.Snapshot
	row := r.db.WithContext(ctx).Raw(`
		UPDATE menu_items
		SET stock = stock - ?
		WHERE id = ? AND stock >= ?
		RETURNING name, price, preparation_time
	`, quantity, id.Bytes(), quantity).Row()

	err := row.Scan(&snapshot.Name, &snapshot.UnitPrice, &snapshot.PreparationTime)
	if err == nil {
		return snapshot, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return menu.Snapshot{}, err
	}

	var count int64
	if err = r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return menu.Snapshot{}, err
	}
	if count == 0 {
		return menu.Snapshot{}, errs.NewObjectNotFoundError("menuItem", id.String())
	}
	return menu.Snapshot{}, menu.ErrInsufficientStock
}

// RestoreStock increments stock by quantity. Restoring a since-deleted item
// changes nothing.
func (r *GormMenuRepository) RestoreStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}

	return r.db.WithContext(ctx).
		Exec("UPDATE menu_items SET stock = stock + ? WHERE id = ?", quantity, id.Bytes()).Error
}

// Delete removes the menu item.
func (r *GormMenuRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", id.String())
	}

	return nil
}
