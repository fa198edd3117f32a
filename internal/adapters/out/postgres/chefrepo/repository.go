package chefrepo

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/model/chef"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormChefRepository implements ChefRepository using GORM.
type GormChefRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormChefRepository creates a new GORM chef repository.
func NewGormChefRepository(db *gorm.DB, tracker aggregateTracker) *GormChefRepository {
	return &GormChefRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new chef.
func (r *GormChefRepository) Add(ctx context.Context, aggregate *chef.Chef) error {
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

// Update saves a chef's attributes. The counter and the assigned set move
// only through AcquireOrder and ReleaseOrder.
func (r *GormChefRepository) Update(ctx context.Context, aggregate *chef.Chef) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ChefDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("name", aggregate.Name())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("chef", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a chef with their assigned order set.
func (r *GormChefRepository) Get(ctx context.Context, id kernel.UUID) (*chef.Chef, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ChefDTO
	if err := r.db.WithContext(ctx).Preload("Orders").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("chef", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full roster with assigned order sets.
func (r *GormChefRepository) GetAll(ctx context.Context) ([]*chef.Chef, error) {
	var dtos []ChefDTO
	if err := r.db.WithContext(ctx).Preload("Orders").Find(&dtos).Error; err != nil {
		return nil, err
	}

	chefs := make([]*chef.Chef, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		chefs = append(chefs, c)
	}

	return chefs, nil
}

// AcquireOrder adds the order to the chef's set and increments the counter.
// The increment runs against the stored value, never a value read earlier.
func (r *GormChefRepository) AcquireOrder(ctx context.Context, chefID, orderID kernel.UUID) error {
	if err := errors.Join(chefID.Validate(), orderID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Exec("UPDATE chefs SET active_orders = active_orders + 1 WHERE id = ?", chefID.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("chef", chefID.String())
	}

	row := ChefOrderDTO{ChefID: chefID.Bytes(), OrderID: orderID.Bytes()}
	return r.db.WithContext(ctx).Create(&row).Error
}

// ReleaseOrder removes the order from the chef's set and decrements the
// counter, floored at zero. When the chef no longer holds the order, or no
// longer exists, nothing changes.
func (r *GormChefRepository) ReleaseOrder(ctx context.Context, chefID, orderID kernel.UUID) error {
	if err := errors.Join(chefID.Validate(), orderID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Delete(&ChefOrderDTO{}, "chef_id = ? AND order_id = ?", chefID.Bytes(), orderID.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Exec("UPDATE chefs SET active_orders = GREATEST(active_orders - 1, 0) WHERE id = ?",
			chefID.Bytes()).Error
}

// Delete removes the chef and their assigned-set rows.
func (r *GormChefRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&ChefOrderDTO{}, "chef_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ChefDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("chef", id.String())
	}

	return nil
}
