package orderrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateIf applies change to the order row only while expected still holds,
// and reports whether a row was written. The guard travels inside the UPDATE's
// WHERE clause, so the check and the write are one atomic statement and the
// row count decides the outcome. A zero row count means the order is gone or
// another writer got there first.
func (r *GormOrderRepository) UpdateIf(
	ctx context.Context,
	id kernel.UUID,
	expected order.Expectation,
	change order.Change,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if err := expected.Status.Validate(); err != nil {
		return false, err
	}
	if err := change.Status.Validate(); err != nil {
		return false, err
	}

	updates := map[string]any{
		"status": change.Status.String(),
	}
	if change.CarrierID != nil {
		updates["carrier_id"] = change.CarrierID.Bytes()
	}
	if change.PickupDate != nil {
		updates["pickup_date"] = *change.PickupDate
	}
	if change.DeliveryDate != nil {
		updates["delivery_date"] = *change.DeliveryDate
	}

	tx := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), expected.Status.String())
	switch {
	case expected.CarrierIsNull:
		tx = tx.Where("carrier_id IS NULL")
	case expected.CarrierID != nil:
		tx = tx.Where("carrier_id = ?", expected.CarrierID.Bytes())
	}

	result := tx.Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
