package orderrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

// Add saves a new order with its items to the database.
// A duplicate order number within the organization surfaces as
// *errs.ConflictError from the unique index.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("orderNumber", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing order's header row. Items are fixed at
// creation and never updated.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND organization_id = ?", dto.ID, dto.OrganizationID).
		Updates(map[string]any{
			"status":                 dto.Status,
			"expected_delivery_date": dto.ExpectedDeliveryDate,
			"notes":                  dto.Notes,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes an order and its items from the database. The header row
// goes first under the organization scope; items are only touched once that
// delete proves the order belongs to the caller's organization.
func (r *GormOrderRepository) Delete(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) error {
	if err := errors.Join(organizationID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderID", id.String())
	}

	return r.db.WithContext(ctx).
		Where("order_id = ?", id.Bytes()).
		Delete(&ItemDTO{}).Error
}

// Get retrieves an order with its items by ID within the organization.
func (r *GormOrderRepository) Get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, organizationID, id, false)
}

// GetForUpdate retrieves an order like Get but locks the order row until the
// surrounding transaction ends. Concurrent receives against the same order
// block here, so each one validates against the committed receipt totals of
// the previous.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, organizationID, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := errors.Join(organizationID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if lock {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	err := query.
		Where("id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	// Items are loaded separately so the row lock stays on the orders table.
	if err = r.db.WithContext(ctx).
		Where("order_id = ?", id.Bytes()).
		Order("id").
		Find(&dto.Items).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
