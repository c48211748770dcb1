// Package counterrepo implements order number allocation on top of a
// per-organization, per-year counter table. The counter is advanced with an
// atomic upsert, so two concurrent allocations can never return the same
// sequence value.
package counterrepo

import (
	"context"

	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CounterDTO represents the database structure for order number counters.
type CounterDTO struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year           int       `gorm:"primaryKey"`
	LastValue      int
}

// TableName specifies the database table name for counter rows.
func (CounterDTO) TableName() string {
	return "order_counters"
}

// GormOrderNumberAllocator implements OrderNumberAllocator using GORM.
type GormOrderNumberAllocator struct {
	db *gorm.DB
}

// NewGormOrderNumberAllocator creates a new GORM order number allocator.
func NewGormOrderNumberAllocator(db *gorm.DB) *GormOrderNumberAllocator {
	return &GormOrderNumberAllocator{db: db}
}

// NextSequence atomically allocates the next sequence value for the
// organization and year. The insert-or-increment runs as a single statement,
// so concurrent callers serialize on the counter row and each receives a
// distinct value. A value allocated inside a rolled-back transaction is
// abandoned, leaving a gap in the sequence.
func (a *GormOrderNumberAllocator) NextSequence(ctx context.Context, organizationID kernel.UUID, year int) (int, error) {
	if err := organizationID.Validate(); err != nil {
		return 0, err
	}

	var next int
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (organization_id, year, last_value)
		VALUES (?, ?, 1)
		ON CONFLICT (organization_id, year)
		DO UPDATE SET last_value = order_counters.last_value + 1
		RETURNING last_value
	`, organizationID.Bytes(), year).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}
