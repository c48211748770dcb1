package receiptrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/receipt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReceiptRepository implements ReceiptRepository using GORM.
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GORM receipt repository.
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// Add saves a new receipt entry to the database.
func (r *GormReceiptRepository) Add(ctx context.Context, entry *receipt.Receipt) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves every receipt recorded against the order,
// ordered by received date.
func (r *GormReceiptRepository) GetAllForOrder(ctx context.Context, organizationID kernel.UUID, orderID kernel.UUID) ([]*receipt.Receipt, error) {
	if err := errors.Join(organizationID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	var dtos []ReceiptDTO
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND order_id = ?", organizationID.Bytes(), orderID.Bytes()).
		Order("received_date, created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	receipts := make([]*receipt.Receipt, 0, len(dtos))
	for _, dto := range dtos {
		entry, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		receipts = append(receipts, entry)
	}

	return receipts, nil
}

// GetReceivedQuantities returns the cumulative received quantity per order
// item for the order. Items without receipts are absent from the map.
func (r *GormReceiptRepository) GetReceivedQuantities(ctx context.Context, organizationID kernel.UUID, orderID kernel.UUID) (map[kernel.UUID]int, error) {
	if err := errors.Join(organizationID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT order_item_id, SUM(quantity)
		FROM receipts
		WHERE organization_id = ? AND order_id = ?
		GROUP BY order_item_id
	`, organizationID.Bytes(), orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quantities := make(map[kernel.UUID]int)
	for rows.Next() {
		var itemID uuid.UUID
		var total int

		if err = rows.Scan(&itemID, &total); err != nil {
			return nil, err
		}

		key, keyErr := kernel.UUIDFromBytes(itemID[:])
		if keyErr != nil {
			return nil, keyErr
		}
		quantities[key] = total
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quantities, nil
}

// HasReceipts reports whether any receipt has been recorded against the order.
func (r *GormReceiptRepository) HasReceipts(ctx context.Context, organizationID kernel.UUID, orderID kernel.UUID) (bool, error) {
	if err := errors.Join(organizationID.Validate(), orderID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ReceiptDTO{}).
		Where("organization_id = ? AND order_id = ?", organizationID.Bytes(), orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
