package inventoryrepo

import (
	"context"
	"errors"
	"time"

	"procurement/internal/core/domain/model/inventory"
	"procurement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory ledger repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// Append records a stock movement as a new chained ledger entry.
//
// A transaction-scoped advisory lock on the (organization, product) pair
// serializes concurrent appends, so reading the current balance and writing
// the chained entry is atomic. The caller must run Append inside a database
// transaction; the lock releases automatically when it ends.
func (r *GormInventoryRepository) Append(
	ctx context.Context,
	organizationID kernel.UUID,
	productID kernel.UUID,
	userID kernel.UUID,
	delta int,
	transactionType inventory.TransactionType,
	reference string,
	notes string,
) (*inventory.Transaction, error) {
	if err := errors.Join(organizationID.Validate(), productID.Validate(), userID.Validate()); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))",
			organizationID.String()+":"+productID.String()).Error
	if err != nil {
		return nil, err
	}

	previousStock, err := r.Balance(ctx, organizationID, productID)
	if err != nil {
		return nil, err
	}

	entry, err := inventory.NewTransaction(
		kernel.NewUUID(),
		organizationID,
		productID,
		userID,
		delta,
		previousStock,
		transactionType,
		reference,
		notes,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	dto := fromDomain(entry)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return entry, nil
}

// Balance returns the product's current stock level: the signed sum of all
// ledger entry quantities, or zero if the product has no entries. Summing
// does not depend on entry ordering, so entries sharing a timestamp within
// one batch cannot skew the result.
func (r *GormInventoryRepository) Balance(ctx context.Context, organizationID kernel.UUID, productID kernel.UUID) (int, error) {
	if err := errors.Join(organizationID.Validate(), productID.Validate()); err != nil {
		return 0, err
	}

	var balance int64
	err := r.db.WithContext(ctx).
		Model(&TransactionDTO{}).
		Where("organization_id = ? AND product_id = ?", organizationID.Bytes(), productID.Bytes()).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&balance).Error
	if err != nil {
		return 0, err
	}

	return int(balance), nil
}

// GetAllForProduct retrieves the product's ledger entries, most recent first.
func (r *GormInventoryRepository) GetAllForProduct(ctx context.Context, organizationID kernel.UUID, productID kernel.UUID) ([]*inventory.Transaction, error) {
	if err := errors.Join(organizationID.Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND product_id = ?", organizationID.Bytes(), productID.Bytes()).
		Order("occurred_at DESC, created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*inventory.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		entry, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		transactions = append(transactions, entry)
	}

	return transactions, nil
}
