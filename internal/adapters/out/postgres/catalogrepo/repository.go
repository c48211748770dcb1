package catalogrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/catalog"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GORM supplier repository.
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// Get retrieves a supplier by ID within the organization.
func (r *GormSupplierRepository) Get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*catalog.Supplier, error) {
	if err := errors.Join(organizationID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto SupplierDTO
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplierID", id.String())
		}
		return nil, err
	}

	return supplierToDomain(dto)
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Get retrieves a product by ID within the organization.
func (r *GormProductRepository) Get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*catalog.Product, error) {
	if err := errors.Join(organizationID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id.Bytes(), organizationID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productID", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}
