// Package catalogrepo provides read-only persistence for supplier and product
// master data. Master data is owned by an external system; procurement only
// reads it to validate references on purchase orders.
package catalogrepo

import (
	"procurement/internal/core/domain/model/catalog"
	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SupplierDTO represents the database structure for supplier master data.
type SupplierDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Active         bool
}

// TableName specifies the database table name for supplier entities.
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// ProductDTO represents the database structure for product master data.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	Name           string
	Unit           string
	Active         bool
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func supplierToDomain(dto SupplierDTO) (*catalog.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreSupplier(id, organizationID, dto.Name, dto.Active)
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProduct(id, organizationID, dto.Name, dto.Unit, dto.Active)
}
