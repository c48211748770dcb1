package ports

import (
	"context"

	"procurement/internal/core/domain/model/catalog"
	"procurement/internal/core/domain/model/kernel"
)

// SupplierRepository provides read access to supplier master data.
// Suppliers are owned by an external master-data system; procurement only
// reads them to validate order references.
type SupplierRepository interface {
	// Get retrieves a supplier by its identifier within the organization.
	// Returns *errs.ObjectNotFoundError if no such supplier exists.
	Get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*catalog.Supplier, error)
}

// ProductRepository provides read access to product master data.
type ProductRepository interface {
	// Get retrieves a product by its identifier within the organization.
	// Returns *errs.ObjectNotFoundError if no such product exists.
	Get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*catalog.Product, error)
}
