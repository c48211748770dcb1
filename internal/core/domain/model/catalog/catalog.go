// Package catalog provides read-only views of supplier and product master
// data. Suppliers and products are referenced by purchase orders but owned
// and managed by an external master-data system; the procurement core only
// validates that referenced entries exist, belong to the caller's
// organization, and are active.
package catalog

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// ErrSupplierIsNotConstructed is returned when a Supplier was not created via RestoreSupplier.
var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via RestoreSupplier constructor")

// ErrProductIsNotConstructed is returned when a Product was not created via RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via RestoreProduct constructor")

// Supplier is a read-only reference to a supplier master-data record.
type Supplier struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string
	active         bool
	isConstructed  bool
}

// RestoreSupplier reconstructs a supplier reference from persistence.
func RestoreSupplier(id kernel.UUID, organizationID kernel.UUID, name string, active bool) (*Supplier, error) {
	if err := errors.Join(id.Validate(), organizationID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Supplier{
		id:             id,
		organizationID: organizationID,
		name:           name,
		active:         active,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Supplier was properly constructed.
func (s *Supplier) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplierIsNotConstructed
	}
	return nil
}

// ID returns the supplier's unique identifier.
func (s *Supplier) ID() kernel.UUID {
	return s.id
}

// OrganizationID returns the owning organization's identifier.
func (s *Supplier) OrganizationID() kernel.UUID {
	return s.organizationID
}

// Name returns the supplier's display name.
func (s *Supplier) Name() string {
	return s.name
}

// IsActive reports whether new orders may be placed against the supplier.
func (s *Supplier) IsActive() bool {
	return s.active
}

// Product is a read-only reference to a product master-data record.
type Product struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string
	unit           string
	active         bool
	isConstructed  bool
}

// RestoreProduct reconstructs a product reference from persistence.
func RestoreProduct(id kernel.UUID, organizationID kernel.UUID, name, unit string, active bool) (*Product, error) {
	if err := errors.Join(id.Validate(), organizationID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Product{
		id:             id,
		organizationID: organizationID,
		name:           name,
		unit:           unit,
		active:         active,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// OrganizationID returns the owning organization's identifier.
func (p *Product) OrganizationID() kernel.UUID {
	return p.organizationID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Unit returns the product's unit of measure.
func (p *Product) Unit() string {
	return p.unit
}

// IsActive reports whether the product may be ordered.
func (p *Product) IsActive() bool {
	return p.active
}
