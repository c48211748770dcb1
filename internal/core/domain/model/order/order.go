package order

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned when an order is created without any line items.
	ErrOrderHasNoItems = errors.New("purchase order must contain at least one item")
)

// FormatOrderNumber renders an allocated sequence value as the canonical
// order number string, e.g. FormatOrderNumber(2026, 12) == "PO-2026-0012".
// The sequence is unique per (organization, year).
func FormatOrderNumber(year int, sequence int) string {
	return fmt.Sprintf("PO-%d-%04d", year, sequence)
}

// Order represents a purchase order placed against a supplier. It is the
// aggregate root that owns the order header and its line items and manages
// the lifecycle from draft through receiving to completion.
//
// Order follows these invariants:
//   - Must have valid unique, organization, and supplier identifiers
//   - Must contain at least one line item
//   - totalAmount equals the sum of line totals at creation time and is
//     never altered by receiving
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// organizationID scopes the order to its owning organization
	organizationID kernel.UUID

	// supplierID references the supplier the order is placed against
	supplierID kernel.UUID

	// orderNumber is the human-readable number, unique per (organization, year)
	orderNumber string

	// orderDate is the date the order was placed
	orderDate time.Time

	// status represents the current state in the order lifecycle
	status Status

	// totalAmount is the sum of line totals, fixed at creation
	totalAmount kernel.Money

	// expectedDeliveryDate is the promised delivery date (nil if not agreed)
	expectedDeliveryDate *time.Time

	// notes carries free-form remarks
	notes string

	// items are the order lines, owned exclusively by this order
	items []*Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in draft status with validation.
// The total amount is computed as the sum of all line totals.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - organizationID: Owning organization (must be valid UUID)
//   - supplierID: Supplier the order is placed against (must be valid UUID)
//   - orderNumber: Allocated order number (must not be empty)
//   - orderDate: Date the order is placed
//   - items: Order lines (must be non-empty, each valid)
//   - expectedDeliveryDate: Optional promised delivery date
//   - notes: Free-form remarks
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	organizationID kernel.UUID,
	supplierID kernel.UUID,
	orderNumber string,
	orderDate time.Time,
	items []*Item,
	expectedDeliveryDate *time.Time,
	notes string,
) (*Order, error) {
	order := &Order{
		status:               Draft,
		orderDate:            orderDate,
		expectedDeliveryDate: expectedDeliveryDate,
		notes:                notes,
		isConstructed:        true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrganizationID(organizationID),
		order.setSupplierID(supplierID),
		order.setOrderNumber(orderNumber),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range order.items {
		total = total.Add(item.TotalAmount())
	}
	order.totalAmount = total

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with the stored status
// and total amount. Used by repositories when rehydrating aggregates; it
// validates the same structural invariants as NewOrder.
func RestoreOrder(
	id kernel.UUID,
	organizationID kernel.UUID,
	supplierID kernel.UUID,
	orderNumber string,
	orderDate time.Time,
	status Status,
	totalAmount kernel.Money,
	items []*Item,
	expectedDeliveryDate *time.Time,
	notes string,
) (*Order, error) {
	order, err := NewOrder(id, organizationID, supplierID, orderNumber, orderDate, items, expectedDeliveryDate, notes)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), totalAmount.Validate()); err != nil {
		return nil, err
	}

	order.status = status
	order.totalAmount = totalAmount
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrganizationID returns the owning organization's identifier.
func (o *Order) OrganizationID() kernel.UUID {
	return o.organizationID
}

// SupplierID returns the supplier's identifier.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of line totals fixed at creation time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// ExpectedDeliveryDate returns the promised delivery date, or nil.
func (o *Order) ExpectedDeliveryDate() *time.Time {
	return o.expectedDeliveryDate
}

// Notes returns the free-form remarks.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns the order lines.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the order line with the given identifier.
// Returns *errs.ObjectNotFoundError if no such line belongs to this order.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItemID", itemID.String())
}

// ChangeStatus applies an explicitly requested status transition,
// e.g. marking the order sent, confirmed, or cancelled.
//
// This method enforces the following business rules:
//   - The requested status must be a legal edge from the current status
//   - Derived statuses (partially_received, received) can never be
//     requested; they are only reached through ApplyReceiptCoverage
//
// Returns *errs.InvalidTransitionError naming the current and requested
// states if the transition is not permitted.
func (o *Order) ChangeStatus(target Status) error {
	if target.IsDerived() {
		return errs.NewInvalidTransitionError(o.status.String(), target.String())
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyReceiptCoverage applies a status derived from receipt coverage by the
// reconciliation flow. A derived status equal to the current one is a no-op.
//
// Returns *errs.InvalidTransitionError if the derived status is not a legal
// edge from the current status.
func (o *Order) ApplyReceiptCoverage(derived Status) error {
	if derived == o.status {
		return nil
	}

	newStatus, err := o.status.TransitionTo(derived)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ValidateReceive checks that goods may be received against the order.
// Returns *errs.InvalidStateError unless the status is confirmed or
// partially_received.
func (o *Order) ValidateReceive() error {
	if !o.status.CanReceive() {
		return errs.NewInvalidStateError("receive goods", o.status.String())
	}
	return nil
}

// ValidateDelete checks that the order may be deleted. Only draft orders
// without any receipts may be deleted; everything else is rejected with
// *errs.InvalidStateError.
func (o *Order) ValidateDelete(hasReceipts bool) error {
	if o.status != Draft {
		return errs.NewInvalidStateError("delete order", o.status.String())
	}
	if hasReceipts {
		return errs.NewInvalidStateErrorWithCause("delete order", o.status.String(),
			errors.New("order has receipts"))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}
	o.organizationID = organizationID
	return nil
}

func (o *Order) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	o.supplierID = supplierID
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
