// Package receipt provides the goods receipt entity for the procurement
// system. A Receipt records that a quantity of an order line was physically
// received. Receipts are append-only: once created they are never mutated or
// deleted, and several receipts may reference the same order line as goods
// arrive over time.
package receipt

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// ErrReceiptIsNotConstructed is returned when a Receipt instance was not created
// through the NewReceipt or RestoreReceipt factory methods.
var ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt or RestoreReceipt constructor")

// Receipt records the reception of goods against a single purchase order line.
// The unit price is copied from the order line at receipt time so that later
// price changes can never alter historical receipt values.
type Receipt struct {
	// id is the unique identifier for the receipt
	id kernel.UUID

	// organizationID scopes the receipt to its owning organization
	organizationID kernel.UUID

	// orderID references the purchase order being received against
	orderID kernel.UUID

	// orderItemID references the specific order line
	orderItemID kernel.UUID

	// userID identifies who recorded the receipt
	userID kernel.UUID

	// quantity is the number of units received (must be positive)
	quantity int

	// unitPrice is the order line's unit price at receipt time
	unitPrice kernel.Money

	// totalAmount is quantity x unitPrice
	totalAmount kernel.Money

	// receivedDate is when the goods arrived
	receivedDate time.Time

	// notes carries free-form remarks
	notes string

	// isConstructed ensures the receipt was created via a constructor
	isConstructed bool
}

// NewReceipt creates a goods receipt with validation.
// The total amount is computed as quantity x unitPrice.
//
// Returns a validation error if any identifier is invalid, the quantity is
// not positive, or the unit price is not valid Money.
func NewReceipt(
	id kernel.UUID,
	organizationID kernel.UUID,
	orderID kernel.UUID,
	orderItemID kernel.UUID,
	userID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	receivedDate time.Time,
	notes string,
) (*Receipt, error) {
	r := &Receipt{
		receivedDate:  receivedDate,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrganizationID(organizationID),
		r.setOrderID(orderID),
		r.setOrderItemID(orderItemID),
		r.setUserID(userID),
		r.setQuantity(quantity),
		r.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	r.totalAmount = unitPrice.MulQuantity(quantity)
	return r, nil
}

// RestoreReceipt reconstructs a receipt from persistence without recomputing
// the total amount.
func RestoreReceipt(
	id kernel.UUID,
	organizationID kernel.UUID,
	orderID kernel.UUID,
	orderItemID kernel.UUID,
	userID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	totalAmount kernel.Money,
	receivedDate time.Time,
	notes string,
) (*Receipt, error) {
	r, err := NewReceipt(id, organizationID, orderID, orderItemID, userID, quantity, unitPrice, receivedDate, notes)
	if err != nil {
		return nil, err
	}

	if err = totalAmount.Validate(); err != nil {
		return nil, err
	}

	r.totalAmount = totalAmount
	return r, nil
}

// Validate ensures the Receipt instance was properly constructed.
func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() kernel.UUID {
	return r.id
}

// OrganizationID returns the owning organization's identifier.
func (r *Receipt) OrganizationID() kernel.UUID {
	return r.organizationID
}

// OrderID returns the purchase order's identifier.
func (r *Receipt) OrderID() kernel.UUID {
	return r.orderID
}

// OrderItemID returns the order line's identifier.
func (r *Receipt) OrderItemID() kernel.UUID {
	return r.orderItemID
}

// UserID returns the identifier of the user who recorded the receipt.
func (r *Receipt) UserID() kernel.UUID {
	return r.userID
}

// Quantity returns the number of units received.
func (r *Receipt) Quantity() int {
	return r.quantity
}

// UnitPrice returns the unit price copied from the order line.
func (r *Receipt) UnitPrice() kernel.Money {
	return r.unitPrice
}

// TotalAmount returns the receipt value (quantity x unit price).
func (r *Receipt) TotalAmount() kernel.Money {
	return r.totalAmount
}

// ReceivedDate returns when the goods arrived.
func (r *Receipt) ReceivedDate() time.Time {
	return r.receivedDate
}

// Notes returns the free-form remarks.
func (r *Receipt) Notes() string {
	return r.notes
}

func (r *Receipt) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Receipt) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}
	r.organizationID = organizationID
	return nil
}

func (r *Receipt) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Receipt) setOrderItemID(orderItemID kernel.UUID) error {
	if err := orderItemID.Validate(); err != nil {
		return err
	}
	r.orderItemID = orderItemID
	return nil
}

func (r *Receipt) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *Receipt) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}

func (r *Receipt) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	r.unitPrice = unitPrice
	return nil
}
