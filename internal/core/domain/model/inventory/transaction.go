// Package inventory provides the append-only stock ledger entity for the
// procurement system. Stock levels are never stored as mutable fields: the
// current balance of a product is always the signed sum of its transaction
// history. Correcting a mistake requires an explicit offsetting entry, never
// mutation or deletion of an existing one.
package inventory

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// ErrTransactionIsNotConstructed is returned when a Transaction instance was not
// created through the NewTransaction or RestoreTransaction factory methods.
var ErrTransactionIsNotConstructed = errors.New(
	"Transaction must be created via NewTransaction or RestoreTransaction constructor")

// TransactionType classifies the business event behind a ledger entry.
type TransactionType int

const (
	// UnknownType represents an invalid or undefined transaction type.
	UnknownType TransactionType = iota

	// Purchase records stock arriving through a goods receipt.
	Purchase

	// Sale records stock leaving through a sale.
	Sale

	// Adjustment records a manual stock correction (e.g. stocktake offset).
	Adjustment
)

// getTransactionTypeStrings returns a map of TransactionType values to their
// string representations.
func getTransactionTypeStrings() map[TransactionType]string {
	return map[TransactionType]string{
		UnknownType: "unknown",
		Purchase:    "purchase",
		Sale:        "sale",
		Adjustment:  "adjustment",
	}
}

// Validate checks if the TransactionType value is valid.
func (t TransactionType) Validate() error {
	if t == UnknownType {
		return errs.NewValueIsInvalidErrorWithCause("transactionType",
			fmt.Errorf("%d is not a valid transaction type", t))
	}
	if _, ok := getTransactionTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transactionType",
			fmt.Errorf("%d is not a valid transaction type", t))
	}
	return nil
}

// String returns the lowercase name of the transaction type.
func (t TransactionType) String() string {
	if str, ok := getTransactionTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// TransactionTypeFromString parses a transaction type from its string
// representation. Used when rehydrating ledger entries from persistence.
func TransactionTypeFromString(s string) (TransactionType, error) {
	for transactionType, str := range getTransactionTypeStrings() {
		if str == s && transactionType != UnknownType {
			return transactionType, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("transactionType",
		fmt.Errorf("%q is not a valid transaction type", s))
}

// Transaction is one immutable entry of the stock ledger for a
// (organization, product) pair.
//
// Invariants:
//   - quantity is a signed, non-zero delta
//   - newStock = previousStock + quantity
//   - previousStock equals the signed sum of all prior transactions for the
//     same (organization, product) at the instant the entry is computed;
//     repositories enforce this by serializing appends per product
//   - the resulting stock level is never negative
type Transaction struct {
	// id is the unique identifier for the ledger entry
	id kernel.UUID

	// organizationID scopes the entry to its owning organization
	organizationID kernel.UUID

	// productID references the product whose stock changed
	productID kernel.UUID

	// userID identifies who triggered the stock change
	userID kernel.UUID

	// quantity is the signed stock delta (positive for receipts)
	quantity int

	// previousStock is the balance before this entry
	previousStock int

	// newStock is the balance after this entry
	newStock int

	// transactionType classifies the business event
	transactionType TransactionType

	// reference links the entry to its source document (e.g. order number)
	reference string

	// notes carries free-form remarks
	notes string

	// occurredAt is when the entry was recorded
	occurredAt time.Time

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewTransaction creates a ledger entry chained onto the given previous
// balance. The new stock level is computed as previousStock + quantity.
//
// Returns a validation error if any identifier is invalid, the quantity is
// zero, the type is invalid, or the resulting stock level would be negative.
func NewTransaction(
	id kernel.UUID,
	organizationID kernel.UUID,
	productID kernel.UUID,
	userID kernel.UUID,
	quantity int,
	previousStock int,
	transactionType TransactionType,
	reference string,
	notes string,
	occurredAt time.Time,
) (*Transaction, error) {
	tx := &Transaction{
		reference:     reference,
		notes:         notes,
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		tx.setID(id),
		tx.setOrganizationID(organizationID),
		tx.setProductID(productID),
		tx.setUserID(userID),
		tx.setQuantity(quantity),
		tx.setTransactionType(transactionType),
	); err != nil {
		return nil, err
	}

	if previousStock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("previousStock",
			fmt.Errorf("%d is negative", previousStock))
	}

	newStock := previousStock + quantity
	if newStock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("delta %d would drive stock below zero (previous %d)", quantity, previousStock))
	}

	tx.previousStock = previousStock
	tx.newStock = newStock
	return tx, nil
}

// RestoreTransaction reconstructs a ledger entry from persistence.
// It verifies the chaining invariant newStock = previousStock + quantity.
func RestoreTransaction(
	id kernel.UUID,
	organizationID kernel.UUID,
	productID kernel.UUID,
	userID kernel.UUID,
	quantity int,
	previousStock int,
	newStock int,
	transactionType TransactionType,
	reference string,
	notes string,
	occurredAt time.Time,
) (*Transaction, error) {
	tx, err := NewTransaction(id, organizationID, productID, userID,
		quantity, previousStock, transactionType, reference, notes, occurredAt)
	if err != nil {
		return nil, err
	}

	if tx.newStock != newStock {
		return nil, errs.NewValueIsInvalidErrorWithCause("newStock",
			fmt.Errorf("%d does not equal previous stock %d plus delta %d", newStock, previousStock, quantity))
	}

	return tx, nil
}

// Validate ensures the Transaction instance was properly constructed.
func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// OrganizationID returns the owning organization's identifier.
func (t *Transaction) OrganizationID() kernel.UUID {
	return t.organizationID
}

// ProductID returns the product's identifier.
func (t *Transaction) ProductID() kernel.UUID {
	return t.productID
}

// UserID returns the identifier of the user who triggered the entry.
func (t *Transaction) UserID() kernel.UUID {
	return t.userID
}

// Quantity returns the signed stock delta.
func (t *Transaction) Quantity() int {
	return t.quantity
}

// PreviousStock returns the balance before this entry.
func (t *Transaction) PreviousStock() int {
	return t.previousStock
}

// NewStock returns the balance after this entry.
func (t *Transaction) NewStock() int {
	return t.newStock
}

// TransactionType returns the business classification of the entry.
func (t *Transaction) TransactionType() TransactionType {
	return t.transactionType
}

// Reference returns the source document reference (e.g. the order number).
func (t *Transaction) Reference() string {
	return t.reference
}

// Notes returns the free-form remarks.
func (t *Transaction) Notes() string {
	return t.notes
}

// OccurredAt returns when the entry was recorded.
func (t *Transaction) OccurredAt() time.Time {
	return t.occurredAt
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}
	t.organizationID = organizationID
	return nil
}

func (t *Transaction) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	t.productID = productID
	return nil
}

func (t *Transaction) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	t.userID = userID
	return nil
}

func (t *Transaction) setQuantity(quantity int) error {
	if quantity == 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("stock delta must not be zero"))
	}
	t.quantity = quantity
	return nil
}

func (t *Transaction) setTransactionType(transactionType TransactionType) error {
	if err := transactionType.Validate(); err != nil {
		return err
	}
	t.transactionType = transactionType
	return nil
}
