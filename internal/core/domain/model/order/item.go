package order

import (
	"errors"
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

// Item represents a single line of a purchase order: a product, the quantity
// ordered, and the agreed unit price. Items are immutable once created; the
// ordered quantity never changes after the order exists, and receiving is
// tracked in separate receipt records rather than by mutating the line.
type Item struct {
	// id is the unique identifier for the order line
	id kernel.UUID

	// productID references the product being purchased
	productID kernel.UUID

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the agreed price per unit (must not be negative)
	unitPrice kernel.Money

	// totalAmount is quantity x unitPrice, fixed at creation
	totalAmount kernel.Money

	// isConstructed ensures the item was created via a constructor
	isConstructed bool
}

// NewItem creates a new order line with validation.
// The total amount is computed as quantity x unitPrice.
//
// Parameters:
//   - id: Unique identifier for the line (must be valid UUID)
//   - productID: The product being ordered (must be valid UUID)
//   - quantity: Units ordered (must be positive)
//   - unitPrice: Price per unit (must be a valid, non-negative Money)
//
// Returns:
//   - *Item: The created line if all validations pass
//   - error: Validation error if any parameter is invalid
func NewItem(id kernel.UUID, productID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.totalAmount = unitPrice.MulQuantity(quantity)
	return item, nil
}

// RestoreItem reconstructs an order line from persistence without recomputing
// the total amount. It validates the same invariants as NewItem and
// additionally requires the stored total to be valid Money.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	totalAmount kernel.Money,
) (*Item, error) {
	item, err := NewItem(id, productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if err = totalAmount.Validate(); err != nil {
		return nil, err
	}

	item.totalAmount = totalAmount
	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the ordered product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the agreed price per unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalAmount returns the line total (quantity x unit price).
func (i *Item) TotalAmount() kernel.Money {
	return i.totalAmount
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
