package commands

import (
	"errors"
	"fmt"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemSpecIsNotConstructed = errors.New(
		"OrderItemSpec must be created via NewOrderItemSpec constructor",
	)
	ErrOrderItemsAreRequired = errors.New("at least one order item is required")
)

// OrderItemSpec describes one requested order line: which product, how many,
// and at what unit price. Line identifiers are assigned by the handler.
type OrderItemSpec struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderItemSpec creates a validated order line specification.
// Quantity must be positive and the unit price must be a constructed,
// non-negative Money value.
func NewOrderItemSpec(productID kernel.UUID, quantity int, unitPrice kernel.Money) (OrderItemSpec, error) {
	spec := OrderItemSpec{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setProductID(productID),
		spec.setQuantity(quantity),
		spec.setUnitPrice(unitPrice),
	); err != nil {
		return OrderItemSpec{}, err
	}

	return spec, nil
}

// Validate ensures the spec was created through the constructor.
func (s OrderItemSpec) Validate() error {
	return s.guard.Validate(ErrOrderItemSpecIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (s OrderItemSpec) ProductID() kernel.UUID {
	return s.productID
}

// Quantity returns the ordered quantity.
func (s OrderItemSpec) Quantity() int {
	return s.quantity
}

// UnitPrice returns the agreed unit price.
func (s OrderItemSpec) UnitPrice() kernel.Money {
	return s.unitPrice
}

func (s *OrderItemSpec) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	s.productID = productID
	return nil
}

func (s *OrderItemSpec) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	s.quantity = quantity
	return nil
}

func (s *OrderItemSpec) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	s.unitPrice = unitPrice
	return nil
}

// CreateOrderCommand represents a request to create a new purchase order in
// draft status. The order number is allocated by the handler, so the command
// carries only the business data supplied by the caller.
//
// Example:
//
//	spec, _ := commands.NewOrderItemSpec(productID, 10, price)
//	cmd, err := commands.NewCreateOrderCommand(
//	    orderID, orgID, supplierID, time.Now(), nil, "",
//	    []commands.OrderItemSpec{spec},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID              kernel.UUID
	organizationID       kernel.UUID
	supplierID           kernel.UUID
	orderDate            time.Time
	expectedDeliveryDate *time.Time
	notes                string
	items                []OrderItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates identifiers and requires at least one item specification.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	organizationID kernel.UUID,
	supplierID kernel.UUID,
	orderDate time.Time,
	expectedDeliveryDate *time.Time,
	notes string,
	items []OrderItemSpec,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		orderDate:            orderDate,
		expectedDeliveryDate: expectedDeliveryDate,
		notes:                notes,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOrganizationID(organizationID),
		orderCommand.setSupplierID(supplierID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrganizationID returns the owning organization's identifier.
func (c CreateOrderCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// SupplierID returns the referenced supplier's identifier.
func (c CreateOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// OrderDate returns the date the order is placed.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// ExpectedDeliveryDate returns the promised delivery date, or nil.
func (c CreateOrderCommand) ExpectedDeliveryDate() *time.Time {
	return c.expectedDeliveryDate
}

// Notes returns the free-form remarks.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// Items returns the requested order line specifications.
func (c CreateOrderCommand) Items() []OrderItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemSpec) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
