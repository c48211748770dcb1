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
	ErrReceiveOrderCommandIsNotConstructed = errors.New(
		"ReceiveOrderCommand must be created via NewReceiveOrderCommand constructor",
	)
	ErrReceiptLineIsNotConstructed = errors.New(
		"ReceiptLine must be created via NewReceiptLine constructor",
	)
	ErrReceiptLinesAreRequired = errors.New("at least one receipt line is required")
)

// ReceiptLine describes goods received against one order line. A line may
// carry its own received date and notes; when nil, the batch-level values
// apply. One batch can therefore report lines received on different days.
type ReceiptLine struct { //nolint:recvcheck //using for validation
	orderItemID  kernel.UUID
	quantity     int
	receivedDate *time.Time
	notes        *string

	guard guard.ConstructorGuard
}

// NewReceiptLine creates a validated receipt line. Quantity must be positive;
// whether it fits within the line's remaining quantity is checked by the
// handler against the current receipt log. receivedDate and notes are
// optional overrides of the batch-level values.
func NewReceiptLine(orderItemID kernel.UUID, quantity int, receivedDate *time.Time, notes *string) (ReceiptLine, error) {
	line := ReceiptLine{
		receivedDate: receivedDate,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setOrderItemID(orderItemID),
		line.setQuantity(quantity),
	); err != nil {
		return ReceiptLine{}, err
	}

	return line, nil
}

// Validate ensures the line was created through the constructor.
func (l ReceiptLine) Validate() error {
	return l.guard.Validate(ErrReceiptLineIsNotConstructed)
}

// OrderItemID returns the identifier of the order line being received against.
func (l ReceiptLine) OrderItemID() kernel.UUID {
	return l.orderItemID
}

// Quantity returns the received quantity.
func (l ReceiptLine) Quantity() int {
	return l.quantity
}

// ReceivedDate returns the line's own received date, or nil when the line
// uses the batch-level date.
func (l ReceiptLine) ReceivedDate() *time.Time {
	return l.receivedDate
}

// Notes returns the line's own notes, or nil when the line uses the
// batch-level notes.
func (l ReceiptLine) Notes() *string {
	return l.notes
}

func (l *ReceiptLine) setOrderItemID(orderItemID kernel.UUID) error {
	if err := orderItemID.Validate(); err != nil {
		return err
	}

	l.orderItemID = orderItemID
	return nil
}

func (l *ReceiptLine) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("receivedQuantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	l.quantity = quantity
	return nil
}

// ReceiveOrderCommand represents a request to record a batch of goods
// receipts against a purchase order. One command may cover several order
// lines; the whole batch is applied atomically or not at all.
//
// Example:
//
//	line, _ := commands.NewReceiptLine(orderItemID, 6, nil, nil)
//	cmd, err := commands.NewReceiveOrderCommand(
//	    orgID, orderID, userID, time.Now(), "first delivery",
//	    []commands.ReceiptLine{line},
//	)
type ReceiveOrderCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	orderID        kernel.UUID
	userID         kernel.UUID
	receivedDate   time.Time
	notes          string
	lines          []ReceiptLine

	guard guard.ConstructorGuard
}

// NewReceiveOrderCommand creates a command to record goods receipts.
// Validates identifiers and requires at least one receipt line.
func NewReceiveOrderCommand(
	organizationID kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	receivedDate time.Time,
	notes string,
	lines []ReceiptLine,
) (ReceiveOrderCommand, error) {
	receiveCommand := ReceiveOrderCommand{
		receivedDate: receivedDate,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		receiveCommand.setOrganizationID(organizationID),
		receiveCommand.setOrderID(orderID),
		receiveCommand.setUserID(userID),
		receiveCommand.setLines(lines),
	); err != nil {
		return ReceiveOrderCommand{}, err
	}

	return receiveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReceiveOrderCommandIsNotConstructed if validation fails.
func (c ReceiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrReceiveOrderCommandIsNotConstructed)
}

// OrganizationID returns the caller's organization identifier.
func (c ReceiveOrderCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// OrderID returns the identifier of the order being received against.
func (c ReceiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the user recording the receipt.
func (c ReceiveOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// ReceivedDate returns the date the goods arrived.
func (c ReceiveOrderCommand) ReceivedDate() time.Time {
	return c.receivedDate
}

// Notes returns the free-form remarks for this batch.
func (c ReceiveOrderCommand) Notes() string {
	return c.notes
}

// Lines returns the receipt lines in the batch.
func (c ReceiveOrderCommand) Lines() []ReceiptLine {
	return c.lines
}

func (c *ReceiveOrderCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *ReceiveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReceiveOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ReceiveOrderCommand) setLines(lines []ReceiptLine) error {
	if len(lines) == 0 {
		return ErrReceiptLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}
