package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents an explicit request to move an order
// through its lifecycle: marking it sent, confirmed, or cancelled. The
// receipt-derived statuses can never be requested through this command.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	orderID        kernel.UUID
	target         order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// The target must be a known status; whether the transition is legal from
// the order's current status is decided by the aggregate.
func NewUpdateOrderStatusCommand(
	organizationID kernel.UUID,
	orderID kernel.UUID,
	target order.Status,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrganizationID(organizationID),
		statusCommand.setOrderID(orderID),
		statusCommand.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrganizationID returns the caller's organization identifier.
func (c UpdateOrderStatusCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// OrderID returns the target order's identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *UpdateOrderStatusCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
