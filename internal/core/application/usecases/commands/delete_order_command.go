package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to delete a draft purchase order.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	orderID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(organizationID kernel.UUID, orderID kernel.UUID) (DeleteOrderCommand, error) {
	deleteCommand := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setOrganizationID(organizationID),
		deleteCommand.setOrderID(orderID),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrganizationID returns the caller's organization identifier.
func (c DeleteOrderCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// OrderID returns the target order's identifier.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeleteOrderCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
