package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles order deletion. Only draft orders with no
// recorded receipts may be deleted; anything further along the lifecycle is
// kept as part of the procurement record.
type DeleteOrderCommandHandler struct {
	uowFactory DeleteOrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for deletion operations.
func NewDeleteOrderCommandHandler(uowFactory DeleteOrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
//
// Returns *errs.InvalidStateError if the order is not in draft status or has
// receipts recorded against it.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrganizationID(), cmd.OrderID())
	if err != nil {
		return err
	}

	hasReceipts, err := uow.ReceiptRepository().HasReceipts(ctx, cmd.OrganizationID(), cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ValidateDelete(hasReceipts); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, cmd.OrganizationID(), cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
