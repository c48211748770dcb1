package commands

import (
	"context"

	"procurement/internal/core/domain/model/inventory"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/core/domain/services"
)

// ReceiveOrderResult reports the outcome of one receiving batch: the receipt
// entries recorded, the order status after reconciliation, and the monetary
// value of the goods received in this batch.
type ReceiveOrderResult struct {
	Receipts           []*receipt.Receipt
	NewStatus          order.Status
	TotalReceivedValue kernel.Money
}

// ReceiveOrderCommandHandler handles the business logic for goods receiving.
// One invocation records a batch of receipts, appends the matching purchase
// entries to the inventory ledger, and re-derives the order's status from
// cumulative receipt coverage, all within a single transaction.
//
// Concurrency: the handler loads the order with a row lock, so two batches
// against the same order serialize and the second sees the first's receipts
// when validating remaining quantities. Over-receiving is therefore
// impossible regardless of interleaving.
type ReceiveOrderCommandHandler struct {
	uowFactory ReceiveOrderUoWFactory
	reconciler services.ReceiptReconciler
}

// NewReceiveOrderCommandHandler creates a handler for receiving operations.
// Requires a ReceiveOrderUoWFactory for transactional persistence.
func NewReceiveOrderCommandHandler(uowFactory ReceiveOrderUoWFactory) ReceiveOrderCommandHandler {
	return ReceiveOrderCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewReceiptReconciler(),
	}
}

// Handle processes the receiving command and returns the batch outcome.
//
// The order must be in confirmed or partially_received status. Every line is
// validated against the quantity still outstanding; if any line over-receives
// the whole batch is rejected and nothing is persisted. Duplicate lines for
// the same order item within one batch are allowed and accumulate.
func (h *ReceiveOrderCommandHandler) Handle(ctx context.Context, cmd ReceiveOrderCommand) (ReceiveOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReceiveOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReceiveOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrganizationID(), cmd.OrderID())
	if err != nil {
		return ReceiveOrderResult{}, err
	}

	if err = aggregate.ValidateReceive(); err != nil {
		return ReceiveOrderResult{}, err
	}

	receiptRepo := uow.ReceiptRepository()
	received, err := receiptRepo.GetReceivedQuantities(ctx, cmd.OrganizationID(), cmd.OrderID())
	if err != nil {
		return ReceiveOrderResult{}, err
	}
	if received == nil {
		received = make(map[kernel.UUID]int)
	}

	inventoryRepo := uow.InventoryRepository()
	receipts := make([]*receipt.Receipt, 0, len(cmd.Lines()))
	totalValue := kernel.ZeroMoney()

	for _, line := range cmd.Lines() {
		item, err := aggregate.Item(line.OrderItemID())
		if err != nil {
			return ReceiveOrderResult{}, err
		}

		if err = h.reconciler.ValidateRequested(item, received[item.ID()], line.Quantity()); err != nil {
			return ReceiveOrderResult{}, err
		}

		receivedDate := cmd.ReceivedDate()
		if line.ReceivedDate() != nil {
			receivedDate = *line.ReceivedDate()
		}
		notes := cmd.Notes()
		if line.Notes() != nil {
			notes = *line.Notes()
		}

		entry, err := receipt.NewReceipt(
			kernel.NewUUID(),
			cmd.OrganizationID(),
			cmd.OrderID(),
			item.ID(),
			cmd.UserID(),
			line.Quantity(),
			item.UnitPrice(),
			receivedDate,
			notes,
		)
		if err != nil {
			return ReceiveOrderResult{}, err
		}

		if err = receiptRepo.Add(ctx, entry); err != nil {
			return ReceiveOrderResult{}, err
		}

		if _, err = inventoryRepo.Append(
			ctx,
			cmd.OrganizationID(),
			item.ProductID(),
			cmd.UserID(),
			line.Quantity(),
			inventory.Purchase,
			aggregate.OrderNumber(),
			notes,
		); err != nil {
			return ReceiveOrderResult{}, err
		}

		received[item.ID()] += line.Quantity()
		totalValue = totalValue.Add(entry.TotalAmount())
		receipts = append(receipts, entry)
	}

	derived, err := h.reconciler.DeriveStatus(aggregate, received)
	if err != nil {
		return ReceiveOrderResult{}, err
	}

	if err = aggregate.ApplyReceiptCoverage(derived); err != nil {
		return ReceiveOrderResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return ReceiveOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReceiveOrderResult{}, err
	}

	return ReceiveOrderResult{
		Receipts:           receipts,
		NewStatus:          aggregate.Status(),
		TotalReceivedValue: totalValue,
	}, nil
}
