package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/receipt"
)

// ReceiptRepository defines the persistence contract for goods receipts.
// Receipts are append-only: once recorded they are never updated or deleted,
// forming the audit trail that cumulative received quantities are derived from.
type ReceiptRepository interface {
	// Add persists a new receipt entry.
	Add(ctx context.Context, entry *receipt.Receipt) error

	// GetAllForOrder retrieves every receipt recorded against the order,
	// ordered by received date.
	GetAllForOrder(ctx context.Context, organizationID kernel.UUID, orderID kernel.UUID) ([]*receipt.Receipt, error)

	// GetReceivedQuantities returns the cumulative received quantity per
	// order item for the order. Items without receipts are absent from the
	// result. Callers that need a consistent view across concurrent receives
	// must hold the order row lock taken by OrderRepository.GetForUpdate.
	GetReceivedQuantities(ctx context.Context, organizationID kernel.UUID, orderID kernel.UUID) (map[kernel.UUID]int, error)

	// HasReceipts reports whether any receipt has been recorded against the
	// order. Used to enforce deletion rules.
	HasReceipts(ctx context.Context, organizationID kernel.UUID, orderID kernel.UUID) (bool, error)
}
