package ports

import (
	"context"

	"procurement/internal/core/domain/model/inventory"
	"procurement/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for the append-only
// inventory transaction ledger.
type InventoryRepository interface {
	// Append records a stock movement for the product. The implementation
	// reads the current balance and writes a chained entry atomically:
	// concurrent appends for the same (organization, product) pair serialize
	// so every entry's previous stock equals the new stock of the entry
	// before it. The delta must not drive the balance negative.
	//
	// Returns the persisted transaction with its computed stock levels.
	Append(ctx context.Context, organizationID kernel.UUID, productID kernel.UUID, userID kernel.UUID, delta int, transactionType inventory.TransactionType, reference string, notes string) (*inventory.Transaction, error)

	// Balance returns the current stock level of the product, which is the
	// new stock of the latest ledger entry, or zero if the product has no
	// entries yet.
	Balance(ctx context.Context, organizationID kernel.UUID, productID kernel.UUID) (int, error)

	// GetAllForProduct retrieves the product's ledger entries, most
	// recent first.
	GetAllForProduct(ctx context.Context, organizationID kernel.UUID, productID kernel.UUID) ([]*inventory.Transaction, error)
}
