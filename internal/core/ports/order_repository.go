// Package ports defines repository interfaces for the procurement domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase order aggregates.
// All lookups are scoped by organization so one tenant can never observe or
// mutate another tenant's orders.
type OrderRepository interface {
	// Add persists a new order aggregate together with its items.
	// The order must be valid and not already exist in the repository.
	// Returns *errs.ConflictError if the order number is already taken
	// within the organization.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order aggregate and its items from storage.
	// Callers are responsible for checking the aggregate's deletion rules
	// before invoking Delete.
	Delete(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) error

	// Get retrieves an order aggregate by its unique identifier within the
	// organization. Returns the complete order with all of its items.
	// Returns *errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order like Get but locks the order row for
	// the duration of the surrounding transaction. Concurrent receive
	// operations against the same order serialize on this lock, so receipt
	// validation always sees the latest cumulative received quantities.
	GetForUpdate(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*order.Order, error)
}
