package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
)

// OrderNumberAllocator hands out sequential order numbers per organization
// and calendar year. Implementations must be safe under concurrency: two
// orders created at the same moment receive distinct sequence values.
// Sequences are monotonically increasing but not necessarily gapless, since
// a rolled-back order creation abandons its allocated value.
type OrderNumberAllocator interface {
	// NextSequence atomically allocates and returns the next sequence value
	// for the organization and year.
	NextSequence(ctx context.Context, organizationID kernel.UUID, year int) (int, error)
}
