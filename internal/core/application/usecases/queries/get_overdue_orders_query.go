package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves orders whose expected delivery date has
// passed while goods are still outstanding. Used by the overdue delivery
// reminder job across all organizations.
type GetOverdueOrdersQuery struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates a query to retrieve overdue orders.
// Orders are overdue when their expected delivery date is strictly before
// asOf and they are still in sent, confirmed, or partially_received status.
func NewGetOverdueOrdersQuery(asOf time.Time) (GetOverdueOrdersQuery, error) {
	if asOf.IsZero() {
		return GetOverdueOrdersQuery{}, errors.New("asOf time is required")
	}

	return GetOverdueOrdersQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueOrdersQueryIsNotConstructed if validation fails.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// AsOf returns the reference time overdue is measured against.
func (q GetOverdueOrdersQuery) AsOf() time.Time {
	return q.asOf
}

// GetOverdueOrdersQueryResponse represents one overdue order in the read model.
type GetOverdueOrdersQueryResponse struct {
	ID                   kernel.UUID
	OrganizationID       kernel.UUID
	OrderNumber          string
	SupplierName         string
	Status               string
	ExpectedDeliveryDate time.Time
}
