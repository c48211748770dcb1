package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetStockBalanceQueryIsNotConstructed = errors.New(
	"GetStockBalanceQuery must be created via NewGetStockBalanceQuery constructor",
)

// GetStockBalanceQuery retrieves the current stock level of a product, which
// is the running balance carried by the latest inventory ledger entry.
type GetStockBalanceQuery struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	productID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStockBalanceQuery creates a query to retrieve a product's stock balance.
func NewGetStockBalanceQuery(organizationID kernel.UUID, productID kernel.UUID) (GetStockBalanceQuery, error) {
	if err := errors.Join(organizationID.Validate(), productID.Validate()); err != nil {
		return GetStockBalanceQuery{}, err
	}

	return GetStockBalanceQuery{
		organizationID: organizationID,
		productID:      productID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockBalanceQueryIsNotConstructed if validation fails.
func (q GetStockBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetStockBalanceQueryIsNotConstructed)
}

// OrganizationID returns the caller's organization identifier.
func (q GetStockBalanceQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// ProductID returns the product's identifier.
func (q GetStockBalanceQuery) ProductID() kernel.UUID {
	return q.productID
}

// GetStockBalanceQueryResponse represents a product's stock position.
// A product with no ledger entries has a balance of zero and a nil
// LastMovementAt.
type GetStockBalanceQueryResponse struct {
	ProductID      kernel.UUID
	Balance        int
	LastMovementAt *time.Time
}
