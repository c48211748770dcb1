// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one purchase order with its items and the
// cumulative received quantity per item.
//
// Example:
//
//	query, err := NewGetOrderQuery(orgID, orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Printf("%s is %s\n", result.OrderNumber, result.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	orderID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve a single order.
func NewGetOrderQuery(organizationID kernel.UUID, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(organizationID.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		organizationID: organizationID,
		orderID:        orderID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrganizationID returns the caller's organization identifier.
func (q GetOrderQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemResponse represents one order line in the read model, enriched
// with the product name and the quantity received so far.
type GetOrderItemResponse struct {
	ID               kernel.UUID
	ProductID        kernel.UUID
	ProductName      string
	Quantity         int
	ReceivedQuantity int
	UnitPrice        decimal.Decimal
	TotalAmount      decimal.Decimal
}

// GetOrderQueryResponse represents a purchase order in the read model.
type GetOrderQueryResponse struct {
	ID                   kernel.UUID
	OrderNumber          string
	SupplierID           kernel.UUID
	SupplierName         string
	Status               string
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	TotalAmount          decimal.Decimal
	Notes                string
	Items                []GetOrderItemResponse
}
