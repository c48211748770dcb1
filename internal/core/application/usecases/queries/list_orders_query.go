package queries

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a page of purchase orders for an organization,
// optionally filtered by status and supplier. Results are sorted newest first.
//
// Example:
//
//	query, err := NewListOrdersQuery(orgID, "confirmed", nil, 1, 20)
//	handler := NewListOrdersQueryHandler(db)
//
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	status         *order.Status
	supplierID     *kernel.UUID
	page           int
	pageSize       int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. An empty status string
// means no status filter; a nil supplierID means no supplier filter. Page
// numbers start at 1; non-positive page or pageSize fall back to defaults
// and pageSize is capped at 100.
func NewListOrdersQuery(
	organizationID kernel.UUID,
	status string,
	supplierID *kernel.UUID,
	page int,
	pageSize int,
) (ListOrdersQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	listQuery := ListOrdersQuery{
		organizationID: organizationID,
		page:           page,
		pageSize:       pageSize,
		guard:          guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		listQuery.status = &parsed
	}

	if supplierID != nil {
		if err := supplierID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		listQuery.supplierID = supplierID
	}

	if listQuery.page < 1 {
		listQuery.page = 1
	}
	if listQuery.pageSize < 1 {
		listQuery.pageSize = defaultPageSize
	}
	if listQuery.pageSize > maxPageSize {
		listQuery.pageSize = maxPageSize
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrganizationID returns the caller's organization identifier.
func (q ListOrdersQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// Status returns the status filter, or nil when unfiltered.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// SupplierID returns the supplier filter, or nil when unfiltered.
func (q ListOrdersQuery) SupplierID() *kernel.UUID {
	return q.supplierID
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListOrdersQuery) PageSize() int {
	return q.pageSize
}

// ListOrdersItemResponse represents one order summary in the list read model.
type ListOrdersItemResponse struct {
	ID                   kernel.UUID
	OrderNumber          string
	SupplierID           kernel.UUID
	SupplierName         string
	Status               string
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	TotalAmount          decimal.Decimal
	ItemCount            int
}

// ListOrdersQueryResponse is one page of order summaries plus the total
// number of orders matching the filters.
type ListOrdersQueryResponse struct {
	Orders   []ListOrdersItemResponse
	Total    int64
	Page     int
	PageSize int
}
