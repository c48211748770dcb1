package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler retrieves overdue orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all overdue orders.
// Draft orders are not overdue because they were never sent, and terminal
// orders have nothing outstanding. Results are sorted by how long the order
// has been overdue, longest first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.organization_id,
			o.order_number,
			COALESCE(s.name, ''),
			o.status,
			o.expected_delivery_date
		FROM orders o
		LEFT JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.expected_delivery_date IS NOT NULL
			AND o.expected_delivery_date < ?
			AND o.status IN (?, ?, ?)
		ORDER BY o.expected_delivery_date
	`, query.AsOf(), order.Sent.String(), order.Confirmed.String(), order.PartiallyReceived.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var overdue GetOverdueOrdersQueryResponse
		var id, organizationID uuid.UUID

		err = rows.Scan(
			&id,
			&organizationID,
			&overdue.OrderNumber,
			&overdue.SupplierName,
			&overdue.Status,
			&overdue.ExpectedDeliveryDate,
		)
		if err != nil {
			return nil, err
		}

		if overdue.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if overdue.OrganizationID, err = kernel.UUIDFromBytes(organizationID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, overdue)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
