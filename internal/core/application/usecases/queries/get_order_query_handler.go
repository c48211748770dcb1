package queries

import (
	"context"
	"database/sql"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items.
// Each item carries the cumulative quantity received against it, so callers
// can display outstanding quantities without a second request.
// Returns *errs.ObjectNotFoundError if the order does not exist within the
// caller's organization.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.supplier_id,
			COALESCE(s.name, ''),
			o.status,
			o.order_date,
			o.expected_delivery_date,
			o.total_amount,
			o.notes
		FROM orders o
		LEFT JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.organization_id = ? AND o.id = ?
	`, query.OrganizationID().Bytes(), query.OrderID().Bytes()).Row()

	var id, supplierID uuid.UUID
	var expectedDeliveryDate sql.NullTime
	err := row.Scan(
		&id,
		&response.OrderNumber,
		&supplierID,
		&response.SupplierName,
		&response.Status,
		&response.OrderDate,
		&expectedDeliveryDate,
		&response.TotalAmount,
		&response.Notes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if expectedDeliveryDate.Valid {
		response.ExpectedDeliveryDate = &expectedDeliveryDate.Time
	}

	items, err := h.loadItems(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	query GetOrderQuery,
) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.product_id,
			COALESCE(p.name, ''),
			i.quantity,
			COALESCE(SUM(r.quantity), 0),
			i.unit_price,
			i.total_amount
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		LEFT JOIN receipts r ON r.order_item_id = i.id
		WHERE i.order_id = ?
		GROUP BY i.id, p.name
		ORDER BY i.id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&item.ProductName,
			&item.Quantity,
			&item.ReceivedQuantity,
			&item.UnitPrice,
			&item.TotalAmount,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
