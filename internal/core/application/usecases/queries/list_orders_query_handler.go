package queries

import (
	"context"
	"database/sql"

	"procurement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of order summaries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a page of orders.
// Orders are sorted by order date descending, then order number descending,
// so the most recently placed orders come first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "o.organization_id = ?"
	args := []any{query.OrganizationID().Bytes()}

	if query.Status() != nil {
		where += " AND o.status = ?"
		args = append(args, query.Status().String())
	}
	if query.SupplierID() != nil {
		where += " AND o.supplier_id = ?"
		args = append(args, query.SupplierID().Bytes())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders o WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	pageArgs := append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.supplier_id,
			COALESCE(s.name, ''),
			o.status,
			o.order_date,
			o.expected_delivery_date,
			o.total_amount,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id)
		FROM orders o
		LEFT JOIN suppliers s ON s.id = o.supplier_id
		WHERE `+where+`
		ORDER BY o.order_date DESC, o.order_number DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]ListOrdersItemResponse, 0)
	for rows.Next() {
		var item ListOrdersItemResponse
		var id, supplierID uuid.UUID
		var expectedDeliveryDate sql.NullTime

		err = rows.Scan(
			&id,
			&item.OrderNumber,
			&supplierID,
			&item.SupplierName,
			&item.Status,
			&item.OrderDate,
			&expectedDeliveryDate,
			&item.TotalAmount,
			&item.ItemCount,
		)
		if err != nil {
			return ListOrdersQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if item.SupplierID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return ListOrdersQueryResponse{}, err
		}
		if expectedDeliveryDate.Valid {
			item.ExpectedDeliveryDate = &expectedDeliveryDate.Time
		}

		orders = append(orders, item)
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{
		Orders:   orders,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}
