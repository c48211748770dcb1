package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// GetStockBalanceQueryHandler retrieves product stock positions from the
// inventory ledger. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetStockBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetStockBalanceQueryHandler creates a handler for stock balance queries.
// Requires a GORM database connection for query execution.
func NewGetStockBalanceQueryHandler(db *gorm.DB) GetStockBalanceQueryHandler {
	return GetStockBalanceQueryHandler{db: db}
}

// Handle executes the query to retrieve a product's stock balance.
// The balance is the signed sum of the product's ledger entry quantities;
// a product that never moved reports zero rather than an error.
func (h GetStockBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetStockBalanceQuery,
) (GetStockBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockBalanceQueryResponse{}, err
	}

	response := GetStockBalanceQueryResponse{
		ProductID: query.ProductID(),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(quantity), 0), MAX(occurred_at)
		FROM inventory_transactions
		WHERE organization_id = ? AND product_id = ?
	`, query.OrganizationID().Bytes(), query.ProductID().Bytes()).Row()

	var occurredAt sql.NullTime
	if err := row.Scan(&response.Balance, &occurredAt); err != nil {
		return GetStockBalanceQueryResponse{}, err
	}

	if occurredAt.Valid {
		response.LastMovementAt = &occurredAt.Time
	}

	return response, nil
}
