package queries_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	orgID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	t.Run("valid_input", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(orgID, orderID)
		require.NoError(t, err)
		assert.Equal(t, orgID, query.OrganizationID())
		assert.Equal(t, orderID, query.OrderID())
		require.NoError(t, query.Validate())
	})

	t.Run("invalid_order_id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(orgID, kernel.UUID{})
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.GetOrderQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewListOrdersQuery(t *testing.T) {
	orgID := kernel.NewUUID()

	t.Run("defaults_applied", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(orgID, "", nil, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 20, query.PageSize())
		assert.Nil(t, query.Status())
		assert.Nil(t, query.SupplierID())
	})

	t.Run("page_size_capped", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(orgID, "", nil, 1, 500)
		require.NoError(t, err)
		assert.Equal(t, 100, query.PageSize())
	})

	t.Run("status_filter_parsed", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(orgID, "confirmed", nil, 1, 20)
		require.NoError(t, err)
		require.NotNil(t, query.Status())
		assert.Equal(t, order.Confirmed, *query.Status())
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(orgID, "shipped", nil, 1, 20)
		require.Error(t, err)
	})

	t.Run("supplier_filter_validated", func(t *testing.T) {
		invalid := kernel.UUID{}
		_, err := queries.NewListOrdersQuery(orgID, "", &invalid, 1, 20)
		require.Error(t, err)
	})
}

func TestNewGetStockBalanceQuery(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		orgID := kernel.NewUUID()
		productID := kernel.NewUUID()
		query, err := queries.NewGetStockBalanceQuery(orgID, productID)
		require.NoError(t, err)
		assert.Equal(t, productID, query.ProductID())
	})

	t.Run("invalid_product_id", func(t *testing.T) {
		_, err := queries.NewGetStockBalanceQuery(kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})
}

func TestNewGetOverdueOrdersQuery(t *testing.T) {
	t.Run("valid_input", func(t *testing.T) {
		asOf := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
		query, err := queries.NewGetOverdueOrdersQuery(asOf)
		require.NoError(t, err)
		assert.Equal(t, asOf, query.AsOf())
	})

	t.Run("zero_time_rejected", func(t *testing.T) {
		_, err := queries.NewGetOverdueOrdersQuery(time.Time{})
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.GetOverdueOrdersQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetOverdueOrdersQueryIsNotConstructed)
	})
}
