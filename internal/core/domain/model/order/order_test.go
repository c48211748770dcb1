package order_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func makeItem(t *testing.T, quantity int, unitPrice string) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity, mustMoney(t, unitPrice))
	require.NoError(t, err)
	return item
}

func makeOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []*order.Item{makeItem(t, 10, "5.00")}
	}
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"PO-2026-0001",
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		items,
		nil,
		"",
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("computes_line_total", func(t *testing.T) {
		item := makeItem(t, 10, "5.00")

		assert.Equal(t, 10, item.Quantity())
		assert.True(t, item.TotalAmount().IsEqual(mustMoney(t, "50.00")))
	})

	t.Run("allows_zero_unit_price", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, item.TotalAmount().IsEqual(kernel.ZeroMoney()))
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity, mustMoney(t, "5.00"))
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects_invalid_product_id", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.UUID{}, 1, mustMoney(t, "5.00"))

		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_unit_price", func(t *testing.T) {
		var price kernel.Money
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, price)

		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_draft_order_with_summed_total", func(t *testing.T) {
		o := makeOrder(t,
			makeItem(t, 10, "5.00"),
			makeItem(t, 2, "25.50"),
		)

		assert.Equal(t, order.Draft, o.Status())
		assert.True(t, o.TotalAmount().IsEqual(mustMoney(t, "101.00")))
		assert.Len(t, o.Items(), 2)
		require.NoError(t, o.Validate())
	})

	t.Run("rejects_empty_items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"PO-2026-0001", time.Now(), nil, nil, "",
		)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("rejects_empty_order_number", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", time.Now(), []*order.Item{makeItem(t, 1, "1.00")}, nil, "",
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_identifiers", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			"PO-2026-0001", time.Now(), []*order.Item{makeItem(t, 1, "1.00")}, nil, "",
		)

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_status_and_total", func(t *testing.T) {
		items := []*order.Item{makeItem(t, 10, "5.00")}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"PO-2026-0007", time.Now(), order.PartiallyReceived,
			mustMoney(t, "50.00"), items, nil, "restocked",
		)

		require.NoError(t, err)
		assert.Equal(t, order.PartiallyReceived, o.Status())
		assert.Equal(t, "restocked", o.Notes())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		items := []*order.Item{makeItem(t, 1, "1.00")}

		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"PO-2026-0007", time.Now(), order.Unknown,
			mustMoney(t, "1.00"), items, nil, "",
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_order_fails_validation", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Item(t *testing.T) {
	item := makeItem(t, 4, "2.00")
	o := makeOrder(t, item)

	t.Run("finds_own_item", func(t *testing.T) {
		found, err := o.Item(item.ID())

		require.NoError(t, err)
		assert.True(t, found.ID().IsEqual(item.ID()))
	})

	t.Run("rejects_foreign_item", func(t *testing.T) {
		_, err := o.Item(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks_explicit_workflow", func(t *testing.T) {
		o := makeOrder(t)

		require.NoError(t, o.ChangeStatus(order.Sent))
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("rejects_illegal_edge", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.ChangeStatus(order.Sent))

		err := o.ChangeStatus(order.Sent)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Sent, o.Status())
	})

	t.Run("rejects_derived_statuses_even_when_edge_exists", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.ChangeStatus(order.Sent))
		require.NoError(t, o.ChangeStatus(order.Confirmed))

		for _, derived := range []order.Status{order.PartiallyReceived, order.Received} {
			err := o.ChangeStatus(derived)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("rejects_transition_out_of_terminal_state", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.ChangeStatus(order.Sent))
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		err := o.ChangeStatus(order.Sent)

		require.Error(t, err)
	})
}

func TestOrder_ApplyReceiptCoverage(t *testing.T) {
	confirmedOrder := func() *order.Order {
		o := makeOrder(t)
		require.NoError(t, o.ChangeStatus(order.Sent))
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		return o
	}

	t.Run("applies_partial_coverage", func(t *testing.T) {
		o := confirmedOrder()

		require.NoError(t, o.ApplyReceiptCoverage(order.PartiallyReceived))
		assert.Equal(t, order.PartiallyReceived, o.Status())
	})

	t.Run("applies_full_coverage", func(t *testing.T) {
		o := confirmedOrder()

		require.NoError(t, o.ApplyReceiptCoverage(order.PartiallyReceived))
		require.NoError(t, o.ApplyReceiptCoverage(order.Received))
		assert.Equal(t, order.Received, o.Status())
	})

	t.Run("same_status_is_a_noop", func(t *testing.T) {
		o := confirmedOrder()
		require.NoError(t, o.ApplyReceiptCoverage(order.PartiallyReceived))

		require.NoError(t, o.ApplyReceiptCoverage(order.PartiallyReceived))
		assert.Equal(t, order.PartiallyReceived, o.Status())
	})
}

func TestOrder_ValidateReceive(t *testing.T) {
	t.Run("allows_confirmed_and_partially_received", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.ChangeStatus(order.Sent))
		require.NoError(t, o.ChangeStatus(order.Confirmed))

		require.NoError(t, o.ValidateReceive())

		require.NoError(t, o.ApplyReceiptCoverage(order.PartiallyReceived))
		require.NoError(t, o.ValidateReceive())
	})

	t.Run("rejects_draft_and_sent", func(t *testing.T) {
		o := makeOrder(t)

		err := o.ValidateReceive()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)

		require.NoError(t, o.ChangeStatus(order.Sent))
		require.ErrorIs(t, o.ValidateReceive(), errs.ErrInvalidState)
	})
}

func TestOrder_ValidateDelete(t *testing.T) {
	t.Run("allows_draft_without_receipts", func(t *testing.T) {
		o := makeOrder(t)

		require.NoError(t, o.ValidateDelete(false))
	})

	t.Run("rejects_draft_with_receipts", func(t *testing.T) {
		o := makeOrder(t)

		err := o.ValidateDelete(true)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("rejects_non_draft", func(t *testing.T) {
		o := makeOrder(t)
		require.NoError(t, o.ChangeStatus(order.Sent))

		err := o.ValidateDelete(false)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}
