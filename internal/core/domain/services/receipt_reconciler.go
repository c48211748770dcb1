package services

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// ReceiptReconciler is a domain service that reconciles reported goods
// receipts against a purchase order. It is a pure function over the order's
// lines and their cumulative received quantities; reading those quantities
// under the right transactional scope is the caller's responsibility.
//
// Key responsibilities:
//   - Validating that a requested receipt quantity fits within the quantity
//     still outstanding on an order line
//   - Deriving the order's lifecycle status from receipt coverage across
//     every line of the order, not just the lines touched by one batch
//
// Business rules:
//   - The cumulative received quantity of a line never exceeds its ordered quantity
//   - An order is received when every line is fully covered
//   - An order is partially_received when at least one line has nonzero but
//     incomplete coverage and none exceed
//   - Otherwise the status is left unchanged
type ReceiptReconciler struct{}

// NewReceiptReconciler creates a new ReceiptReconciler instance.
func NewReceiptReconciler() ReceiptReconciler {
	return ReceiptReconciler{}
}

// Remaining returns the quantity still outstanding on an order line given
// the cumulative quantity already received against it.
//
// Returns an error if the line is invalid or the recorded receipts already
// exceed the ordered quantity, which would mean persisted data violates the
// conservation invariant.
func (r ReceiptReconciler) Remaining(item *order.Item, alreadyReceived int) (int, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	if alreadyReceived < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("alreadyReceived",
			fmt.Errorf("%d is negative", alreadyReceived))
	}

	remaining := item.Quantity() - alreadyReceived
	if remaining < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("alreadyReceived",
			fmt.Errorf("receipts for item %s total %d which exceeds ordered quantity %d",
				item.ID(), alreadyReceived, item.Quantity()))
	}

	return remaining, nil
}

// ValidateRequested checks that a requested receipt quantity fits within the
// quantity still outstanding on the line.
//
// Returns:
//   - *errs.ValueIsInvalidError if requested is not positive
//   - *errs.QuantityExceededError carrying the line id, the requested
//     quantity, and the remaining quantity if the request over-receives
func (r ReceiptReconciler) ValidateRequested(item *order.Item, alreadyReceived, requested int) error {
	if requested <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("receivedQuantity",
			fmt.Errorf("%d is not greater than 0", requested))
	}

	remaining, err := r.Remaining(item, alreadyReceived)
	if err != nil {
		return err
	}

	if requested > remaining {
		return errs.NewQuantityExceededError(item.ID().String(), requested, remaining)
	}

	return nil
}

// DeriveStatus computes the order's lifecycle status from receipt coverage
// across every line of the order. receivedByItem maps line ids to cumulative
// received quantities; lines absent from the map count as not started.
//
// Returns:
//   - order.Received if every line is fully covered
//   - order.PartiallyReceived if at least one line has nonzero coverage
//   - the order's current status otherwise
//
// An error is returned if the order is invalid or any line's coverage
// exceeds its ordered quantity.
func (r ReceiptReconciler) DeriveStatus(o *order.Order, receivedByItem map[kernel.UUID]int) (order.Status, error) {
	if err := o.Validate(); err != nil {
		return order.Unknown, err
	}

	allCovered := true
	anyStarted := false

	for _, item := range o.Items() {
		received := receivedByItem[item.ID()]

		remaining, err := r.Remaining(item, received)
		if err != nil {
			return order.Unknown, err
		}

		if remaining > 0 {
			allCovered = false
		}
		if received > 0 {
			anyStarted = true
		}
	}

	switch {
	case allCovered:
		return order.Received, nil
	case anyStarted:
		return order.PartiallyReceived, nil
	default:
		return o.Status(), nil
	}
}
