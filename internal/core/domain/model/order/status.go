package order

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct procurement workflow.
//
// State transitions:
//
//	draft ──> sent ──> confirmed ──┬──> partially_received ──┬──> received
//	            │         │        │            │            │
//	            │         │        └────────────┼────────────┘
//	            │         │                     │
//	            └─────────┴──> cancelled <──────┘
//
// received and cancelled are terminal. The partially_received and received
// states are derived from receipt coverage by the reconciliation flow and
// can never be requested explicitly.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when an order is first created.
	// Only draft orders without receipts may be deleted.
	Draft

	// Sent indicates the order has been sent to the supplier.
	Sent

	// Confirmed indicates the supplier has confirmed the order.
	// Goods may be received against confirmed orders.
	Confirmed

	// PartiallyReceived indicates at least one item has nonzero but
	// incomplete receipt coverage. Derived, never requested.
	PartiallyReceived

	// Received indicates every item is fully covered by receipts.
	// Terminal. Derived, never requested.
	Received

	// Cancelled indicates the order was cancelled before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Draft:             "draft",
		Sent:              "sent",
		Confirmed:         "confirmed",
		PartiallyReceived: "partially_received",
		Received:          "received",
		Cancelled:         "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:             "draft",
		Sent:              "sent",
		Confirmed:         "confirmed",
		PartiallyReceived: "partially_received",
		Received:          "received",
		Cancelled:         "cancelled",
	}
}

// getTransitions returns the edges of the lifecycle state machine.
// Terminal states have no outgoing edges and are absent from the map.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:             {Sent},
		Sent:              {Confirmed, Cancelled},
		Confirmed:         {PartiallyReceived, Received, Cancelled},
		PartiallyReceived: {Received, Cancelled},
	}
}

// StatusFromString parses a Status from its snake_case string representation,
// e.g. "partially_received". Returns an error for unknown strings.
// Used when reconstructing statuses from external input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other unmapped values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Received || s == Cancelled
}

// IsDerived reports whether the status can only be reached through
// receipt reconciliation, never through an explicit status change request.
func (s Status) IsDerived() bool {
	return s == PartiallyReceived || s == Received
}

// CanReceive reports whether goods receipts may be recorded against
// an order in this status.
func (s Status) CanReceive() bool {
	return s == Confirmed || s == PartiallyReceived
}

// CanTransitionTo reports whether target is a legal next status
// according to the state machine table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo transitions the status to target.
//
// Returns:
//   - (target, nil) if the edge exists in the state machine table
//   - (Unknown, *errs.InvalidTransitionError) naming both states otherwise
//
// TransitionTo validates the edge only; whether the transition may be
// requested explicitly is enforced by Order.ChangeStatus.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}
