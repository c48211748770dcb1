package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for order lifecycle and reconciliation failures.
var (
	ErrInvalidState      = errors.New("operation is not allowed in current state")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrQuantityExceeded  = errors.New("received quantity exceeds remaining quantity")
	ErrConflict          = errors.New("concurrent update conflict")
)

// InvalidStateError indicates that an operation is not legal for the
// aggregate's current lifecycle state, e.g. deleting a non-draft order or
// receiving against a draft.
type InvalidStateError struct {
	Operation    string
	CurrentState string
	Cause        error
}

// NewInvalidStateError creates an InvalidStateError without a cause.
func NewInvalidStateError(operation, currentState string) *InvalidStateError {
	return &InvalidStateError{
		Operation:    operation,
		CurrentState: currentState,
	}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(operation, currentState string, cause error) *InvalidStateError {
	return &InvalidStateError{
		Operation:    operation,
		CurrentState: currentState,
		Cause:        cause,
	}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s while status is %s (cause: %s)",
			ErrInvalidState, e.Operation, e.CurrentState, e.Cause)
	}
	return fmt.Sprintf("%s: cannot %s while status is %s", ErrInvalidState, e.Operation, e.CurrentState)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidTransitionError indicates that an explicitly requested status change
// is not an edge of the order lifecycle state machine. It always names both
// the current and the requested status.
type InvalidTransitionError struct {
	From string
	To   string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given edge.
func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{
		From: from,
		To:   to,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// QuantityExceededError indicates that a receipt batch asked for more units
// of an order item than remain outstanding. The whole batch is rejected when
// this error is raised.
type QuantityExceededError struct {
	OrderItemID string
	Requested   int
	Remaining   int
}

// NewQuantityExceededError creates a QuantityExceededError for the given order item.
func NewQuantityExceededError(orderItemID string, requested, remaining int) *QuantityExceededError {
	return &QuantityExceededError{
		OrderItemID: orderItemID,
		Requested:   requested,
		Remaining:   remaining,
	}
}

func (e *QuantityExceededError) Error() string {
	return fmt.Sprintf("%s: order item %s, requested %d, remaining %d",
		ErrQuantityExceeded, e.OrderItemID, e.Requested, e.Remaining)
}

func (e *QuantityExceededError) Unwrap() error {
	return ErrQuantityExceeded
}

// ConflictError indicates that an operation lost a concurrency race
// (e.g. the order number counter) and may be retried.
type ConflictError struct {
	Resource string
	Cause    error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(resource string) *ConflictError {
	return &ConflictError{Resource: resource}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(resource string, cause error) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Cause:    cause,
	}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConflict, e.Resource)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
