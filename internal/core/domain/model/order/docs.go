// Package order provides domain entities and business logic for purchase order
// management in the procurement system. It implements the PurchaseOrder
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns the order header, line items, and derived totals
//   - Item: An immutable order line (product, quantity, unit price)
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a valid organization and supplier and contain at least one item
//   - The order total is the sum of line totals at creation time; receiving never alters it
//   - Status follows the workflow: draft -> sent -> confirmed -> (partially_received) -> received,
//     with cancellation possible from sent, confirmed, and partially_received
//   - partially_received and received are derived from receipt coverage and
//     can never be requested explicitly
//   - Only draft orders without receipts may be deleted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
