// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the procurement system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ReceiptReconciler: A domain service that validates reported receipt
//     quantities against outstanding order-item quantities and derives the
//     order's lifecycle status from receipt coverage
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
