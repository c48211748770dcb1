// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"procurement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReceiptRepoFactory provides access to the receipt repository within a transaction.
	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	// InventoryRepoFactory provides access to the inventory ledger within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// CatalogRepoFactory provides read access to supplier and product master
	// data within a transaction.
	CatalogRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
		ProductRepository() ports.ProductRepository
	}

	// AllocatorFactory provides access to the order number allocator within a transaction.
	AllocatorFactory interface {
		OrderNumberAllocator() ports.OrderNumberAllocator
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation. Creation needs
	// the catalog to validate supplier and product references and the
	// allocator to assign an order number.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
		AllocatorFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ReceiveOrderUoW manages transactions for goods receiving. Receiving
	// writes the order, the receipt log, and the inventory ledger in one
	// atomic unit.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	orderRepo := uow.OrderRepository()
	//	receiptRepo := uow.ReceiptRepository()
	//	// ... perform operations
	//
	//	err = uow.Commit(ctx)
	ReceiveOrderUoW interface {
		TxManager
		OrderRepoFactory
		ReceiptRepoFactory
		InventoryRepoFactory
	}

	// ReceiveOrderUoWFactory creates new receiving unit of work instances.
	ReceiveOrderUoWFactory interface {
		Create() ReceiveOrderUoW
	}

	// DeleteOrderUoW manages transactions for order deletion. Deletion needs
	// the receipt log to verify the order has never been received against.
	DeleteOrderUoW interface {
		TxManager
		OrderRepoFactory
		ReceiptRepoFactory
	}

	// DeleteOrderUoWFactory creates new deletion unit of work instances.
	DeleteOrderUoWFactory interface {
		Create() DeleteOrderUoW
	}
)
