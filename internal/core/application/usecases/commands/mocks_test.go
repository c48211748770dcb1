package commands_test

import (
	"context"
	"errors"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/catalog"
	"procurement/internal/core/domain/model/inventory"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) error {
	args := m.Called(ctx, organizationID, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, organizationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, organizationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, entry *receipt.Receipt) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockReceiptRepository) GetAllForOrder(_ context.Context, _ kernel.UUID, _ kernel.UUID) ([]*receipt.Receipt, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockReceiptRepository) GetReceivedQuantities(ctx context.Context, organizationID kernel.UUID, orderID kernel.UUID) (map[kernel.UUID]int, error) {
	args := m.Called(ctx, organizationID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int), args.Error(1)
}

func (m *MockReceiptRepository) HasReceipts(ctx context.Context, organizationID kernel.UUID, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, organizationID, orderID)
	return args.Bool(0), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Append(ctx context.Context, organizationID kernel.UUID, productID kernel.UUID, userID kernel.UUID, delta int, transactionType inventory.TransactionType, reference string, notes string) (*inventory.Transaction, error) {
	args := m.Called(ctx, organizationID, productID, userID, delta, transactionType, reference, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Transaction), args.Error(1)
}

func (m *MockInventoryRepository) Balance(_ context.Context, _ kernel.UUID, _ kernel.UUID) (int, error) {
	return 0, errors.New("not implemented in mock")
}

func (m *MockInventoryRepository) GetAllForProduct(_ context.Context, _ kernel.UUID, _ kernel.UUID) ([]*inventory.Transaction, error) {
	return nil, errors.New("not implemented in mock")
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*catalog.Supplier, error) {
	args := m.Called(ctx, organizationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Supplier), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, organizationID kernel.UUID, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, organizationID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

type MockOrderNumberAllocator struct{ mock.Mock }

func (m *MockOrderNumberAllocator) NextSequence(ctx context.Context, organizationID kernel.UUID, year int) (int, error) {
	args := m.Called(ctx, organizationID, year)
	return args.Int(0), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoW struct{ mock.Mock }

func (m *MockCreateOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCreateOrderUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}
func (m *MockCreateOrderUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}
func (m *MockCreateOrderUoW) OrderNumberAllocator() ports.OrderNumberAllocator {
	args := m.Called()
	return args.Get(0).(ports.OrderNumberAllocator)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockReceiveOrderUoW struct{ mock.Mock }

func (m *MockReceiveOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReceiveOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReceiveOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockReceiveOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockReceiveOrderUoW) ReceiptRepository() ports.ReceiptRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceiptRepository)
}
func (m *MockReceiveOrderUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockReceiveOrderUoWFactory struct{ mock.Mock }

func (m *MockReceiveOrderUoWFactory) Create() commands.ReceiveOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.ReceiveOrderUoW)
}

type MockDeleteOrderUoW struct{ mock.Mock }

func (m *MockDeleteOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockDeleteOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockDeleteOrderUoW) ReceiptRepository() ports.ReceiptRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceiptRepository)
}

type MockDeleteOrderUoWFactory struct{ mock.Mock }

func (m *MockDeleteOrderUoWFactory) Create() commands.DeleteOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.DeleteOrderUoW)
}
