package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "procurement/internal/adapters/out/postgres"
	"procurement/internal/adapters/out/postgres/catalogrepo"
	"procurement/internal/adapters/out/postgres/counterrepo"
	"procurement/internal/adapters/out/postgres/inventoryrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/adapters/out/postgres/receiptrepo"
	"procurement/internal/core/domain/model/inventory"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/receipt"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{},
		&receiptrepo.ReceiptDTO{},
		&inventoryrepo.TransactionDTO{},
		&catalogrepo.SupplierDTO{}, &catalogrepo.ProductDTO{},
		&counterrepo.CounterDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, receipts, inventory_transactions, suppliers, products, order_counters").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ReceiptRepository())
	suite.NotNil(uow1.InventoryRepository())
	suite.NotNil(uow1.SupplierRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.OrderNumberAllocator())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderPersistence verifies order aggregates persist across
// transaction boundaries with all their lines.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderPersistence() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()
	uow := suite.factory.Create()

	testOrder := suite.makeConfirmedOrder(organizationID, 1)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrieved, err := uow.OrderRepository().Get(ctx, organizationID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible from a fresh unit of work after commit
	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, organizationID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.OrderNumber(), retrieved.OrderNumber())
	suite.Equal(order.Confirmed, retrieved.Status())
	suite.Len(retrieved.Items(), 1)
	suite.True(retrieved.TotalAmount().IsEqual(testOrder.TotalAmount()))
}

// TestUnitOfWork_ReceiveWorkflow tests the complete goods receipt workflow:
// receipts recorded, ledger entries chained, and the order status derived
// from coverage, all within a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ReceiveWorkflow() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()
	userID := kernel.NewUUID()
	reconciler := services.NewReceiptReconciler()

	testOrder := suite.makeConfirmedOrder(organizationID, 1)
	setupUow := suite.factory.Create()
	err := setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// First receipt covers 6 of 10
	err = suite.receive(ctx, organizationID, userID, testOrder.ID(), 6, reconciler)
	suite.Require().NoError(err)

	checkUow := suite.factory.Create()
	retrieved, err := checkUow.OrderRepository().Get(ctx, organizationID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PartiallyReceived, retrieved.Status())

	item := testOrder.Items()[0]
	balance, err := checkUow.InventoryRepository().Balance(ctx, organizationID, item.ProductID())
	suite.Require().NoError(err)
	suite.Equal(6, balance)

	// Second receipt covers the remaining 4
	err = suite.receive(ctx, organizationID, userID, testOrder.ID(), 4, reconciler)
	suite.Require().NoError(err)

	retrieved, err = checkUow.OrderRepository().Get(ctx, organizationID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Received, retrieved.Status())

	balance, err = checkUow.InventoryRepository().Balance(ctx, organizationID, item.ProductID())
	suite.Require().NoError(err)
	suite.Equal(10, balance)

	// Ledger entries chain correctly
	entries, err := checkUow.InventoryRepository().GetAllForProduct(ctx, organizationID, item.ProductID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal(10, entries[0].NewStock())
	suite.Equal(6, entries[0].PreviousStock())
	suite.Equal(0, entries[1].PreviousStock())

	// Receipts total matches coverage
	received, err := checkUow.ReceiptRepository().GetReceivedQuantities(ctx, organizationID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(10, received[item.ID()])
}

// TestUnitOfWork_TransactionRollback verifies rollback discards receipts,
// ledger entries, and order changes made within the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()
	userID := kernel.NewUUID()

	testOrder := suite.makeConfirmedOrder(organizationID, 1)
	setupUow := suite.factory.Create()
	err := setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	item := testOrder.Items()[0]

	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	rcpt, err := receipt.NewReceipt(kernel.NewUUID(), organizationID, testOrder.ID(), item.ID(),
		userID, 6, item.UnitPrice(), time.Now().UTC(), "")
	suite.Require().NoError(err)
	err = uow.ReceiptRepository().Add(ctx, rcpt)
	suite.Require().NoError(err)

	_, err = uow.InventoryRepository().Append(ctx, organizationID, item.ProductID(), userID,
		6, inventory.Purchase, testOrder.OrderNumber(), "")
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Nothing persisted
	checkUow := suite.factory.Create()
	has, err := checkUow.ReceiptRepository().HasReceipts(ctx, organizationID, testOrder.ID())
	suite.Require().NoError(err)
	suite.False(has, "Receipts should not exist after rollback")

	balance, err := checkUow.InventoryRepository().Balance(ctx, organizationID, item.ProductID())
	suite.Require().NoError(err)
	suite.Equal(0, balance, "Ledger should be empty after rollback")
}

// TestUnitOfWork_ConcurrentReceive verifies the quantity conservation invariant
// under concurrency: two transactions each try to receive 6 against a line
// ordered at 10, and exactly one may succeed.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentReceive() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()
	userID := kernel.NewUUID()
	reconciler := services.NewReceiptReconciler()

	testOrder := suite.makeConfirmedOrder(organizationID, 1)
	setupUow := suite.factory.Create()
	err := setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	var wg sync.WaitGroup
	results := make(chan error, 2)

	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.receive(ctx, organizationID, userID, testOrder.ID(), 6, reconciler)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}
	suite.Equal(1, succeeded, "Exactly one of the concurrent receipts should succeed")

	// Total coverage never exceeds the ordered quantity
	checkUow := suite.factory.Create()
	item := testOrder.Items()[0]
	received, err := checkUow.ReceiptRepository().GetReceivedQuantities(ctx, organizationID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(6, received[item.ID()])

	balance, err := checkUow.InventoryRepository().Balance(ctx, organizationID, item.ProductID())
	suite.Require().NoError(err)
	suite.Equal(6, balance)

	retrieved, err := checkUow.OrderRepository().Get(ctx, organizationID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PartiallyReceived, retrieved.Status())
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := suite.makeConfirmedOrder(organizationID, 1)
	order2 := suite.makeConfirmedOrder(organizationID, 2)

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction sees only its own changes
	_, err = uow1.OrderRepository().Get(ctx, organizationID, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, organizationID, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, organizationID, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, organizationID, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	organizationID := kernel.NewUUID()
	uow := suite.factory.Create()

	testOrder := suite.makeConfirmedOrder(organizationID, 1)

	// Add without beginning transaction (auto-commit)
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, organizationID, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

// receive replays the goods receipt workflow against the first line of the
// order: lock the order row, reconcile the requested quantity against
// coverage, record the receipt and the ledger entry, and derive the status.
func (suite *UnitOfWorkIntegrationTestSuite) receive(
	ctx context.Context,
	organizationID kernel.UUID,
	userID kernel.UUID,
	orderID kernel.UUID,
	quantity int,
	reconciler services.ReceiptReconciler,
) error {
	uow := suite.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregate, err := uow.OrderRepository().GetForUpdate(ctx, organizationID, orderID)
	if err != nil {
		return err
	}

	received, err := uow.ReceiptRepository().GetReceivedQuantities(ctx, organizationID, orderID)
	if err != nil {
		return err
	}
	if received == nil {
		received = make(map[kernel.UUID]int)
	}

	item := aggregate.Items()[0]
	if err = reconciler.ValidateRequested(item, received[item.ID()], quantity); err != nil {
		return err
	}

	rcpt, err := receipt.NewReceipt(kernel.NewUUID(), organizationID, orderID, item.ID(),
		userID, quantity, item.UnitPrice(), time.Now().UTC(), "")
	if err != nil {
		return err
	}
	if err = uow.ReceiptRepository().Add(ctx, rcpt); err != nil {
		return err
	}

	if _, err = uow.InventoryRepository().Append(ctx, organizationID, item.ProductID(), userID,
		quantity, inventory.Purchase, aggregate.OrderNumber(), ""); err != nil {
		return err
	}

	received[item.ID()] += quantity
	derived, err := reconciler.DeriveStatus(aggregate, received)
	if err != nil {
		return err
	}
	if err = aggregate.ApplyReceiptCoverage(derived); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// makeConfirmedOrder creates a confirmed order with a single line of
// quantity 10 at 5.00 for testing purposes.
func (suite *UnitOfWorkIntegrationTestSuite) makeConfirmedOrder(organizationID kernel.UUID, seq int) *order.Order {
	price, err := kernel.MoneyFromString("5.00")
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 10, price)
	suite.Require().NoError(err)

	orderDate := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder(kernel.NewUUID(), organizationID, kernel.NewUUID(),
		order.FormatOrderNumber(2026, seq), orderDate, []*order.Item{item}, nil, "")
	suite.Require().NoError(err)

	suite.Require().NoError(aggregate.ChangeStatus(order.Sent))
	suite.Require().NoError(aggregate.ChangeStatus(order.Confirmed))
	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
