package queries_test

import (
	"context"
	"testing"
	"time"

	"procurement/internal/adapters/out/postgres/catalogrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOverdueOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOverdueOrdersQueryHandler
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{},
		&catalogrepo.SupplierDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOverdueOrdersQueryHandler(db)
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, suppliers").Error
	suite.Require().NoError(err)
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyOverdueAwaitingOrders() {
	asOf := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)
	past := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)
	future := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	organizationID := kernel.NewUUID()
	supplierID := kernel.NewUUID()

	suite.seedSupplier(organizationID, supplierID, "Acme Supplies")

	overdueSent := suite.seedOrder(organizationID, supplierID, 1, &past, order.Sent)
	overdueConfirmed := suite.seedOrder(organizationID, supplierID, 2, &earlier, order.Confirmed)
	suite.seedOrder(organizationID, supplierID, 3, &past, order.Draft)
	suite.seedReceivedOrder(organizationID, supplierID, 4, &past)
	suite.seedOrder(organizationID, supplierID, 5, &future, order.Sent)
	suite.seedOrder(organizationID, supplierID, 6, nil, order.Sent)

	query, err := queries.NewGetOverdueOrdersQuery(asOf)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Most overdue first
	suite.Equal(overdueConfirmed.ID(), result[0].ID)
	suite.Equal("confirmed", result[0].Status)
	suite.Equal(overdueSent.ID(), result[1].ID)
	suite.Equal("sent", result[1].Status)
	suite.Equal(organizationID, result[1].OrganizationID)
	suite.Equal("Acme Supplies", result[1].SupplierName)
	suite.True(past.Equal(result[1].ExpectedDeliveryDate))
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) TestHandle_SpansOrganizations() {
	asOf := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)
	past := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	org1 := kernel.NewUUID()
	org2 := kernel.NewUUID()
	suite.seedOrder(org1, kernel.NewUUID(), 1, &past, order.Sent)
	suite.seedOrder(org2, kernel.NewUUID(), 1, &past, order.Sent)

	query, err := queries.NewGetOverdueOrdersQuery(asOf)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2, "The reminder sweep covers every organization")
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) TestHandle_NoOverdueOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetOverdueOrdersQuery(time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOverdueOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

// seedOrder persists an order in the given status with an optional delivery date.
func (suite *GetOverdueOrdersQueryHandlerTestSuite) seedOrder(
	organizationID, supplierID kernel.UUID, seq int, deliveryDate *time.Time, status order.Status,
) *order.Order {
	price, err := kernel.MoneyFromString("5.00")
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 10, price)
	suite.Require().NoError(err)

	orderDate := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	aggregate, err := order.NewOrder(kernel.NewUUID(), organizationID, supplierID,
		order.FormatOrderNumber(2026, seq), orderDate, []*order.Item{item}, deliveryDate, "")
	suite.Require().NoError(err)

	if status != order.Draft {
		suite.Require().NoError(aggregate.ChangeStatus(order.Sent))
	}
	if status == order.Confirmed {
		suite.Require().NoError(aggregate.ChangeStatus(order.Confirmed))
	}

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) seedReceivedOrder(
	organizationID, supplierID kernel.UUID, seq int, deliveryDate *time.Time,
) *order.Order {
	aggregate := suite.seedOrder(organizationID, supplierID, seq, deliveryDate, order.Confirmed)

	err := aggregate.ApplyReceiptCoverage(order.Received)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Update(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *GetOverdueOrdersQueryHandlerTestSuite) seedSupplier(organizationID, id kernel.UUID, name string) {
	dto := catalogrepo.SupplierDTO{ID: id.Bytes(), OrganizationID: organizationID.Bytes(), Name: name, Active: true}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
}

func TestGetOverdueOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOverdueOrdersQueryHandlerTestSuite))
}
