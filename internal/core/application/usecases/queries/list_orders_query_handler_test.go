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

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewListOrdersQueryHandler(db)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, suppliers").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewListOrdersQuery(kernel.NewUUID(), "", nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Empty(result.Orders)
	suite.Zero(result.Total)
	suite.Equal(1, result.Page)
	suite.Equal(20, result.PageSize)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_OrdersSortedByDateDescending() {
	organizationID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	suite.seedSupplier(organizationID, supplierID, "Acme Supplies")

	older := suite.seedOrder(organizationID, supplierID, 1, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	newer := suite.seedOrder(organizationID, supplierID, 2, time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewListOrdersQuery(organizationID, "", nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), result.Total)
	suite.Require().Len(result.Orders, 2)

	suite.Equal(newer.ID(), result.Orders[0].ID)
	suite.Equal(older.ID(), result.Orders[1].ID)
	suite.Equal("Acme Supplies", result.Orders[0].SupplierName)
	suite.Equal("draft", result.Orders[0].Status)
	suite.Equal(2, result.Orders[0].ItemCount)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StatusFilter() {
	organizationID := kernel.NewUUID()
	supplierID := kernel.NewUUID()

	draft := suite.seedOrder(organizationID, supplierID, 1, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	sent := suite.seedSentOrder(organizationID, supplierID, 2, time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewListOrdersQuery(organizationID, "sent", nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(sent.ID(), result.Orders[0].ID)
	suite.NotEqual(draft.ID(), result.Orders[0].ID)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_SupplierFilter() {
	organizationID := kernel.NewUUID()
	supplier1 := kernel.NewUUID()
	supplier2 := kernel.NewUUID()

	wanted := suite.seedOrder(organizationID, supplier1, 1, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	suite.seedOrder(organizationID, supplier2, 2, time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewListOrdersQuery(organizationID, "", &supplier1, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Require().Len(result.Orders, 1)
	suite.Equal(wanted.ID(), result.Orders[0].ID)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_Pagination() {
	organizationID := kernel.NewUUID()
	supplierID := kernel.NewUUID()

	for seq := 1; seq <= 5; seq++ {
		suite.seedOrder(organizationID, supplierID, seq,
			time.Date(2026, time.January, seq, 0, 0, 0, 0, time.UTC))
	}

	query, err := queries.NewListOrdersQuery(organizationID, "", nil, 3, 2)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(5), result.Total)
	suite.Require().Len(result.Orders, 1, "Last page should hold the remainder")
	suite.Equal(3, result.Page)
	suite.Equal(2, result.PageSize)

	// Oldest order lands on the last page
	suite.Equal(order.FormatOrderNumber(2026, 1), result.Orders[0].OrderNumber)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_OrganizationScope() {
	organizationID := kernel.NewUUID()
	suite.seedOrder(kernel.NewUUID(), kernel.NewUUID(), 1, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))

	query, err := queries.NewListOrdersQuery(organizationID, "", nil, 1, 20)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Orders, "Other organizations' orders should be invisible")
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Equal(queries.ListOrdersQueryResponse{}, result)
}

// seedOrder persists a draft order with two lines dated orderDate.
func (suite *ListOrdersQueryHandlerTestSuite) seedOrder(
	organizationID, supplierID kernel.UUID, seq int, orderDate time.Time,
) *order.Order {
	price, err := kernel.MoneyFromString("5.00")
	suite.Require().NoError(err)

	item1, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 10, price)
	suite.Require().NoError(err)
	item2, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, price)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(kernel.NewUUID(), organizationID, supplierID,
		order.FormatOrderNumber(2026, seq), orderDate, []*order.Item{item1, item2}, nil, "")
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *ListOrdersQueryHandlerTestSuite) seedSentOrder(
	organizationID, supplierID kernel.UUID, seq int, orderDate time.Time,
) *order.Order {
	aggregate := suite.seedOrder(organizationID, supplierID, seq, orderDate)

	err := aggregate.ChangeStatus(order.Sent)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err = repo.Update(context.Background(), aggregate)
	suite.Require().NoError(err)

	return aggregate
}

func (suite *ListOrdersQueryHandlerTestSuite) seedSupplier(organizationID, id kernel.UUID, name string) {
	dto := catalogrepo.SupplierDTO{ID: id.Bytes(), OrganizationID: organizationID.Bytes(), Name: name, Active: true}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
