package queries_test

import (
	"context"
	"testing"
	"time"

	"pedidos/internal/adapters/out/postgres/orderrepo"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repository tracker without recording anything.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewListOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_OrdersExist_ReturnsSummariesSortedByCode() {
	ctx := context.Background()

	suite.addOrder(ctx, "PED-2024-003", order.Quote)
	suite.addOrder(ctx, "PED-2024-001", order.Quote)
	suite.addOrder(ctx, "PED-2024-002", order.Dispatched)

	query := queries.NewListOrdersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("PED-2024-001", result[0].Code)
	suite.Equal("PED-2024-002", result[1].Code)
	suite.Equal("PED-2024-003", result[2].Code)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StateFilter_ReturnsOnlyMatchingOrders() {
	ctx := context.Background()

	suite.addOrder(ctx, "PED-2024-001", order.Quote)
	suite.addOrder(ctx, "PED-2024-002", order.Dispatched)
	suite.addOrder(ctx, "PED-2024-003", order.Dispatched)

	query := queries.NewListOrdersQuery().WithState("DISPATCHED")

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	for _, r := range result {
		suite.Equal("DISPATCHED", r.State)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StateFilterWithoutMatches_ReturnsEmptySlice() {
	ctx := context.Background()

	suite.addOrder(ctx, "PED-2024-001", order.Quote)

	query := queries.NewListOrdersQuery().WithState("CANCELLED")

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_MapsAllSummaryFields() {
	ctx := context.Background()

	id := kernel.NewUUID()
	items := []order.LineItem{{ProductID: "SKU-100", Quantity: 2}}
	testOrder, err := order.NewOrder(id, "PED-2024-001", "ACME Corp", order.Deferred, items)
	suite.Require().NoError(err)
	testOrder.SetWarehouse("Central")
	testOrder.SetTotalValue(decimal.RequireFromString("125.50"))
	deliveryDate := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	testOrder.SetDeliveryDate(&deliveryDate)
	testOrder.BumpVersion()
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	result, err := suite.handler.Handle(ctx, queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	summary := result[0]
	suite.Equal(id, summary.ID)
	suite.Equal("PED-2024-001", summary.Code)
	suite.Equal("ACME Corp", summary.Customer)
	suite.Equal("Central", summary.Warehouse)
	suite.Equal("DEFERRED", summary.OrderType)
	suite.Equal("QUOTE", summary.State)
	suite.Equal(1, summary.Version)
	suite.True(summary.TotalValue.Equal(decimal.RequireFromString("125.50")))
	suite.Require().NotNil(summary.DeliveryDate)
	suite.True(summary.DeliveryDate.Equal(deliveryDate))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func (suite *ListOrdersQueryHandlerTestSuite) addOrder(ctx context.Context, code string, state order.Status) {
	items := []order.LineItem{{ProductID: "SKU-100", Quantity: 1}}
	testOrder, err := order.NewOrder(kernel.NewUUID(), code, "ACME Corp", order.Immediate, items)
	suite.Require().NoError(err)
	if state != order.Quote {
		suite.Require().NoError(testOrder.TransitionTo(state, time.Now().UTC()))
	}
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
