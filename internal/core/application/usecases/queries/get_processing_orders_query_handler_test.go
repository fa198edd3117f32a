package queries_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetProcessingOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetProcessingOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetProcessingOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetProcessingOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetProcessingOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetProcessingOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetProcessingOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetProcessingOrdersQuery(time.Now().UTC(), 45)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetProcessingOrdersQueryHandlerTestSuite) TestHandle_SkipsOrdersNotInProcessing() {
	ctx := context.Background()
	now := time.Now().UTC()

	pendingOrder := suite.createOrder(15)
	suite.Require().NoError(suite.orderRepo.Add(ctx, pendingOrder))

	servedOrder := suite.createOrder(15)
	suite.Require().NoError(servedOrder.StartProcessing(now.Add(-time.Hour)))
	suite.Require().NoError(servedOrder.Complete())
	suite.Require().NoError(servedOrder.Serve())
	suite.Require().NoError(suite.orderRepo.Add(ctx, servedOrder))

	query, err := queries.NewGetProcessingOrdersQuery(now, 45)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetProcessingOrdersQueryHandlerTestSuite) TestHandle_ComputesTimingAndOverdueFlag() {
	ctx := context.Background()
	now := time.Now().UTC()

	// Cooking for 50 of its 15 minutes, past the 45 minute threshold
	overdueOrder := suite.createOrder(15)
	suite.Require().NoError(overdueOrder.StartProcessing(now.Add(-50*time.Minute - time.Second)))
	suite.Require().NoError(suite.orderRepo.Add(ctx, overdueOrder))

	// Cooking for 10 of its 15 minutes
	onTimeOrder := suite.createOrder(15)
	suite.Require().NoError(onTimeOrder.StartProcessing(now.Add(-10*time.Minute - time.Second)))
	suite.Require().NoError(suite.orderRepo.Add(ctx, onTimeOrder))

	query, err := queries.NewGetProcessingOrdersQuery(now, 45)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Oldest cooking order first
	suite.Equal(overdueOrder.ID(), result[0].ID)
	suite.Equal(50, result[0].ElapsedMinutes)
	suite.Zero(result[0].RemainingMinutes)
	suite.True(result[0].IsOverdue)

	suite.Equal(onTimeOrder.ID(), result[1].ID)
	suite.Equal(10, result[1].ElapsedMinutes)
	suite.Equal(5, result[1].RemainingMinutes)
	suite.False(result[1].IsOverdue)
}

func (suite *GetProcessingOrdersQueryHandlerTestSuite) TestHandle_CarriesChefAssignment() {
	ctx := context.Background()
	now := time.Now().UTC()

	chefID := kernel.NewUUID()
	assignedOrder := suite.createOrder(15)
	suite.Require().NoError(assignedOrder.AssignChef(chefID))
	suite.Require().NoError(assignedOrder.StartProcessing(now.Add(-5 * time.Minute)))
	suite.Require().NoError(suite.orderRepo.Add(ctx, assignedOrder))

	query, err := queries.NewGetProcessingOrdersQuery(now, 45)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Require().NotNil(result[0].ChefID)
	suite.Equal(chefID, *result[0].ChefID)
	suite.Equal(assignedOrder.Reference().String(), result[0].Reference)
}

func (suite *GetProcessingOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetProcessingOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetProcessingOrdersQuery constructor")
}

func (suite *GetProcessingOrdersQueryHandlerTestSuite) createOrder(preparationTime int) *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 9.5, preparationTime, 1)
	suite.Require().NoError(err)

	customer, err := order.NewCustomerInfo("Alice", "555-0101", "12 Baker St", 0)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderReference(),
		order.TypeTakeaway,
		[]order.LineItem{item},
		customer,
		nil,
		"",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestGetProcessingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProcessingOrdersQueryHandlerTestSuite))
}
