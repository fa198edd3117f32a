package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip_PreservesSnapshot() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.Reference(), retrieved.Reference())
	suite.Equal(order.TypeDineIn, retrieved.Type())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(testOrder.TotalPrice(), retrieved.TotalPrice())
	suite.Equal(testOrder.TotalPreparationTime(), retrieved.TotalPreparationTime())
	suite.Require().NotNil(retrieved.TableNumber())
	suite.Equal(1, *retrieved.TableNumber())
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal("Margherita", retrieved.Items()[0].Name())
	suite.Equal(2, retrieved.Items()[0].Quantity())
	suite.Equal("Alice", retrieved.Customer().Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsChefAssignment() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	chefID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignChef(chefID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Chef())
	suite.Equal(chefID, *retrieved.Chef())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_WinsTheSwap() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.StartProcessing(time.Now().UTC()))

	err := suite.repository.UpdateStatusFrom(ctx, testOrder, order.Pending)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.Status())
	suite.NotNil(retrieved.ProcessingStartedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_LosesTheSwap() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Another writer moves the order first
	suite.Require().NoError(testOrder.StartProcessing(time.Now().UTC()))
	suite.Require().NoError(suite.repository.UpdateStatusFrom(ctx, testOrder, order.Pending))

	// The stale writer still expects Pending
	err := suite.repository.UpdateStatusFrom(ctx, testOrder, order.Pending)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, order.ErrAlreadyTransitioned)

	// State keeps the winner's write
	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusFrom_NotFound() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	err := suite.repository.UpdateStatusFrom(ctx, testOrder, order.Pending)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInProcessingStatus_FiltersByStatus() {
	ctx := context.Background()

	pendingOrder := suite.createTestOrder()
	processingOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, pendingOrder))
	suite.Require().NoError(suite.repository.Add(ctx, processingOrder))

	suite.Require().NoError(processingOrder.StartProcessing(time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, processingOrder))

	orders, err := suite.repository.GetAllInProcessingStatus(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal(processingOrder.ID(), orders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetActiveByChef_FiltersByChefAndStatus() {
	ctx := context.Background()

	chefID := kernel.NewUUID()
	otherChefID := kernel.NewUUID()

	assignedActive := suite.createTestOrder()
	assignedServed := suite.createTestOrder()
	otherChefsOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, assignedActive))
	suite.Require().NoError(suite.repository.Add(ctx, assignedServed))
	suite.Require().NoError(suite.repository.Add(ctx, otherChefsOrder))

	suite.Require().NoError(assignedActive.AssignChef(chefID))
	suite.Require().NoError(suite.repository.Update(ctx, assignedActive))

	now := time.Now().UTC()
	suite.Require().NoError(assignedServed.AssignChef(chefID))
	suite.Require().NoError(assignedServed.StartProcessing(now))
	suite.Require().NoError(assignedServed.Complete())
	suite.Require().NoError(assignedServed.Serve())
	suite.Require().NoError(suite.repository.Update(ctx, assignedServed))

	suite.Require().NoError(otherChefsOrder.AssignChef(otherChefID))
	suite.Require().NoError(suite.repository.Update(ctx, otherChefsOrder))

	orders, err := suite.repository.GetActiveByChef(ctx, chefID)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal(assignedActive.ID(), orders[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Delete(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.assertOrderCount(0)

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Zero(itemCount, "Line items should be removed with their order")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestOrder creates a valid dine-in order for testing purposes.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 9.5, 15, 2)
	suite.Require().NoError(err)

	customer, err := order.NewCustomerInfo("Alice", "555-0101", "", 2)
	suite.Require().NoError(err)

	tableNumber := 1
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderReference(),
		order.TypeDineIn,
		[]order.LineItem{item},
		customer,
		&tableNumber,
		"extra basil",
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
