package tablerepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"kitchen/internal/adapters/out/postgres/tablerepo"
	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TableRepositoryIntegrationTestSuite provides integration tests for
// TableRepository using PostgreSQL containers to verify that the reservation
// flag flips exactly once under contention.
type TableRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tablerepo.GormTableRepository
}

func (suite *TableRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&tablerepo.TableDTO{}))
}

func (suite *TableRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tables").Error)

	// Create fresh repository for each test
	suite.repository = tablerepo.NewGormTableRepository(suite.db)
}

func (suite *TableRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TableRepositoryIntegrationTestSuite) TestAdd_ValidTable_Success() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTable(1, 4)))

	retrieved, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(1, retrieved.Number())
	suite.Equal(4, retrieved.Capacity())
	suite.False(retrieved.IsReserved())
	suite.Nil(retrieved.ReservedBy())
}

func (suite *TableRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, 42)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TableRepositoryIntegrationTestSuite) TestReserve_StoresParty() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTable(1, 4)))

	party := table.Party{CustomerName: "Alice", PhoneNumber: "555-0101", PartySize: 2}
	suite.Require().NoError(suite.repository.Reserve(ctx, 1, party))

	retrieved, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.True(retrieved.IsReserved())
	suite.Require().NotNil(retrieved.ReservedBy())
	suite.Equal("Alice", retrieved.ReservedBy().CustomerName)
	suite.Equal("555-0101", retrieved.ReservedBy().PhoneNumber)
	suite.Equal(2, retrieved.ReservedBy().PartySize)
}

func (suite *TableRepositoryIntegrationTestSuite) TestReserve_ReservedTableKeepsOriginalParty() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTable(1, 4)))

	first := table.Party{CustomerName: "Alice", PhoneNumber: "555-0101", PartySize: 2}
	suite.Require().NoError(suite.repository.Reserve(ctx, 1, first))

	second := table.Party{CustomerName: "Bob", PhoneNumber: "555-0202", PartySize: 3}
	err := suite.repository.Reserve(ctx, 1, second)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, table.ErrAlreadyReserved)

	retrieved, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.ReservedBy())
	suite.Equal("Alice", retrieved.ReservedBy().CustomerName)
}

func (suite *TableRepositoryIntegrationTestSuite) TestReserve_UnknownTable() {
	ctx := context.Background()

	err := suite.repository.Reserve(ctx, 42, table.Party{CustomerName: "Alice", PhoneNumber: "555-0101", PartySize: 2})

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *TableRepositoryIntegrationTestSuite) TestReserve_ConcurrentWritersOnlyOneWins() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTable(1, 4)))

	parties := []table.Party{
		{CustomerName: "Alice", PhoneNumber: "555-0101", PartySize: 2},
		{CustomerName: "Bob", PhoneNumber: "555-0202", PartySize: 3},
	}

	var wg sync.WaitGroup
	results := make([]error, len(parties))
	for i, party := range parties {
		wg.Add(1)
		go func(slot int, p table.Party) {
			defer wg.Done()
			results[slot] = suite.repository.Reserve(ctx, 1, p)
		}(i, party)
	}
	wg.Wait()

	failures := 0
	winner := -1
	for i, err := range results {
		if err != nil {
			suite.Require().ErrorIs(err, table.ErrAlreadyReserved)
			failures++
		} else {
			winner = i
		}
	}
	suite.Equal(1, failures, "Exactly one reservation should lose")
	suite.Require().GreaterOrEqual(winner, 0)

	retrieved, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.True(retrieved.IsReserved())
	suite.Require().NotNil(retrieved.ReservedBy())
	suite.Equal(parties[winner].CustomerName, retrieved.ReservedBy().CustomerName)
}

func (suite *TableRepositoryIntegrationTestSuite) TestRelease_ClearsReservation() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTable(1, 4)))
	party := table.Party{CustomerName: "Alice", PhoneNumber: "555-0101", PartySize: 2}
	suite.Require().NoError(suite.repository.Reserve(ctx, 1, party))

	suite.Require().NoError(suite.repository.Release(ctx, 1))

	retrieved, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.False(retrieved.IsReserved())
	suite.Nil(retrieved.ReservedBy())

	// Releasing an already free table changes nothing
	suite.Require().NoError(suite.repository.Release(ctx, 1))
}

func (suite *TableRepositoryIntegrationTestSuite) TestUpdate_PersistsAttributes() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTable(1, 4)))

	updated, err := table.NewTable(1, 6, "Window booth")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, updated))

	retrieved, err := suite.repository.Get(ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(6, retrieved.Capacity())
	suite.Equal("Window booth", retrieved.Name())
}

func (suite *TableRepositoryIntegrationTestSuite) TestDelete_ShiftsHigherNumbersDown() {
	ctx := context.Background()

	for number := 1; number <= 3; number++ {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestTable(number, 4)))
	}

	suite.Require().NoError(suite.repository.Delete(ctx, 2))

	tables, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(tables, 2)
	suite.Equal(1, tables[0].Number())
	suite.Equal(2, tables[1].Number())
}

func (suite *TableRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, 42)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestTable creates a valid unreserved table for testing purposes.
func (suite *TableRepositoryIntegrationTestSuite) createTestTable(number, capacity int) *table.Table {
	t, err := table.NewTable(number, capacity, "")
	suite.Require().NoError(err)
	return t
}

func TestTableRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TableRepositoryIntegrationTestSuite))
}
