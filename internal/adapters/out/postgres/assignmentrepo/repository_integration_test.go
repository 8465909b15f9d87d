package assignmentrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"foodorder/internal/adapters/out/postgres/assignmentrepo"
	"foodorder/internal/core/domain/model/assignment"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// AssignmentRepositoryIntegrationTestSuite provides integration tests for
// GormAssignmentRepository, including the concurrent claim race.
type AssignmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *assignmentrepo.GormAssignmentRepository
	tracker    *MockAggregateTracker
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&assignmentrepo.AssignmentDTO{}))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE assignments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = assignmentrepo.NewGormAssignmentRepository(suite.db, suite.tracker)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AssignmentRepositoryIntegrationTestSuite) addAssignment(orderID kernel.UUID) *assignment.DeliveryAssignment {
	a, err := assignment.NewDeliveryAssignment(kernel.NewUUID(), orderID)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", a.ID(), a).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), a))
	return a
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestClaimIfUnclaimed_FirstClaimWins() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	suite.addAssignment(orderID)

	err := suite.repository.ClaimIfUnclaimed(ctx, orderID, courierID)
	suite.Require().NoError(err)

	claimed, err := suite.repository.GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(claimed.IsClaimed())
	suite.Require().NotNil(claimed.Courier())
	suite.True(claimed.Courier().IsEqual(courierID))
	suite.NotNil(claimed.ClaimedAt())
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestClaimIfUnclaimed_SecondClaimConflicts() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	winner := kernel.NewUUID()
	loser := kernel.NewUUID()
	suite.addAssignment(orderID)

	suite.Require().NoError(suite.repository.ClaimIfUnclaimed(ctx, orderID, winner))

	err := suite.repository.ClaimIfUnclaimed(ctx, orderID, loser)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	claimed, err := suite.repository.GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.True(claimed.Courier().IsEqual(winner))
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestClaimIfUnclaimed_MissingAssignment_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.ClaimIfUnclaimed(ctx, kernel.NewUUID(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentRepositoryIntegrationTestSuite) TestClaimIfUnclaimed_ConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	suite.addAssignment(orderID)

	const couriers = 8
	var wg sync.WaitGroup
	results := make(chan error, couriers)

	for i := 0; i < couriers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- suite.repository.ClaimIfUnclaimed(ctx, orderID, kernel.NewUUID())
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			suite.Require().ErrorIs(err, errs.ErrConflict)
			conflicts++
		}
	}

	suite.Equal(1, wins)
	suite.Equal(couriers-1, conflicts)
}

func TestAssignmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRepositoryIntegrationTestSuite))
}
