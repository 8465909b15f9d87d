package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/assignmentrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/assignment"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetClaimableOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	handler        queries.GetClaimableOrdersQueryHandler
	orderRepo      *orderrepo.GormOrderRepository
	assignmentRepo *assignmentrepo.GormAssignmentRepository
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &assignmentrepo.AssignmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetClaimableOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.assignmentRepo = assignmentrepo.NewGormAssignmentRepository(db, &mockAggregateTracker{})
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE assignments, orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetClaimableOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_UnclaimedAssignments_ReturnsOrderDetails() {
	o := suite.dispatchOrder("Pad Thai", "45.50")

	query := queries.NewGetClaimableOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(o.ID(), result[0].OrderID)
	suite.Equal(o.MerchantID(), result[0].MerchantID)
	suite.Equal("Pad Thai", result[0].ItemName)
	suite.Equal("45.50", result[0].Price)
	suite.False(result[0].DispatchedAt.IsZero())
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_ClaimedAssignments_AreExcluded() {
	unclaimed := suite.dispatchOrder("Green Curry", "30.00")
	claimed := suite.dispatchOrder("Spring Rolls", "12.00")

	courierID := kernel.NewUUID()
	err := suite.assignmentRepo.ClaimIfUnclaimed(context.Background(), claimed.ID(), courierID)
	suite.Require().NoError(err)

	query := queries.NewGetClaimableOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(unclaimed.ID(), result[0].OrderID)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_MultipleAssignments_OldestDispatchFirst() {
	first := suite.dispatchOrder("Ramen", "22.00")
	time.Sleep(10 * time.Millisecond)
	second := suite.dispatchOrder("Gyoza", "9.00")

	query := queries.NewGetClaimableOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].OrderID)
	suite.Equal(second.ID(), result[1].OrderID)
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetClaimableOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetClaimableOrdersQuery constructor")
}

func (suite *GetClaimableOrdersQueryHandlerTestSuite) dispatchOrder(itemName, price string) *order.Order {
	ctx := context.Background()

	money, err := kernel.NewMoneyFromString(price)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		itemName, money,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Confirm())
	suite.Require().NoError(o.Decide(true))
	suite.Require().NoError(o.Dispatch())
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	a, err := assignment.NewDeliveryAssignment(kernel.NewUUID(), o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.assignmentRepo.Add(ctx, a))

	return o
}

// mockAggregateTracker satisfies the repositories' tracker dependency.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

func TestGetClaimableOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetClaimableOrdersQueryHandlerTestSuite))
}
