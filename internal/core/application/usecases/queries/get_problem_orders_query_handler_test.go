package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetProblemOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetProblemOrdersQueryHandler
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *GetProblemOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))

	suite.handler = queries.NewGetProblemOrdersQueryHandler(db)
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *GetProblemOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *GetProblemOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetProblemOrdersQueryHandlerTestSuite) seedOrderWithStatus(status order.Status) *order.Order {
	item, err := order.RestoreOrderItem(
		kernel.NewUUID(), kernel.NewUUID(), 1, 999,
		order.AvailabilityMissing, order.RefundMarkNone,
	)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewLocality("utrecht"),
		status, warehouse.General, []*order.OrderItem{item}, now, now,
	)
	suite.Require().NoError(err)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	return aggregate
}

func (suite *GetProblemOrdersQueryHandlerTestSuite) TestHandle_ReturnsParkedOrdersOnly() {
	ctx := context.Background()

	problemOrder := suite.seedOrderWithStatus(order.Problem)
	waitingOrder := suite.seedOrderWithStatus(order.Waiting)
	suite.seedOrderWithStatus(order.Collecting)
	suite.seedOrderWithStatus(order.Completed)

	parked, err := suite.handler.Handle(ctx, queries.NewGetProblemOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(parked, 2)

	found := map[string]order.Status{}
	for _, row := range parked {
		found[row.ID.String()] = row.Status
	}
	suite.Equal(order.Problem, found[problemOrder.ID().String()])
	suite.Equal(order.Waiting, found[waitingOrder.ID().String()])
}

func (suite *GetProblemOrdersQueryHandlerTestSuite) TestHandle_EmptyWhenNothingParked() {
	ctx := context.Background()

	suite.seedOrderWithStatus(order.Collecting)

	parked, err := suite.handler.Handle(ctx, queries.NewGetProblemOrdersQuery())
	suite.Require().NoError(err)
	suite.Empty(parked)
}

func TestGetProblemOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetProblemOrdersQueryHandlerTestSuite))
}
