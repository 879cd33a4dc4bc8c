package queries_test

import (
	"context"
	"testing"
	"time"

	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetKitchenOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetKitchenOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &orderrepo.ChangeDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetKitchenOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_changes").Error
	suite.Require().NoError(err)
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TestHandle_UnsentOrdersAreExcluded() {
	ctx := context.Background()

	suite.createOrder(ctx, false, nil)
	sent := time.Now().UTC()
	sentOrder := suite.createOrder(ctx, true, &sent)

	query := queries.NewGetKitchenOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(sentOrder.ID(), result[0].ID)
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TestHandle_OrdersComeBackOldestHandoffFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	secondSent := base.Add(10 * time.Minute)
	second := suite.createOrder(ctx, true, &secondSent)
	firstSent := base
	first := suite.createOrder(ctx, true, &firstSent)

	query := queries.NewGetKitchenOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(first.ID(), result[0].ID, "earliest handoff must come first")
	suite.Equal(second.ID(), result[1].ID)
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TestHandle_UnseenUpdatesFlagLifecycle() {
	ctx := context.Background()

	// A sent order with no changes yet: nothing to see.
	testOrder, err := order.NewOrder(kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	itemID := kernel.NewUUID()
	_, err = testOrder.AddItem(itemID, "Pad Thai")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.SendToKitchen(time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	result, err := suite.handler.Handle(ctx, queries.NewGetKitchenOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.False(result[0].HasUnseenUpdates, "an order without changes has nothing unseen")

	// An edit lands: the kitchen has not acknowledged it.
	suite.Require().NoError(testOrder.EditItem(itemID, "Pad See Ew", time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, testOrder))

	result, err = suite.handler.Handle(ctx, queries.NewGetKitchenOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].HasUnseenUpdates, "a change after handoff must surface as unseen")

	// The kitchen acknowledges: the flag clears.
	testOrder.MarkKitchenViewed(time.Now().UTC())
	suite.Require().NoError(suite.orderRepo.Update(ctx, testOrder))

	result, err = suite.handler.Handle(ctx, queries.NewGetKitchenOrdersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.False(result[0].HasUnseenUpdates, "acknowledged changes stop counting as unseen")
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetKitchenOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
}

// createOrder persists an order in the requested sent state via RestoreOrder.
func (suite *GetKitchenOrdersQueryHandlerTestSuite) createOrder(
	ctx context.Context, sentToKitchen bool, sentAt *time.Time,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), time.Now().UTC(), sentToKitchen, sentAt, nil, nil, nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))
	return testOrder
}

func TestGetKitchenOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetKitchenOrdersQueryHandlerTestSuite))
}
