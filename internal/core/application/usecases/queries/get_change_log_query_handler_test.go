package queries_test

import (
	"context"
	"testing"
	"time"

	"pos/internal/adapters/out/postgres/orderrepo"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetChangeLogQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetChangeLogQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetChangeLogQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetChangeLogQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetChangeLogQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetChangeLogQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_changes").Error
	suite.Require().NoError(err)
}

func (suite *GetChangeLogQueryHandlerTestSuite) TestHandle_OrderWithoutChanges_ReturnsEmptySlice() {
	ctx := context.Background()

	testOrder, err := order.NewOrder(kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	query, err := queries.NewGetChangeLogQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetChangeLogQueryHandlerTestSuite) TestHandle_VoidedItemHistorySurvives() {
	ctx := context.Background()

	testOrder, err := order.NewOrder(kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	itemID := kernel.NewUUID()
	_, err = testOrder.AddItem(itemID, "Pad Thai")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	// Rename, cook, then void: three log entries, oldest first, and the
	// item row itself is gone by the end.
	suite.Require().NoError(testOrder.EditItem(itemID, "Pad See Ew", time.Now().UTC()))
	suite.Require().NoError(testOrder.UpdateItemStatus(itemID, order.StatusCooking, time.Now().UTC()))
	suite.Require().NoError(testOrder.VoidItem(itemID, time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, testOrder))

	query, err := queries.NewGetChangeLogQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("ITEM_EDITED", result[0].ChangeType)
	suite.Equal("ITEM_STATUS_CHANGED", result[1].ChangeType)
	suite.Equal("ITEM_VOIDED", result[2].ChangeType)
	suite.Equal("Pad See Ew", result[2].FromValue, "void records the item's last name")
	suite.Nil(result[2].ToValue)
	suite.True(result[2].ItemID.IsEqual(itemID))
}

func (suite *GetChangeLogQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetChangeLogQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Nil(result)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetChangeLogQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetChangeLogQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetChangeLogQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetChangeLogQueryHandlerTestSuite))
}
