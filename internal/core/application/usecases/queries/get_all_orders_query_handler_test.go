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

// mockAggregateTracker satisfies the repository's tracker dependency in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_changes").Error
	suite.Require().NoError(err)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_OrdersAreSortedNewestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)

	oldest := suite.createOrderAt(ctx, base)
	middle := suite.createOrderAt(ctx, base.Add(10*time.Minute))
	newest := suite.createOrderAt(ctx, base.Add(20*time.Minute))

	query := queries.NewGetAllOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(newest.ID(), result[0].ID)
	suite.Equal(middle.ID(), result[1].ID)
	suite.Equal(oldest.ID(), result[2].ID)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_IncludesItemsAndChanges() {
	ctx := context.Background()

	testOrder, err := order.NewOrder(kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	itemID := kernel.NewUUID()
	_, err = testOrder.AddItem(itemID, "Pad Thai")
	suite.Require().NoError(err)
	_, err = testOrder.AddItem(kernel.NewUUID(), "Spring Rolls")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.EditItem(itemID, "Pad See Ew", time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, testOrder))

	query := queries.NewGetAllOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	suite.Require().Len(result[0].Items, 2)
	suite.Equal("Pad See Ew", result[0].Items[0].Name)
	suite.Equal("pending", result[0].Items[0].Status)
	suite.Equal("Spring Rolls", result[0].Items[1].Name)

	suite.Require().Len(result[0].Changes, 1)
	suite.Equal("ITEM_EDITED", result[0].Changes[0].ChangeType)
	suite.Equal("Pad Thai", result[0].Changes[0].FromValue)
	suite.Require().NotNil(result[0].Changes[0].ToValue)
	suite.Equal("Pad See Ew", *result[0].Changes[0].ToValue)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllOrdersQuery constructor")
}

// createOrderAt persists an order with a fixed creation time via RestoreOrder.
func (suite *GetAllOrdersQueryHandlerTestSuite) createOrderAt(ctx context.Context, createdAt time.Time) *order.Order {
	testOrder, err := order.RestoreOrder(kernel.NewUUID(), createdAt, false, nil, nil, nil, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))
	return testOrder
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
