package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orderops/internal/adapters/out/postgres/backorderrepo"
	"orderops/internal/core/application/usecases/queries"
	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/kernel"
)

type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOpenBackordersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOpenBackordersQueryHandler
	repo      *backorderrepo.GormBackorderRepository
}

func (suite *GetOpenBackordersQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&backorderrepo.LineDTO{}))

	suite.handler = queries.NewGetOpenBackordersQueryHandler(db)
	suite.repo = backorderrepo.NewGormBackorderRepository(db, mockAggregateTracker{})
}

func (suite *GetOpenBackordersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOpenBackordersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE backorder_lines").Error)
}

func (suite *GetOpenBackordersQueryHandlerTestSuite) addLine(sellerID string, rank int) *backorder.Line {
	line, err := backorder.NewLine(kernel.NewUUID(), sellerID, "SKU-100", 10, 2, rank)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), line))
	return line
}

func (suite *GetOpenBackordersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetOpenBackordersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOpenBackordersQueryHandlerTestSuite) TestHandle_ExcludesFullyShippedLines() {
	ctx := context.Background()
	open := suite.addLine("seller-1", 1)

	shipped := suite.addLine("seller-1", 2)
	suite.Require().NoError(shipped.Ship("j.tanaka"))
	suite.Require().NoError(suite.repo.Update(ctx, shipped))

	query := queries.NewGetOpenBackordersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(open.ID(), result[0].ID)
	suite.Equal(8, result[0].RemainingQty)
	suite.Equal(backorder.Pending, result[0].Status)
}

func (suite *GetOpenBackordersQueryHandlerTestSuite) TestHandle_GroupsBySellerInRankOrder() {
	ctx := context.Background()
	b2 := suite.addLine("seller-b", 2)
	a1 := suite.addLine("seller-a", 1)
	b1 := suite.addLine("seller-b", 1)

	query := queries.NewGetOpenBackordersQuery()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(a1.ID(), result[0].ID)
	suite.Equal(b1.ID(), result[1].ID)
	suite.Equal(b2.ID(), result[2].ID)
}

func (suite *GetOpenBackordersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOpenBackordersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOpenBackordersQuery constructor")
}

func TestGetOpenBackordersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOpenBackordersQueryHandlerTestSuite))
}
