package discountrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"orderops/internal/adapters/out/postgres/discountrepo"
	"orderops/internal/core/domain/model/discount"
	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DiscountRepositoryIntegrationTestSuite provides integration tests for the
// discount line and factory default repositories using PostgreSQL containers.
type DiscountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	lineRepo    *discountrepo.GormDiscountLineRepository
	defaultRepo *discountrepo.GormFactoryDefaultRepository
	tracker     *MockAggregateTracker
}

func (suite *DiscountRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&discountrepo.LineDTO{},
		&discountrepo.FactoryDefaultDTO{},
	))
}

func (suite *DiscountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE discount_lines").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE factory_defaults").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.lineRepo = discountrepo.NewGormDiscountLineRepository(suite.db, suite.tracker)
	suite.defaultRepo = discountrepo.NewGormFactoryDefaultRepository(suite.db)
}

func (suite *DiscountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DiscountRepositoryIntegrationTestSuite) createTestLine() *discount.Line {
	line, err := discount.NewLine(
		kernel.NewUUID(), "factory-1", "SKU-300",
		decimal.NewFromInt(1000), 10,
	)
	suite.Require().NoError(err)
	return line
}

func (suite *DiscountRepositoryIntegrationTestSuite) TestAddAndGet_UnsetDiscountStaysNull() {
	ctx := context.Background()
	line := suite.createTestLine()

	suite.tracker.On("TrackAggregate", line.ID(), line).Once()

	suite.Require().NoError(suite.lineRepo.Add(ctx, line))

	restored, err := suite.lineRepo.Get(ctx, line.ID())
	suite.Require().NoError(err)
	suite.False(restored.DiscountIsSet())
	suite.False(restored.OverrideFlag())
	suite.True(restored.BaseUnitPrice().Equal(decimal.NewFromInt(1000)))
}

func (suite *DiscountRepositoryIntegrationTestSuite) TestUpdate_PersistsDiscountEdit() {
	ctx := context.Background()
	line := suite.createTestLine()

	suite.tracker.On("TrackAggregate", line.ID(), mock.Anything)

	suite.Require().NoError(suite.lineRepo.Add(ctx, line))

	suite.Require().NoError(line.EditDiscount("100"))
	suite.Require().NoError(suite.lineRepo.Update(ctx, line))

	restored, err := suite.lineRepo.Get(ctx, line.ID())
	suite.Require().NoError(err)
	suite.True(restored.DiscountIsSet())
	suite.True(restored.DiscountAmt().Equal(decimal.NewFromInt(100)))
	suite.True(restored.UnitPrice().Equal(decimal.NewFromInt(900)))
	suite.True(restored.OverrideFlag())
}

func (suite *DiscountRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionError() {
	ctx := context.Background()
	line := suite.createTestLine()

	suite.tracker.On("TrackAggregate", line.ID(), mock.Anything)

	suite.Require().NoError(suite.lineRepo.Add(ctx, line))

	first, err := suite.lineRepo.Get(ctx, line.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(first.EditDiscount("100"))
	suite.Require().NoError(suite.lineRepo.Update(ctx, first))

	suite.Require().NoError(line.EditDiscount("200"))
	err = suite.lineRepo.Update(ctx, line)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *DiscountRepositoryIntegrationTestSuite) TestGetLinesWithUnsetDiscount_SkipsDecidedLines() {
	ctx := context.Background()
	undecided := suite.createTestLine()
	decided := suite.createTestLine()
	suite.Require().NoError(decided.EditDiscount("50"))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.lineRepo.Add(ctx, undecided))
	suite.Require().NoError(suite.lineRepo.Add(ctx, decided))

	lines, err := suite.lineRepo.GetLinesWithUnsetDiscount(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(lines, 1)
	suite.Equal(undecided.ID(), lines[0].ID())
}

func (suite *DiscountRepositoryIntegrationTestSuite) TestUpsertAndGet_FactoryDefault() {
	ctx := context.Background()

	setting, err := discount.NewFactoryDefault("factory-1", "SKU-300", decimal.NewFromInt(50))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.defaultRepo.Upsert(ctx, setting))

	// Upsert replaces the existing amount.
	replaced, err := discount.NewFactoryDefault("factory-1", "SKU-300", decimal.NewFromInt(75))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.defaultRepo.Upsert(ctx, replaced))

	restored, err := suite.defaultRepo.Get(ctx, "factory-1", "SKU-300")
	suite.Require().NoError(err)
	suite.True(restored.DiscountAmt().Equal(decimal.NewFromInt(75)))
}

func (suite *DiscountRepositoryIntegrationTestSuite) TestGet_FactoryDefault_NotFound() {
	_, err := suite.defaultRepo.Get(context.Background(), "factory-9", "SKU-999")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDiscountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DiscountRepositoryIntegrationTestSuite))
}
