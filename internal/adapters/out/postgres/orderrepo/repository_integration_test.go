package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/orderrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// nopTracker ignores tracking; used where the tracked set is irrelevant.
type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior,
// in particular the atomicity of conditional updates under concurrency.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"pallet of ceramics", 10, 70, "fragile")
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(testOrder *order.Order) {
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testOrder))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.addOrder(testOrder)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testOrder.ID()))
	suite.True(loaded.ClientID().IsEqual(testOrder.ClientID()))
	suite.Equal(order.StatusPending, loaded.Status())
	suite.InDelta(testOrder.TotalPrice(), loaded.TotalPrice(), 0.001)
	suite.Nil(loaded.Carrier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIf_ClaimApplied() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.addOrder(testOrder)

	carrierID := kernel.NewUUID()
	applied, err := suite.repository.UpdateIf(ctx, testOrder.ID(),
		order.Expectation{Status: order.StatusPending, CarrierIsNull: true},
		order.Change{Status: order.StatusAccepted, CarrierID: &carrierID},
	)
	suite.Require().NoError(err)
	suite.True(applied)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusAccepted, loaded.Status())
	suite.Require().NotNil(loaded.Carrier())
	suite.True(loaded.Carrier().IsEqual(carrierID))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIf_StaleExpectation_NotApplied() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.addOrder(testOrder)

	firstCarrier := kernel.NewUUID()
	applied, err := suite.repository.UpdateIf(ctx, testOrder.ID(),
		order.Expectation{Status: order.StatusPending, CarrierIsNull: true},
		order.Change{Status: order.StatusAccepted, CarrierID: &firstCarrier},
	)
	suite.Require().NoError(err)
	suite.True(applied)

	// Second claim against the same expectation must leave the row untouched.
	secondCarrier := kernel.NewUUID()
	applied, err = suite.repository.UpdateIf(ctx, testOrder.ID(),
		order.Expectation{Status: order.StatusPending, CarrierIsNull: true},
		order.Change{Status: order.StatusAccepted, CarrierID: &secondCarrier},
	)
	suite.Require().NoError(err)
	suite.False(applied)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(loaded.Carrier().IsEqual(firstCarrier))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIf_CarrierGuard() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.addOrder(testOrder)

	carrierID := kernel.NewUUID()
	applied, err := suite.repository.UpdateIf(ctx, testOrder.ID(),
		order.Expectation{Status: order.StatusPending, CarrierIsNull: true},
		order.Change{Status: order.StatusAccepted, CarrierID: &carrierID},
	)
	suite.Require().NoError(err)
	suite.True(applied)

	// A different carrier does not match the assignment guard.
	stranger := kernel.NewUUID()
	now := time.Now().UTC()
	applied, err = suite.repository.UpdateIf(ctx, testOrder.ID(),
		order.Expectation{Status: order.StatusAccepted, CarrierID: &stranger},
		order.Change{Status: order.StatusInTransit, PickupDate: &now},
	)
	suite.Require().NoError(err)
	suite.False(applied)

	// The assigned carrier does.
	applied, err = suite.repository.UpdateIf(ctx, testOrder.ID(),
		order.Expectation{Status: order.StatusAccepted, CarrierID: &carrierID},
		order.Change{Status: order.StatusInTransit, PickupDate: &now},
	)
	suite.Require().NoError(err)
	suite.True(applied)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusInTransit, loaded.Status())
	suite.Require().NotNil(loaded.PickupDate())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIf_UnknownOrder_NotApplied() {
	carrierID := kernel.NewUUID()
	applied, err := suite.repository.UpdateIf(context.Background(), kernel.NewUUID(),
		order.Expectation{Status: order.StatusPending, CarrierIsNull: true},
		order.Change{Status: order.StatusAccepted, CarrierID: &carrierID},
	)
	suite.Require().NoError(err)
	suite.False(applied)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateIf_ConcurrentClaims_ExactlyOneWins() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.addOrder(testOrder)

	const claimants = 16
	repo := orderrepo.NewGormOrderRepository(suite.db, nopTracker{})

	var wg sync.WaitGroup
	results := make([]bool, claimants)
	claimErrs := make([]error, claimants)

	for i := range claimants {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			carrierID := kernel.NewUUID()
			results[i], claimErrs[i] = repo.UpdateIf(ctx, testOrder.ID(),
				order.Expectation{Status: order.StatusPending, CarrierIsNull: true},
				order.Change{Status: order.StatusAccepted, CarrierID: &carrierID},
			)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := range claimants {
		suite.Require().NoError(claimErrs[i])
		if results[i] {
			winners++
		}
	}
	suite.Equal(1, winners)

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusAccepted, loaded.Status())
	suite.Require().NotNil(loaded.Carrier())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
