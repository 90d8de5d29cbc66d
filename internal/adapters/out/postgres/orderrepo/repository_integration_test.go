package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_Get_RoundTrip() {
	ctx := context.Background()
	original := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC))

	suite.Require().NoError(suite.repository.Add(ctx, original))

	got, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(original.ID()))
	suite.True(got.CustomerID().IsEqual(original.CustomerID()))
	suite.True(got.StoreID().IsEqual(original.StoreID()))
	suite.True(original.TotalPrice().Equal(got.TotalPrice()))
	suite.Equal("ring twice", got.Note())
	suite.Equal(order.Pending, got.Status())
	suite.Nil(got.DecidedAt())
	suite.Require().Len(got.Items(), 2)
	suite.Equal("mug", got.Items()[0].ProductRef())
	suite.True(decimal.RequireFromString("12.50").Equal(got.Items()[0].UnitPrice()))
	suite.WithinDuration(original.CreatedAt(), got.CreatedAt(), time.Millisecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFind_ScopesAndDateRange() {
	ctx := context.Background()
	customer := kernel.NewUUID()
	storeA := kernel.NewUUID()
	storeB := kernel.NewUUID()

	early := suite.newOrder(customer, storeA, time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC))
	lateDay := suite.newOrder(customer, storeB, time.Date(2024, 1, 10, 23, 59, 59, 0, time.UTC))
	nextDay := suite.newOrder(customer, storeA, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC))
	otherCustomer := suite.newOrder(kernel.NewUUID(), storeA, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	for _, o := range []*order.Order{early, lateDay, nextDay, otherCustomer} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	suite.Run("customer scope newest first", func() {
		found, err := suite.repository.Find(ctx, ports.OrderFilter{CustomerID: &customer})
		suite.Require().NoError(err)
		suite.Require().Len(found, 3)
		suite.True(found[0].ID().IsEqual(nextDay.ID()))
		suite.True(found[2].ID().IsEqual(early.ID()))
	})

	suite.Run("store scope", func() {
		found, err := suite.repository.Find(ctx, ports.OrderFilter{StoreID: &storeA})
		suite.Require().NoError(err)
		suite.Len(found, 3)
	})

	suite.Run("inclusive end of day", func() {
		to := time.Date(2024, 1, 10, 23, 59, 59, 999000000, time.UTC)
		found, err := suite.repository.Find(ctx, ports.OrderFilter{CustomerID: &customer, To: &to})
		suite.Require().NoError(err)
		suite.Require().Len(found, 2)
		suite.True(found[0].ID().IsEqual(lateDay.ID()))
	})

	suite.Run("status filter", func() {
		confirmed := order.Confirmed
		found, err := suite.repository.Find(ctx, ports.OrderFilter{Status: &confirmed})
		suite.Require().NoError(err)
		suite.Empty(found)
	})

	suite.Run("earliest in scope", func() {
		got, err := suite.repository.FindEarliest(ctx, ports.OrderFilter{CustomerID: &customer})
		suite.Require().NoError(err)
		suite.True(got.ID().IsEqual(early.ID()))
	})

	suite.Run("earliest with nothing in scope", func() {
		nobody := kernel.NewUUID()
		_, err := suite.repository.FindEarliest(ctx, ports.OrderFilter{CustomerID: &nobody})
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateDecision_PersistsConfirmation() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Confirm("3 days", time.Now()))
	suite.Require().NoError(suite.repository.UpdateDecision(ctx, o, order.Pending))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, got.Status())
	suite.Equal("3 days", got.EstimatedDeliveryTime())
	suite.NotNil(got.DecidedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateDecision_PersistsDenial() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Deny(time.Now()))
	suite.Require().NoError(suite.repository.UpdateDecision(ctx, o, order.Pending))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Denied, got.Status())
	suite.Empty(got.EstimatedDeliveryTime())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateDecision_ConcurrentConfirmAndDeny() {
	ctx := context.Background()
	o := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	confirmCopy, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	denyCopy, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(confirmCopy.Confirm("1 day", time.Now()))
	suite.Require().NoError(denyCopy.Deny(time.Now()))

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i, decided := range []*order.Order{confirmCopy, denyCopy} {
		i, decided := i, decided
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = suite.repository.UpdateDecision(ctx, decided, order.Pending)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrInvalidState)
	}
	suite.Equal(1, succeeded)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateDecision_MissingOrder() {
	o := suite.newOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now())
	suite.Require().NoError(o.Deny(time.Now()))

	err := suite.repository.UpdateDecision(context.Background(), o, order.Pending)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(customerID, storeID kernel.UUID, at time.Time) *order.Order {
	mug, err := order.NewItem("mug", "Mug", 2, decimal.RequireFromString("12.50"))
	suite.Require().NoError(err)
	tea, err := order.NewItem("tea", "Tea", 1, decimal.NewFromInt(5))
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, storeID, []order.Item{mug, tea}, "ring twice", at)
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
