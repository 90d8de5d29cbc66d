package directoryrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/directoryrepo"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *directoryrepo.GormDirectory
}

func (suite *DirectoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&directoryrepo.StoreDTO{}, &directoryrepo.AccountDTO{}))
}

func (suite *DirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE stores, accounts").Error)
	suite.directory = directoryrepo.NewGormDirectory(suite.db)
}

func (suite *DirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DirectoryIntegrationTestSuite) TestStores() {
	ctx := context.Background()
	owner := kernel.NewUUID()
	s, err := store.NewStore(kernel.NewUUID(), "Corner Books", owner)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.directory.AddStore(ctx, s))

	suite.Run("by id", func() {
		got, err := suite.directory.GetStore(ctx, s.ID())
		suite.Require().NoError(err)
		suite.Equal("Corner Books", got.Name())
		suite.True(got.IsOwnedBy(owner))
	})

	suite.Run("by owner", func() {
		got, err := suite.directory.FindStoreByOwner(ctx, owner)
		suite.Require().NoError(err)
		suite.True(got.ID().IsEqual(s.ID()))
	})

	suite.Run("unknown store", func() {
		_, err := suite.directory.GetStore(ctx, kernel.NewUUID())
		suite.Require().ErrorIs(err, errs.ErrStoreNotFound)
	})

	suite.Run("owner without store", func() {
		_, err := suite.directory.FindStoreByOwner(ctx, kernel.NewUUID())
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})

	suite.Run("batch skips unknown ids", func() {
		got, err := suite.directory.StoresByID(ctx, []kernel.UUID{s.ID(), kernel.NewUUID()})
		suite.Require().NoError(err)
		suite.Len(got, 1)
		suite.Equal("Corner Books", got[s.ID()].Name())
	})
}

func (suite *DirectoryIntegrationTestSuite) TestAccounts() {
	ctx := context.Background()
	a, err := account.NewAccount(kernel.NewUUID(), "c1", "c1@example.com", account.DeliveryInfo{
		Region: "North", Street: "Main 1", Floor: "2", Doorbell: "C1", Phone: "+100",
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.directory.AddAccount(ctx, a))

	got, err := suite.directory.GetAccount(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal("c1", got.Username())
	suite.Equal("c1@example.com", got.Email())
	suite.Equal(a.Delivery(), got.Delivery())

	_, err = suite.directory.GetAccount(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	batch, err := suite.directory.AccountsByID(ctx, []kernel.UUID{a.ID()})
	suite.Require().NoError(err)
	suite.Len(batch, 1)

	empty, err := suite.directory.AccountsByID(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func TestDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryIntegrationTestSuite))
}
