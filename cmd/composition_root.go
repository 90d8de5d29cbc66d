package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/directoryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	metrics    *metrics.Metrics
	logger     *slog.Logger
	parser     services.DateRangeParser
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) (CompositionRoot, error) {
	loc, err := configs.Location()
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		metrics:    m,
		logger:     logger,
		parser:     services.NewDateRangeParser(loc),
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) Notifications() commands.Notifications {
	return commands.NewNotifications(c.notifier, c.configs.NotifyTimeout, c.logger, c.metrics)
}

func (c *CompositionRoot) CreateCreateOrdersFromCartCommandHandler() commands.CreateOrdersFromCartCommandHandler {
	return commands.NewCreateOrdersFromCartCommandHandler(
		c.orderUoWFactory(), c.Notifications(), c.metrics, c.logger, c.configs.CheckoutConcurrency)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.Notifications(), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateDenyOrderCommandHandler() commands.DenyOrderCommandHandler {
	return commands.NewDenyOrderCommandHandler(c.orderUoWFactory(), c.Notifications(), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		directoryrepo.NewGormDirectory(c.gormDB),
		c.parser,
	)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

// CreatePendingDigestJob runs the digest as the configured system admin account.
func (c *CompositionRoot) CreatePendingDigestJob(admin actor.Actor) *jobs.PendingDigestJob {
	return jobs.NewPendingDigestJob(
		c.CreateGetPendingOrdersQueryHandler(),
		c.Notifications(),
		admin,
		c.configs.AdminEmail,
		c.configs.DigestSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
