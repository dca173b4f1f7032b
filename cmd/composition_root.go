package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "fastfeet/internal/adapters/in/http"
	kafkaadapter "fastfeet/internal/adapters/out/kafka"
	"fastfeet/internal/adapters/out/postgres"
	"fastfeet/internal/adapters/out/redis/ordercache"
	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/services"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg    Config
	logger *slog.Logger

	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	// orderListCache stays nil when Redis is disabled.
	orderListCache ports.OrderListCache
	mailer         *kafkaadapter.Mailer

	clock  kernel.Clock
	window kernel.DeliveryWindow
	notice services.CancellationNotice
}

// NewCompositionRoot wires the adapters around the use cases. redisClient
// may be nil, in which case order lists are always read from the database.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	window, err := cfg.DeliveryWindow()
	if err != nil {
		return nil, fmt.Errorf("delivery window: %w", err)
	}

	root := &CompositionRoot{
		cfg:    cfg,
		logger: logger,
		gormDB: gormDB,
		mailer: kafkaadapter.NewMailer(cfg.KafkaBrokers, cfg.KafkaMailTopic, cfg.KafkaWriteTimeout),
		clock:  kernel.NewSystemClock(cfg.TimeZone),
		window: window,
		notice: services.NewCancellationNotice(),
	}

	var observers []ports.CommitObserver
	if redisClient != nil {
		cache := ordercache.NewCache(redisClient, cfg.OrderListCacheTTL, logger)
		root.orderListCache = cache
		observers = append(observers, cache)
	}
	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, observers...)

	return root, nil
}

// Close releases the connections the root opened itself.
func (c *CompositionRoot) Close() error {
	return c.mailer.Close()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateStartTransportCommandHandler() commands.StartTransportCommandHandler {
	return commands.NewStartTransportCommandHandler(c.orderUoWFactory(), c.clock, c.window)
}

func (c *CompositionRoot) CreateEndTransportCommandHandler() commands.EndTransportCommandHandler {
	return commands.NewEndTransportCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(
		c.fullUoWFactory(),
		c.clock,
		c.notice,
		c.CreateDeliverNotificationCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreateRecipientCommandHandler() commands.CreateRecipientCommandHandler {
	var f commands.RecipientUoWFactory = FuncRecipientUoWFactory(func() commands.RecipientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRecipientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDelivererCommandHandler() commands.CreateDelivererCommandHandler {
	var f commands.DelivererUoWFactory = FuncDelivererUoWFactory(func() commands.DelivererUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDelivererCommandHandler(f)
}

func (c *CompositionRoot) CreateDeliverNotificationCommandHandler() commands.DeliverNotificationCommandHandler {
	return commands.NewDeliverNotificationCommandHandler(
		c.notificationUoWFactory(),
		c.mailer,
		c.clock,
		c.cfg.NotificationMaxAttempts,
	)
}

func (c *CompositionRoot) CreateRetryNotificationsCommandHandler() commands.RetryNotificationsCommandHandler {
	return commands.NewRetryNotificationsCommandHandler(
		c.notificationUoWFactory(),
		c.CreateDeliverNotificationCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.orderListCache, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.clock)
}

// CreateRouter builds the echo instance serving the HTTP API.
func (c *CompositionRoot) CreateRouter() *echo.Echo {
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		StartTransport:  c.CreateStartTransportCommandHandler(),
		EndTransport:    c.CreateEndTransportCommandHandler(),
		UpdateOrder:     c.CreateUpdateOrderCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		CreateRecipient: c.CreateCreateRecipientCommandHandler(),
		CreateDeliverer: c.CreateCreateDelivererCommandHandler(),
		ListOrders:      c.CreateListOrdersQueryHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, c.logger, httpadapter.RouterConfig{
		RequestTimeout: c.cfg.RequestTimeout,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRetryNotificationsCommandHandler(), jobs.RetryConfig{
		Schedule:  c.cfg.RetrySchedule,
		BatchSize: c.cfg.RetryBatchSize,
	}, c.logger)
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDelivererUoWFactory func() commands.DelivererUoW

func (f FuncDelivererUoWFactory) Create() commands.DelivererUoW {
	return f()
}

type FuncRecipientUoWFactory func() commands.RecipientUoW

func (f FuncRecipientUoWFactory) Create() commands.RecipientUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
