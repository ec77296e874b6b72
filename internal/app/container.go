// Package app wires the stores, use cases and HTTP routes into one
// process-wide container.
package app

import (
	"context"
	"net/http"
	"time"

	"github.com/fekuna/omnipos-juicebar-service/config"
	"github.com/fekuna/omnipos-juicebar-service/internal/auth"
	"github.com/fekuna/omnipos-juicebar-service/internal/catalog"
	catalogHandler "github.com/fekuna/omnipos-juicebar-service/internal/catalog/handler"
	catalogRepo "github.com/fekuna/omnipos-juicebar-service/internal/catalog/repository"
	catalogUC "github.com/fekuna/omnipos-juicebar-service/internal/catalog/usecase"
	"github.com/fekuna/omnipos-juicebar-service/internal/customer"
	customerHandler "github.com/fekuna/omnipos-juicebar-service/internal/customer/handler"
	customerRepo "github.com/fekuna/omnipos-juicebar-service/internal/customer/repository"
	customerUC "github.com/fekuna/omnipos-juicebar-service/internal/customer/usecase"
	"github.com/fekuna/omnipos-juicebar-service/internal/dashboard"
	"github.com/fekuna/omnipos-juicebar-service/internal/forecast"
	forecastHandler "github.com/fekuna/omnipos-juicebar-service/internal/forecast/handler"
	forecastUC "github.com/fekuna/omnipos-juicebar-service/internal/forecast/usecase"
	"github.com/fekuna/omnipos-juicebar-service/internal/inventory"
	inventoryHandler "github.com/fekuna/omnipos-juicebar-service/internal/inventory/handler"
	inventoryRepo "github.com/fekuna/omnipos-juicebar-service/internal/inventory/repository"
	inventoryUC "github.com/fekuna/omnipos-juicebar-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-juicebar-service/internal/lock"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/metrics"
	"github.com/fekuna/omnipos-juicebar-service/internal/middleware"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification"
	notificationHandler "github.com/fekuna/omnipos-juicebar-service/internal/notification/handler"
	notificationRepo "github.com/fekuna/omnipos-juicebar-service/internal/notification/repository"
	"github.com/fekuna/omnipos-juicebar-service/internal/notification/scheduler"
	notificationUC "github.com/fekuna/omnipos-juicebar-service/internal/notification/usecase"
	"github.com/fekuna/omnipos-juicebar-service/internal/pricing"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales"
	salesHandler "github.com/fekuna/omnipos-juicebar-service/internal/sales/handler"
	"github.com/fekuna/omnipos-juicebar-service/internal/sales/listener"
	salesRepo "github.com/fekuna/omnipos-juicebar-service/internal/sales/repository"
	salesUC "github.com/fekuna/omnipos-juicebar-service/internal/sales/usecase"
	"github.com/fekuna/omnipos-juicebar-service/internal/seed"
	"github.com/fekuna/omnipos-juicebar-service/internal/snapshot"
	snapshotUC "github.com/fekuna/omnipos-juicebar-service/internal/snapshot/usecase"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// Options carries the optional infrastructure chosen by the caller. Nil
// fields fall back to in-process defaults: seed data, a local lock and no
// remote sale feed.
type Options struct {
	Config     *config.Config
	Logger     logger.ZapLogger
	Snapshots  snapshot.Repository
	Locker     lock.Locker
	SaleReader listener.MessageReader
}

// Container holds the long-lived stores and use cases of the process.
type Container struct {
	config   *config.Config
	logger   logger.ZapLogger
	location *time.Location

	stores snapshotUC.Stores

	Catalog       catalog.UseCase
	Inventory     inventory.UseCase
	Customers     customer.UseCase
	Sales         sales.UseCase
	Forecast      forecast.UseCase
	Notifications notification.UseCase
	Pricing       *pricing.Engine
	Metrics       *metrics.Metrics
	Dashboard     *dashboard.Service
	Summary       *scheduler.SummaryJob
	Scheduler     *scheduler.DailyScheduler
	Snapshot      snapshot.UseCase
	Listener      *listener.SaleListener

	seed      snapshot.UseCase
	rateLimit gin.HandlerFunc
}

func NewContainer(opts Options) *Container {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.LoadEnv()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	locker := opts.Locker
	if locker == nil {
		locker = lock.NewLocalLocker()
	}

	c := &Container{
		config:   cfg,
		logger:   log,
		location: loadLocation(cfg.Notification.Timezone, log),
		Metrics:  metrics.New(),
	}

	products := catalogRepo.NewMemoryRepository()
	items := inventoryRepo.NewMemoryRepository()
	customers := customerRepo.NewMemoryRepository()
	saleLog := salesRepo.NewMemoryRepository()
	notifications := notificationRepo.NewMemoryRepository()
	c.stores = snapshotUC.Stores{
		Catalog:       products,
		Inventory:     items,
		Customers:     customers,
		Sales:         saleLog,
		Notifications: notifications,
	}

	c.Forecast = forecastUC.NewForecastUseCase(products, saleLog, forecast.Signal{Intensity: cfg.Forecast.AmbientIntensity}, c.location, log)
	c.Catalog = catalogUC.NewCatalogUseCase(products, items, c.Forecast, log)
	c.Inventory = inventoryUC.NewInventoryUseCase(items, products, log)
	c.Customers = customerUC.NewCustomerUseCase(customers, log)
	c.Notifications = metrics.InstrumentNotifications(notificationUC.NewNotificationUseCase(notifications, log), c.Metrics)
	c.Pricing = pricing.NewEngine(products, items)

	c.Sales = salesUC.NewSalesUseCase(salesUC.Deps{
		Repo:       saleLog,
		Catalog:    products,
		Customers:  customers,
		Inventory:  c.Inventory,
		Pricing:    c.Pricing,
		Dispatcher: c.Notifications,
		Locker:     locker,
		Refresher:  c.Forecast,
		Observer:   c.Metrics,
		Logger:     log,
	})

	c.Dashboard = dashboard.NewService(c.Sales, c.Inventory, c.Forecast, c.location, log)

	c.Summary = scheduler.NewSummaryJob(c.Sales, c.Notifications, cfg.Notification.OperatorPhone, log)
	c.Scheduler = scheduler.NewDailyScheduler(scheduler.Config{
		Hour:     cfg.Notification.SummaryHour,
		Minute:   cfg.Notification.SummaryMinute,
		Location: c.location,
	}, c.Summary.Run, log)

	c.seed = snapshotUC.NewSnapshotUseCase(seed.NewRepository(), c.stores, log)
	if opts.Snapshots != nil {
		c.Snapshot = snapshotUC.NewSnapshotUseCase(opts.Snapshots, c.stores, log)
	}

	if opts.SaleReader != nil {
		c.Listener = listener.NewSaleListener(opts.SaleReader, c.Sales, log)
	}

	if cfg.Server.RateLimit != "" {
		mw, err := middleware.RateLimit(cfg.Server.RateLimit)
		if err != nil {
			log.Warn("Rate limiting disabled", zap.Error(err))
		} else {
			c.rateLimit = mw
		}
	}

	return c
}

// Location is the business timezone every "today" is taken in.
func (c *Container) Location() *time.Location {
	return c.location
}

func loadLocation(name string, log logger.ZapLogger) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Warn("Unknown timezone, using local time", zap.String("timezone", name), zap.Error(err))
		return time.Local
	}
	return loc
}

// Start fills the stores, computes the first forecast and starts the
// background workers. Workers stop when ctx is cancelled or on Shutdown.
func (c *Container) Start(ctx context.Context) error {
	restored := false
	if c.Snapshot != nil {
		ok, err := c.Snapshot.Restore(ctx)
		if err != nil {
			return err
		}
		restored = ok
	}
	if !restored {
		if _, err := c.seed.Restore(ctx); err != nil {
			return err
		}
		c.logger.Info("Loaded starter data")
	}

	if err := c.Forecast.Refresh(ctx); err != nil {
		return err
	}

	if err := c.Scheduler.Start(ctx); err != nil {
		return err
	}

	if c.Listener != nil {
		go c.Listener.Start(ctx)
	}
	return nil
}

// Shutdown stops the scheduler and saves a snapshot when one is configured.
func (c *Container) Shutdown(ctx context.Context) {
	c.logger.Info("Shutting down container...")

	if err := c.Scheduler.Stop(ctx); err != nil {
		c.logger.Error("Failed to stop scheduler", zap.Error(err))
	}

	if c.Snapshot != nil {
		if err := c.Snapshot.Save(ctx); err != nil {
			c.logger.Error("Failed to save snapshot", zap.Error(err))
		}
	}
}

// Router builds the HTTP API. Every route under /api/v1 carries the role flag.
func (c *Container) Router() *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		otelgin.Middleware(c.config.Tracing.ServiceName),
		middleware.RequestLogger(c.logger),
		middleware.Recovery(c.logger),
	)

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(c.Metrics.Handler()))

	api := r.Group("/api/v1", auth.RoleMiddleware())
	if c.rateLimit != nil {
		api.Use(c.rateLimit)
	}
	catalogHandler.NewCatalogHandler(c.Catalog, c.Pricing, c.Inventory, c.logger).RegisterRoutes(api)
	inventoryHandler.NewInventoryHandler(c.Inventory, c.logger).RegisterRoutes(api)
	customerHandler.NewCustomerHandler(c.Customers, c.logger).RegisterRoutes(api)
	salesHandler.NewSalesHandler(c.Sales, c.location, c.logger).RegisterRoutes(api)
	forecastHandler.NewForecastHandler(c.Forecast, c.logger).RegisterRoutes(api)
	notificationHandler.NewNotificationHandler(c.Notifications, c.Summary, c.location, c.logger).RegisterRoutes(api)
	dashboard.NewHandler(c.Dashboard).RegisterRoutes(api)

	return r
}
