package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"venturedesk/application/serviceimpl"
	"venturedesk/domain/ports"
	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
	"venturedesk/infrastructure/ai"
	"venturedesk/infrastructure/gateway"
	"venturedesk/infrastructure/memory"
	"venturedesk/infrastructure/messaging"
	natspkg "venturedesk/infrastructure/nats"
	"venturedesk/infrastructure/postgres"
	redispkg "venturedesk/infrastructure/redis"
	"venturedesk/infrastructure/storage"
	"venturedesk/infrastructure/websocket"
	"venturedesk/interfaces/api/handlers"
	"venturedesk/pkg/config"
	"venturedesk/pkg/logger"
	"venturedesk/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB            // nil when the primary database is down
	MemoryStore    *memory.Store       // seeded fallback dataset
	SourceTracker  *gateway.Tracker    // per-collection primary/fallback report
	RedisClient    *redispkg.Client    // dashboard cache (optional)
	NATSClient     *natspkg.Client     // task event fanout (optional)
	Storage        ports.StoragePort   // logo uploads (optional)
	Completion     ports.CompletionPort
	EventScheduler scheduler.EventScheduler

	// Messaging
	TaskEventPublisher  ports.TaskEventPublisher
	TaskEventSubscriber ports.TaskEventSubscriber

	// Repositories (gateway-wrapped: primary with seeded fallback)
	UserRepository     repositories.UserRepository
	BusinessRepository repositories.BusinessRepository
	TaskRepository     repositories.TaskRepository
	TipRepository      repositories.TipRepository

	// Services
	UserService      services.UserService
	BusinessService  services.BusinessService
	TaskService      services.TaskService
	TipService       services.TipService
	GeneratorService services.GeneratorService
	DashboardService services.DashboardService

	// WebSocket & Broadcasting
	WSManager            *websocket.Manager
	TaskBroadcaster      *websocket.TaskBroadcaster
	DashboardInvalidator ports.TaskEventSubscriber
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initBroadcaster(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Primary database. A failed connection is not fatal: the gateways keep
	// serving the seeded in-memory fallback until the database returns.
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		logger.Warn("Database unavailable, serving the seeded fallback dataset", "error", err)
	} else if err := postgres.Migrate(db); err != nil {
		logger.Warn("Database migration failed, serving the seeded fallback dataset", "error", err)
	} else {
		c.DB = db
		logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)
	}

	// Seeded fallback dataset
	c.MemoryStore = memory.NewStore(c.Config.Mock.Latency)
	if c.Config.Mock.Seed {
		memory.Seed(c.MemoryStore)
		logger.Info("Fallback store seeded", "latency", c.Config.Mock.Latency.String())
	}

	c.SourceTracker = gateway.NewTracker()

	// Redis dashboard cache (optional, graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis initialization failed (dashboard cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	// NATS task event fanout (optional, falls back to a no-op publisher)
	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
	if err != nil {
		logger.Warn("NATS initialization failed (task events disabled)", "error", err)
		c.TaskEventPublisher = messaging.NewNoopTaskEventPublisher()
	} else {
		c.NATSClient = natsClient
		c.TaskEventPublisher = natspkg.NewTaskEventPublisher(natsClient)
		c.TaskEventSubscriber = natspkg.NewTaskEventSubscriber(natsClient)
	}

	// S3-compatible logo storage (optional)
	s3Config := storage.S3StorageConfig{
		Endpoint:  c.Config.Storage.Endpoint,
		AccessKey: c.Config.Storage.AccessKey,
		SecretKey: c.Config.Storage.SecretKey,
		Bucket:    c.Config.Storage.Bucket,
		UseSSL:    c.Config.Storage.UseSSL,
		Region:    c.Config.Storage.Region,
		PublicURL: c.Config.Storage.PublicURL,
	}
	s3Storage, err := storage.NewS3Storage(s3Config)
	if err != nil {
		logger.Warn("Storage initialization failed (logo uploads disabled)", "error", err)
	} else {
		c.Storage = s3Storage
		logger.Info("Storage initialized", "endpoint", c.Config.Storage.Endpoint, "bucket", c.Config.Storage.Bucket)
	}

	// OpenRouter chat-completion client
	c.Completion = ai.NewOpenRouterClient(ai.OpenRouterConfig{
		APIKey:  c.Config.OpenRouter.APIKey,
		Model:   c.Config.OpenRouter.Model,
		BaseURL: c.Config.OpenRouter.BaseURL,
		Referer: c.Config.OpenRouter.Referer,
		Timeout: c.Config.OpenRouter.Timeout,
	})
	logger.Info("Completion client initialized", "model", c.Config.OpenRouter.Model)

	return nil
}

func (c *Container) initRepositories() error {
	fallbackUsers := memory.NewUserRepository(c.MemoryStore)
	fallbackBusinesses := memory.NewBusinessRepository(c.MemoryStore)
	fallbackTasks := memory.NewTaskRepository(c.MemoryStore)
	fallbackTips := memory.NewTipRepository(c.MemoryStore)

	primaryUsers := gateway.UnavailableUsers()
	primaryBusinesses := gateway.UnavailableBusinesses()
	primaryTasks := gateway.UnavailableTasks()
	primaryTips := gateway.UnavailableTips()
	if c.DB != nil {
		primaryUsers = postgres.NewUserRepository(c.DB)
		primaryBusinesses = postgres.NewBusinessRepository(c.DB)
		primaryTasks = postgres.NewTaskRepository(c.DB)
		primaryTips = postgres.NewTipRepository(c.DB)
	}

	c.UserRepository = gateway.NewUserGateway(primaryUsers, fallbackUsers, c.SourceTracker)
	c.BusinessRepository = gateway.NewBusinessGateway(primaryBusinesses, fallbackBusinesses, c.SourceTracker)
	c.TaskRepository = gateway.NewTaskGateway(primaryTasks, fallbackTasks, c.SourceTracker)
	c.TipRepository = gateway.NewTipGateway(primaryTips, fallbackTips, c.SourceTracker)

	logger.Info("Repositories initialized", "primary", c.DB != nil)
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret)
	c.BusinessService = serviceimpl.NewBusinessService(c.BusinessRepository, c.Storage)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.BusinessRepository, c.TaskEventPublisher)
	c.TipService = serviceimpl.NewTipService(c.TipRepository, c.BusinessRepository)
	c.GeneratorService = serviceimpl.NewGeneratorService(c.TaskRepository, c.BusinessRepository, c.Completion, c.TaskEventPublisher)
	c.DashboardService = serviceimpl.NewDashboardService(c.UserRepository, c.BusinessRepository, c.TaskRepository, c.TipRepository, c.RedisClient)

	logger.Info("Services initialized")
	return nil
}

func (c *Container) initBroadcaster() error {
	c.WSManager = websocket.NewManager()

	if c.TaskEventSubscriber == nil {
		logger.Warn("Task broadcaster disabled (NATS not available)")
		return nil
	}

	c.TaskBroadcaster = websocket.NewTaskBroadcaster(c.TaskEventSubscriber, c.WSManager)
	if err := c.TaskBroadcaster.Start(); err != nil {
		logger.Warn("Task broadcaster failed to start", "error", err)
		c.TaskBroadcaster = nil
	}

	// Task events also drop the cached dashboards, so the next fetch reflects
	// the change before the TTL would expire.
	if c.RedisClient != nil {
		invalidator := natspkg.NewTaskEventSubscriber(c.NATSClient)
		err := invalidator.Subscribe(context.Background(), func(event *ports.TaskEvent) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := c.DashboardService.InvalidateCache(ctx); err != nil {
				logger.Warn("Dashboard cache invalidation failed", "error", err)
			}
		})
		if err != nil {
			logger.Warn("Dashboard cache invalidator failed to start", "error", err)
		} else {
			c.DashboardInvalidator = invalidator
		}
	}

	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	// Nightly reopening of completed recurring tasks
	err := c.EventScheduler.AddJob("reset-recurring-tasks", "0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		count, err := c.TaskService.ResetRecurringTasks(ctx)
		if err != nil {
			logger.Error("Recurring task reset failed", "error", err)
			return
		}
		logger.Info("Recurring task reset completed", "reopened", count)
	})
	if err != nil {
		return err
	}

	c.EventScheduler.Start()
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetHandlerServices bundles everything the HTTP layer needs.
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:      c.UserService,
		BusinessService:  c.BusinessService,
		TaskService:      c.TaskService,
		TipService:       c.TipService,
		GeneratorService: c.GeneratorService,
		DashboardService: c.DashboardService,
		SourceTracker:    c.SourceTracker,
		WSManager:        c.WSManager,
		JWTSecret:        c.Config.JWT.Secret,
	}
}

// Cleanup releases infrastructure resources in reverse dependency order.
func (c *Container) Cleanup() error {
	if c.EventScheduler != nil {
		c.EventScheduler.Stop()
	}

	if c.TaskBroadcaster != nil {
		c.TaskBroadcaster.Stop()
	}

	if c.DashboardInvalidator != nil {
		if err := c.DashboardInvalidator.Unsubscribe(); err != nil {
			logger.Warn("Dashboard invalidator unsubscribe failed", "error", err)
		}
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("NATS close failed", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Redis close failed", "error", err)
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Database close failed", "error", err)
			}
		}
	}

	return nil
}
