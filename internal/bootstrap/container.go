package bootstrap

import (
	"log"

	"spi-eshop-be/internal/config"
	"spi-eshop-be/internal/controller"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/internal/pkg/serverutils"
	"spi-eshop-be/internal/repository/memory"
	"spi-eshop-be/internal/repository/unitofwork"
	"spi-eshop-be/internal/service"
	"spi-eshop-be/internal/websocket"
	"spi-eshop-be/pkg/assistant/search"
	"spi-eshop-be/pkg/cache"
	"spi-eshop-be/pkg/department"
	"spi-eshop-be/pkg/llm/factory"

	pktNats "spi-eshop-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const chatLogTopic = "chat_logs"

type Container struct {
	// Controllers
	AIController      controller.IAIController
	ProductController controller.IProductController
	OrderController   controller.IOrderController
	AdminController   controller.IAdminController
	UserController    controller.IUserController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	CatalogWatcher  *service.CatalogWatcher
	ProductService  service.IProductService
	OrderService    service.IOrderService

	WebSocketHub *websocket.Hub
	Logger       logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	transcript := logger.NewIsolatedLogger(cfg.App.LLMLogFilePath)
	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	var natsPub *pktNats.Publisher
	var natsSub *pktNats.Subscriber
	if cfg.App.NatsURL != "" {
		var err error
		if natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL); err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		} else {
			c.closers = append(c.closers, natsPub.Close)
		}
		if natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL); err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			natsSub = nil
		} else {
			c.closers = append(c.closers, natsSub.Close)
		}
	}

	var cacheClient cache.Client = cache.NoopClient{}
	if cfg.App.RedisURL != "" {
		rc, err := cache.NewRedisClient(cfg.App.RedisURL, "spi:")
		if err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Product listings will not be cached", err)
		} else {
			cacheClient = rc
			c.closers = append(c.closers, func() { _ = rc.Close() })
		}
	}

	// 4. AI
	provider, err := factory.NewLLMProvider(factory.Settings{
		Provider: cfg.Ai.Provider,
		Model:    cfg.Ai.Model,
		BaseURL:  cfg.Ai.BaseURL,
		APIKey:   cfg.Ai.ApiKey,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	catalog := department.Default()
	orchestrator := search.NewOrchestrator(catalog, provider, search.Config{
		Timeout:    cfg.Ai.Timeout,
		MaxRetries: cfg.Ai.MaxRetries,
		Cache:      memory.NewAnswerCache(cfg.Ai.AnswerCacheTTL),
		Logger:     sysLogger,
		Transcript: transcript,
	})

	// 5. Services
	eventPublisher := service.NewNatsEventPublisher(natsPub, sysLogger)
	publisherService := service.NewPublisherService(chatLogTopic, pubSub)

	c.ConsumerService = service.NewConsumerService(pubSub, chatLogTopic, uowFactory, sysLogger)
	c.ProductService = service.NewProductService(uowFactory, catalog, cacheClient, cfg.App.ProductCacheTTL, cfg.App.SeedOnEmpty, eventPublisher, sysLogger)
	c.OrderService = service.NewOrderService(uowFactory, cfg.App.SeedOnEmpty, eventPublisher, sysLogger)
	aiService := service.NewAIService(uowFactory, orchestrator, publisherService, eventPublisher, sysLogger)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	// 6. WebSocket Hub
	c.WebSocketHub = websocket.NewHub(sysLogger)
	c.CatalogWatcher = service.NewCatalogWatcher(natsSub, c.WebSocketHub, sysLogger)

	// 7. Controllers
	auth := serverutils.NewAuth(cfg.Auth.JwtSecret, cfg.Auth.AdminEmails)
	c.AIController = controller.NewAIController(aiService, c.WebSocketHub, sysLogger)
	c.ProductController = controller.NewProductController(c.ProductService, auth)
	c.OrderController = controller.NewOrderController(c.OrderService, auth)
	c.AdminController = controller.NewAdminController(adminService, auth)
	c.UserController = controller.NewUserController(auth)

	return c
}

// Close releases connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
