package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"arenaserver/internal/config"
	"arenaserver/internal/database"
	"arenaserver/internal/handlers"
	"arenaserver/internal/metrics"
	"arenaserver/internal/models"
	"arenaserver/internal/repositories"
	"arenaserver/internal/services"
	"arenaserver/internal/validation"
	"arenaserver/pkg/rabbitmq"
)

// storage bundles the repositories of one backend.
type storage struct {
	accounts   repositories.AccountRepository
	characters repositories.CharacterRepository
	items      repositories.ItemRepository
	ping       func() error
}

func newGORMStorage(db *gorm.DB) storage {
	return storage{
		accounts:   repositories.NewGORMAccountRepository(db),
		characters: repositories.NewGORMCharacterRepository(db),
		items:      repositories.NewGORMItemRepository(db),
		ping:       func() error { return database.Ping(db) },
	}
}

func newMemoryStorage() storage {
	store := repositories.NewMemoryStore()
	return storage{
		accounts:   store.Accounts(),
		characters: store.Characters(),
		items:      store.Items(),
		ping:       func() error { return nil },
	}
}

// application holds the services behind the HTTP handlers.
type application struct {
	accounts   *services.AccountService
	characters *services.CharacterService
	items      *services.ItemService
	ping       func() error
}

func newApplication(store storage, hasher services.PasswordHasher, publisher services.EventPublisher) *application {
	return &application{
		accounts:   services.NewAccountService(store.accounts, hasher, publisher),
		characters: services.NewCharacterService(store.characters, store.accounts, hasher, publisher),
		items:      services.NewItemService(store.items, publisher),
		ping:       store.ping,
	}
}

// newApp builds the fiber app with middleware, API routes and the health check.
func newApp(svc *application) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "arena",
		ErrorHandler: handlers.ErrorHandler,
		UnescapePath: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(metrics.Middleware())

	validate := validation.New()
	api := app.Group("/api")
	handlers.NewAccountHandler(svc.accounts, validate).RegisterRoutes(api)
	handlers.NewCharacterHandler(svc.characters, validate).RegisterRoutes(api)
	handlers.NewItemHandler(svc.items, validate).RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		code, status, dbState := fiber.StatusOK, "healthy", "connected"
		if err := svc.ping(); err != nil {
			log.Printf("Health check: database ping failed: %v", err)
			code, status, dbState = fiber.StatusServiceUnavailable, "unhealthy", "unavailable"
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"database": dbState,
		})
	})

	app.Get("/metrics", metrics.Handler())

	return app
}

// openStorage opens the backend selected by DB_DRIVER. The returned func releases it.
func openStorage(cfg *config.Config) (storage, func(), error) {
	if cfg.DBDriver == config.DriverMemory {
		return newMemoryStorage(), func() {}, nil
	}

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN, cfg.DBLogLevel)
	if err != nil {
		return storage{}, nil, err
	}
	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			database.Close(db)
			return storage{}, nil, err
		}
	}

	closeDB := func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	return newGORMStorage(db), closeDB, nil
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.New())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Event publishing (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if cfg.EventsEnabled() {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		log.Println("RABBITMQ_URL is not set. Domain events are disabled.")
	}

	// --- Storage ---
	store, closeStore, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s storage: %v", cfg.DBDriver, err)
	}
	defer closeStore()

	svc := newApplication(store, services.NewBcryptHasher(cfg.BcryptCost), publisher)
	if cfg.SeedItems {
		seedItems(svc.items)
	}

	app := newApp(svc)

	// --- Audit consumer ---
	if cfg.EventsConsumer {
		log.Println("Starting RabbitMQ consumer for game events...")
		if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s (storage: %s)", cfg.AppPort, cfg.DBDriver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// seedItems populates the item catalog with a starter set. Codes already in
// the catalog are skipped.
func seedItems(items *services.ItemService) {
	intPtr := func(v int) *int { return &v }
	catalog := []models.CreateItemRequest{
		{Code: 1001, Name: "Sword", Stats: &models.ItemStats{Power: intPtr(10)}, Price: 500},
		{Code: 1002, Name: "Shield", Stats: &models.ItemStats{Health: intPtr(20)}, Price: 400},
		{Code: 2001, Name: "Potion", Stats: &models.ItemStats{Health: intPtr(50)}, Price: 50},
	}

	for _, req := range catalog {
		item, err := items.CreateItem(context.Background(), req)
		if err != nil {
			log.Printf("Error seeding item %d (%s): %v", req.Code, req.Name, err)
			continue
		}
		log.Printf("Seeded item: %s (code: %d)", item.Name, item.Code)
	}
}
