package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"watchly/internal/config"
	"watchly/internal/handlers"
	"watchly/internal/middleware"
	"watchly/internal/models"
	"watchly/internal/repositories"
	"watchly/internal/services"
	"watchly/pkg/rabbitmq"
	"watchly/pkg/tmdb"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Database ---
	// PostgreSQL when a DSN is configured, local SQLite otherwise.
	var dialector gorm.Dialector
	if cfg.DatabaseDSN != "" {
		dialector = postgres.Open(cfg.DatabaseDSN)
	} else {
		dialector = sqlite.Open("watchly.db")
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Movie{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, watchlist events disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	movieRepo := repositories.NewGORMMovieRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	var events services.EventPublisher
	if mqClient != nil {
		events = mqClient
	}
	watchlistService := services.NewWatchlistService(movieRepo, events)

	// --- Outbound catalog client ---
	tmdbClient := tmdb.NewClient(cfg.TMDBAPIKey)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	movieHandler := handlers.NewMovieHandler(watchlistService, tmdbClient)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New())

	// --- API Routes ---
	api := app.Group("/api")

	// Auth routes carry a per-IP rate limit to blunt credential
	// stuffing: 100 requests per sliding 15-minute window. The
	// limiter is scoped to /api/auth only; movie and search routes
	// are unlimited.
	authHandler.RegisterRoutes(api, limiter.New(limiter.Config{
		Max:                    100,
		Expiration:             15 * time.Minute,
		LimiterMiddleware:      limiter.SlidingWindow{},
		SkipSuccessfulRequests: false,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests from this IP, please try again later.",
			})
		},
	}))

	movieHandler.RegisterRoutes(api, middleware.AuthRequired(authService))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": mqClient != nil,
		})
	})

	// --- Start RabbitMQ Consumer in a Goroutine ---
	// Logs watchlist activity events. A real deployment would hang
	// notification or analytics logic off this queue.
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for watchlist events...")
			messageHandler := func(msg amqp.Delivery) error {
				log.Printf("Received watchlist event %s: %s", msg.RoutingKey, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeWatchlistEvents(messageHandler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}
