package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"questbets/announce"
	"questbets/api"
	"questbets/cache"
	"questbets/config"
	"questbets/database"
	"questbets/events"
	"questbets/metrics"
	"questbets/repository"
	"questbets/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting questbets service...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// Standalone repositories for read paths
	betRepo := repository.NewBetRepository(db)
	userRepo := repository.NewUserRepository(db)
	userBetRepo := repository.NewUserBetRepository(db)

	// Optional catalog cache
	var catalogCache service.CatalogCache
	if cfg.RedisAddr != "" {
		log.Println("Connecting to Redis...")
		rdb, err := cache.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer rdb.Close()
		catalogCache = cache.NewRedisCatalogCache(rdb)
		log.Println("Redis catalog cache enabled")
	}

	// Initialize services
	log.Println("Initializing services...")
	catalogService := service.NewCatalogService(betRepo, catalogCache)
	leaderboardService := service.NewLeaderboardService(userRepo)
	submissionService := service.NewSubmissionService(uowFactory, cfg.CampaignBetIDs)
	userBetsService := service.NewUserBetsService(userRepo, userBetRepo)
	log.Println("Services initialized successfully")

	// Optional Kafka relay for submission events
	if cfg.KafkaBrokers != "" {
		log.Println("Attaching Kafka submission relay...")
		relay := events.NewKafkaRelay(cfg.KafkaBrokers, cfg.KafkaTopic)
		relay.Attach(eventBus)
		defer relay.Close()
	}

	// Optional Discord announcer
	if cfg.DiscordToken != "" && cfg.DiscordChannelID != "" {
		log.Println("Initializing Discord announcer...")
		announcer, err := announce.New(announce.Config{
			Token:     cfg.DiscordToken,
			ChannelID: cfg.DiscordChannelID,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Discord announcer: %w", err)
		}
		announcer.Attach(eventBus)
		defer announcer.Close()
	}

	// Metrics and health endpoint
	metricsServer := metrics.StartServer(cfg.MetricsPort, db.Ping)

	// HTTP API
	handler := api.NewHandler(catalogService, leaderboardService, submissionService, userBetsService)
	router := api.NewRouter(handler)

	apiServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on :%s in %s mode...", cfg.HTTPPort, cfg.Environment)
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("API server error: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down API server: %v", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down metrics server: %v", err)
	}

	// Close database connection
	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")
	return nil
}
