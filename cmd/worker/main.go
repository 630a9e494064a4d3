// Package main provides the entrypoint for the HeatShield background worker.
// The worker consumes Pub/Sub job messages and runs risk alert sweeps over
// the registered user base.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	aqowm "github.com/Princebca/heatshield-backend/internal/airquality/openweathermap"
	"github.com/Princebca/heatshield-backend/internal/database"
	"github.com/Princebca/heatshield-backend/internal/risk"
	"github.com/Princebca/heatshield-backend/internal/user"
	"github.com/Princebca/heatshield-backend/internal/weather"
	wowm "github.com/Princebca/heatshield-backend/internal/weather/openweathermap"
	"github.com/Princebca/heatshield-backend/internal/worker"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "heatshield-worker"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting HeatShield worker")

	// Worker also exposes a health endpoint for Cloud Run
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the user repository. The sweep reads every registered user.
	var userRepo user.Repository
	if os.Getenv("DB_ENABLED") == "false" {
		log.Warn().Msg("database disabled, using in-memory storage")
		userRepo = user.NewInMemoryRepository()
	} else {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		log.Info().
			Str("host", dbConfig.Host).
			Str("database", dbConfig.Database).
			Msg("database connected")

		userRepo = user.NewPostgresRepository(pool)
	}
	userService := user.NewService(userRepo)

	// Select environmental data providers
	apiKey := os.Getenv("OPENWEATHER_API_KEY")
	mockData := os.Getenv("MOCK_DATA_ENABLED") == "true" || apiKey == ""

	var (
		weatherProvider    weather.Provider
		airQualityProvider airquality.Provider
	)

	if mockData {
		log.Warn().Msg("mock environmental data enabled")
		weatherProvider = weather.NewMockProvider()
		airQualityProvider = airquality.NewMockProvider()
	} else {
		weatherProvider = wowm.NewClient(wowm.ClientConfig{APIKey: apiKey, Logger: log})
		airQualityProvider = aqowm.NewClient(aqowm.ClientConfig{APIKey: apiKey, Logger: log})
	}

	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: weatherProvider,
		Logger:   log,
	})
	airQualityService := airquality.NewService(airquality.ServiceConfig{
		Provider: airQualityProvider,
		Logger:   log,
	})

	// Initialize the risk engine
	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		modelPath = "heat_risk_model.gob"
	}

	engine := risk.NewEngine(risk.EngineConfig{
		ModelPath:     modelPath,
		UsePretrained: os.Getenv("USE_PRETRAINED") != "false",
		Logger:        log,
	})
	engine.Bootstrap()
	log.Info().Bool("ready", engine.Ready()).Msg("risk engine initialized")

	// Initialize the alert publisher
	projectID := os.Getenv("PUBSUB_PROJECT_ID")
	if projectID == "" {
		log.Fatal().Msg("PUBSUB_PROJECT_ID is required")
	}

	alertTopic := os.Getenv("ALERT_TOPIC")
	if alertTopic == "" {
		alertTopic = "risk-alerts"
	}

	publisher, err := worker.NewPubSubPublisher(ctx, projectID, alertTopic)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create alert publisher")
	}
	defer publisher.Close()

	// Create the sweep job
	sweepJob := worker.NewSweepJob(worker.SweepJobConfig{
		Config:            worker.DefaultSweepConfig(),
		Logger:            log,
		UserService:       userService,
		WeatherService:    weatherService,
		AirQualityService: airQualityService,
		Engine:            engine,
		Publisher:         publisher,
	})

	// Create the Pub/Sub job handler
	subscription := os.Getenv("PUBSUB_SUBSCRIPTION")
	if subscription == "" {
		subscription = "heatshield-worker-jobs"
	}

	handler, err := worker.NewPubSubHandler(ctx, worker.PubSubConfig{
		ProjectID:        projectID,
		SubscriptionName: subscription,
		SweepJob:         sweepJob,
		Logger:           log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create pubsub handler")
	}
	defer handler.Close()

	// Create HTTP server for health checks
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","version":"%s"}`, Version)
	})

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("health check server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("health server error")
		}
	}()

	// Start consuming job messages
	go func() {
		if err := handler.Start(ctx); err != nil && ctx.Err() == nil {
			log.Fatal().Err(err).Msg("pubsub handler stopped")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down worker")
	cancel()

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("health server forced to shutdown")
	}

	log.Info().Msg("worker stopped")
}
