// Package main provides the entrypoint for the HeatShield India API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	aqowm "github.com/Princebca/heatshield-backend/internal/airquality/openweathermap"
	"github.com/Princebca/heatshield-backend/internal/api"
	"github.com/Princebca/heatshield-backend/internal/api/middleware"
	"github.com/Princebca/heatshield-backend/internal/community"
	"github.com/Princebca/heatshield-backend/internal/database"
	"github.com/Princebca/heatshield-backend/internal/provider/resilience"
	"github.com/Princebca/heatshield-backend/internal/risk"
	"github.com/Princebca/heatshield-backend/internal/symptom"
	"github.com/Princebca/heatshield-backend/internal/telemetry"
	"github.com/Princebca/heatshield-backend/internal/user"
	"github.com/Princebca/heatshield-backend/internal/weather"
	wowm "github.com/Princebca/heatshield-backend/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "heatshield-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting HeatShield India API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Initialize repositories. Postgres is the default; an in-memory store
	// is available for local development without a database.
	var (
		userRepo      user.Repository
		symptomRepo   symptom.Repository
		communityRepo community.Repository
	)

	if os.Getenv("DB_ENABLED") == "false" {
		log.Warn().Msg("database disabled, using in-memory storage")
		userRepo = user.NewInMemoryRepository()
		symptomRepo = symptom.NewInMemoryRepository()
		communityRepo = community.NewInMemoryRepository()
	} else {
		dbConfig := database.ConfigFromEnv()
		pool, err := database.Connect(ctx, dbConfig)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")

		userRepo = user.NewPostgresRepository(pool)
		symptomRepo = symptom.NewPostgresRepository(pool)
		communityRepo = community.NewPostgresRepository(pool)
	}

	userService := user.NewService(userRepo)
	log.Info().Msg("user service initialized")

	symptomService := symptom.NewService(symptomRepo)
	log.Info().Msg("symptom service initialized")

	communityService := community.NewService(communityRepo)
	log.Info().Msg("community service initialized")

	// Select environmental data providers. Without an OpenWeatherMap key
	// the mock providers serve fixed Rourkela readings.
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
		weatherProvider = wowm.NewClient(wowm.ClientConfig{
			APIKey: apiKey,
			Logger: log,
		})
		airQualityProvider = aqowm.NewClient(aqowm.ClientConfig{
			APIKey: apiKey,
			Logger: log,
		})
		log.Info().Msg("OpenWeatherMap providers initialized")
	}

	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: weatherProvider,
		Logger:   log,
	})
	airQualityService := airquality.NewService(airquality.ServiceConfig{
		Provider: airQualityProvider,
		Logger:   log,
	})

	// Initialize the risk engine. Bootstrap trains the classifier unless a
	// persisted artifact is available.
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

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:           Version,
		BuildTime:         BuildTime,
		Logger:            log,
		ServiceName:       serviceName,
		Metrics:           metrics,
		UserService:       userService,
		WeatherService:    weatherService,
		AirQualityService: airQualityService,
		RiskEngine:        engine,
		SymptomService:    symptomService,
		CommunityService:  communityService,
		ProviderRegistry:  resilience.GlobalRegistry,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
