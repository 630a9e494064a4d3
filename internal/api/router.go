// Package api provides the HTTP API for HeatShield.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/api/handler"
	"github.com/Princebca/heatshield-backend/internal/api/middleware"
	"github.com/Princebca/heatshield-backend/internal/community"
	"github.com/Princebca/heatshield-backend/internal/provider/resilience"
	"github.com/Princebca/heatshield-backend/internal/risk"
	"github.com/Princebca/heatshield-backend/internal/symptom"
	"github.com/Princebca/heatshield-backend/internal/user"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version           string
	BuildTime         string
	Logger            zerolog.Logger
	ServiceName       string
	Metrics           *middleware.Metrics
	UserService       *user.Service
	WeatherService    *weather.Service
	AirQualityService *airquality.Service
	RiskEngine        *risk.Engine
	SymptomService    *symptom.Service
	CommunityService  *community.Service
	ProviderRegistry  *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "heatshield-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.RiskEngine, cfg.ProviderRegistry)
	userHandler := handler.NewUserHandler(cfg.UserService)
	environmentHandler := handler.NewEnvironmentHandler(cfg.WeatherService, cfg.AirQualityService)
	forecastHandler := handler.NewForecastHandler(cfg.UserService, cfg.WeatherService, cfg.AirQualityService, cfg.RiskEngine)
	symptomHandler := handler.NewSymptomHandler(cfg.SymptomService)
	communityHandler := handler.NewCommunityHandler(cfg.CommunityService)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
			r.Get("/status", opsHandler.SystemStatus)
		})

		// User endpoints - standard rate limiting
		r.Route("/users", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Post("/", userHandler.Register)
			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", userHandler.Get)
				r.Put("/", userHandler.Update)
			})
		})

		// Environmental data endpoints - standard rate limiting
		r.With(standardRateLimit).Get("/weather", environmentHandler.GetWeather)
		r.With(standardRateLimit).Get("/air-quality", environmentHandler.GetAirQuality)

		// Forecast endpoint - expensive compute, strict rate limiting
		r.With(expensiveRateLimit).Post("/forecast", forecastHandler.Forecast)

		// Symptom endpoints - standard rate limiting
		r.Route("/symptoms", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Post("/", symptomHandler.Log)
			r.Get("/{userId}", symptomHandler.History)
		})

		// Community endpoints - standard rate limiting
		r.Route("/community", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Route("/posts", func(r chi.Router) {
				r.Get("/", communityHandler.ListPosts)
				r.Post("/", communityHandler.CreatePost)
			})
			r.Route("/challenges", func(r chi.Router) {
				r.Get("/", communityHandler.ListChallenges)
				r.Post("/{challengeId}/join", communityHandler.JoinChallenge)
			})
		})
	})

	return r
}
