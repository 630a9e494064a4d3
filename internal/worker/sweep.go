package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/risk"
	"github.com/Princebca/heatshield-backend/internal/user"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

// RiskAlert is the message published for a user whose predicted risk
// crosses the alert threshold.
type RiskAlert struct {
	UserID          string          `json:"user_id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Location        string          `json:"location"`
	Language        string          `json:"language"`
	RiskScore       float64         `json:"risk_score"`
	SeverityLevel   risk.Severity   `json:"severity_level"`
	Recommendations []risk.Advisory `json:"recommendations"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// AlertPublisher delivers risk alerts to downstream notification channels.
type AlertPublisher interface {
	Publish(ctx context.Context, alert *RiskAlert) error
}

// SweepJob evaluates every registered user against current conditions and
// publishes alerts for those at elevated risk.
type SweepJob struct {
	config SweepConfig
	logger zerolog.Logger

	// Services (optional, nil if not configured)
	userService       *user.Service
	weatherService    *weather.Service
	airQualityService *airquality.Service
	engine            *risk.Engine
	publisher         AlertPublisher

	// Metrics
	metrics *SweepMetrics
}

// SweepMetrics tracks sweep job statistics.
type SweepMetrics struct {
	mu sync.RWMutex

	// Counters
	TotalSweeps       int64
	UsersEvaluated    int64
	FailedEvaluations int64
	AlertsPublished   int64
	PublishFailures   int64

	// Timings
	LastSweepAt       time.Time
	LastSweepDuration time.Duration
	TotalDuration     time.Duration
}

// SweepJobConfig holds configuration for creating a SweepJob.
type SweepJobConfig struct {
	Config            SweepConfig
	Logger            zerolog.Logger
	UserService       *user.Service
	WeatherService    *weather.Service
	AirQualityService *airquality.Service
	Engine            *risk.Engine
	Publisher         AlertPublisher
}

// NewSweepJob creates a new sweep job processor.
func NewSweepJob(cfg SweepJobConfig) *SweepJob {
	config := cfg.Config
	if config.Concurrency == 0 && config.Timeout == 0 {
		config = DefaultSweepConfig()
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 3
	}
	if config.Timeout <= 0 {
		config.Timeout = 15 * time.Second
	}
	if len(config.AlertSeverities) == 0 {
		config.AlertSeverities = []risk.Severity{risk.SeverityHigh, risk.SeverityVeryHigh}
	}

	return &SweepJob{
		config:            config,
		logger:            cfg.Logger,
		userService:       cfg.UserService,
		weatherService:    cfg.WeatherService,
		airQualityService: cfg.AirQualityService,
		engine:            cfg.Engine,
		publisher:         cfg.Publisher,
		metrics:           &SweepMetrics{},
	}
}

// SweepResult contains the result of a sweep operation.
type SweepResult struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalUsers int
	Evaluated  int
	Failed     int
	AlertsSent int
	Errors     []SweepError
}

// SweepError represents an error during a sweep.
type SweepError struct {
	UserID string
	Stage  string
	Error  string
}

// Run executes the sweep for all registered users. Current conditions are
// fetched once per sweep; every user is scored against the same readings.
func (j *SweepJob) Run(ctx context.Context) *SweepResult {
	startTime := time.Now()
	result := &SweepResult{
		StartTime: startTime,
	}

	users, err := j.listUsers(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("failed to list users for sweep")
		result.Errors = append(result.Errors, SweepError{Stage: "list_users", Error: err.Error()})
		j.finish(result)
		return result
	}
	result.TotalUsers = len(users)

	j.logger.Info().
		Int("total_users", result.TotalUsers).
		Int("concurrency", j.config.Concurrency).
		Msg("starting risk sweep job")

	if len(users) == 0 {
		j.finish(result)
		return result
	}

	weatherReading, airReading, err := j.fetchConditions(ctx)
	if err != nil {
		j.logger.Error().Err(err).Msg("failed to fetch conditions for sweep")
		result.Errors = append(result.Errors, SweepError{Stage: "conditions", Error: err.Error()})
		result.Failed = len(users)
		j.finish(result)
		return result
	}

	// Create work channels
	usersChan := make(chan *user.User, len(users))
	resultsChan := make(chan userResult, len(users))

	// Start workers
	var wg sync.WaitGroup
	for i := 0; i < j.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.sweepWorker(ctx, usersChan, resultsChan, weatherReading, airReading)
		}()
	}

	// Send users to workers
	for _, u := range users {
		usersChan <- u
	}
	close(usersChan)

	// Wait for workers to complete
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	// Collect results
	for ur := range resultsChan {
		if ur.err != nil {
			result.Failed++
			result.Errors = append(result.Errors, SweepError{
				UserID: ur.userID,
				Stage:  ur.stage,
				Error:  ur.err.Error(),
			})
			continue
		}
		result.Evaluated++
		if ur.alerted {
			result.AlertsSent++
		}
	}

	j.finish(result)

	j.logger.Info().
		Dur("duration", result.Duration).
		Int("evaluated", result.Evaluated).
		Int("failed", result.Failed).
		Int("alerts_sent", result.AlertsSent).
		Msg("risk sweep job completed")

	return result
}

type userResult struct {
	userID  string
	alerted bool
	stage   string
	err     error
}

func (j *SweepJob) sweepWorker(ctx context.Context, users <-chan *user.User, results chan<- userResult, w *weather.Reading, aq *airquality.Reading) {
	for u := range users {
		select {
		case <-ctx.Done():
			return
		default:
			results <- j.evaluateUser(ctx, u, w, aq)
		}
	}
}

func (j *SweepJob) evaluateUser(ctx context.Context, u *user.User, w *weather.Reading, aq *airquality.Reading) userResult {
	result := userResult{userID: u.ID}

	userCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	assessment, err := j.engine.PredictRisk(u.RiskProfile(), w, aq)
	if err != nil {
		result.stage = "predict"
		result.err = err
		atomic.AddInt64(&j.metrics.FailedEvaluations, 1)
		return result
	}
	atomic.AddInt64(&j.metrics.UsersEvaluated, 1)

	if !j.config.Alertable(assessment.SeverityLevel) {
		return result
	}

	alert := &RiskAlert{
		UserID:          u.ID,
		Name:            u.Name,
		Phone:           u.Phone,
		Location:        u.Location,
		Language:        u.Language,
		RiskScore:       assessment.RiskScore,
		SeverityLevel:   assessment.SeverityLevel,
		Recommendations: assessment.Recommendations,
		GeneratedAt:     time.Now().UTC(),
	}

	if j.publisher == nil {
		j.logger.Warn().Str("user_id", u.ID).Msg("no alert publisher configured, dropping alert")
		return result
	}

	if err := j.publisher.Publish(userCtx, alert); err != nil {
		result.stage = "publish"
		result.err = err
		atomic.AddInt64(&j.metrics.PublishFailures, 1)
		return result
	}

	atomic.AddInt64(&j.metrics.AlertsPublished, 1)
	result.alerted = true

	j.logger.Info().
		Str("user_id", u.ID).
		Float64("risk_score", assessment.RiskScore).
		Str("severity", string(assessment.SeverityLevel)).
		Msg("risk alert published")

	return result
}

func (j *SweepJob) listUsers(ctx context.Context) ([]*user.User, error) {
	if j.userService == nil {
		return nil, nil
	}
	return j.userService.List(ctx)
}

func (j *SweepJob) fetchConditions(ctx context.Context) (*weather.Reading, *airquality.Reading, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	w, err := j.weatherService.GetCurrent(fetchCtx, j.config.Latitude, j.config.Longitude)
	if err != nil {
		return nil, nil, err
	}

	aq, err := j.airQualityService.GetCurrent(fetchCtx, j.config.Latitude, j.config.Longitude)
	if err != nil {
		return nil, nil, err
	}

	return w, aq, nil
}

func (j *SweepJob) finish(result *SweepResult) {
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	j.metrics.mu.Lock()
	defer j.metrics.mu.Unlock()

	j.metrics.TotalSweeps++
	j.metrics.LastSweepAt = result.EndTime
	j.metrics.LastSweepDuration = result.Duration
	j.metrics.TotalDuration += result.Duration
}

// GetMetrics returns a copy of the current metrics.
func (j *SweepJob) GetMetrics() SweepMetrics {
	j.metrics.mu.RLock()
	defer j.metrics.mu.RUnlock()

	return SweepMetrics{
		TotalSweeps:       j.metrics.TotalSweeps,
		UsersEvaluated:    atomic.LoadInt64(&j.metrics.UsersEvaluated),
		FailedEvaluations: atomic.LoadInt64(&j.metrics.FailedEvaluations),
		AlertsPublished:   atomic.LoadInt64(&j.metrics.AlertsPublished),
		PublishFailures:   atomic.LoadInt64(&j.metrics.PublishFailures),
		LastSweepAt:       j.metrics.LastSweepAt,
		LastSweepDuration: j.metrics.LastSweepDuration,
		TotalDuration:     j.metrics.TotalDuration,
	}
}

// MetricsSnapshot returns a snapshot of the current metrics as a map.
func (j *SweepJob) MetricsSnapshot() map[string]interface{} {
	m := j.GetMetrics()
	return map[string]interface{}{
		"total_sweeps":        m.TotalSweeps,
		"users_evaluated":     m.UsersEvaluated,
		"failed_evaluations":  m.FailedEvaluations,
		"alerts_published":    m.AlertsPublished,
		"publish_failures":    m.PublishFailures,
		"last_sweep_at":       m.LastSweepAt,
		"last_sweep_duration": m.LastSweepDuration.String(),
		"total_duration":      m.TotalDuration.String(),
	}
}
