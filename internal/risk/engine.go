package risk

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

// EngineConfig holds configuration for the risk engine.
type EngineConfig struct {
	// ModelPath is where the serialized model artifact lives.
	ModelPath string

	// UsePretrained enables loading a persisted artifact instead of
	// retraining on every start.
	UsePretrained bool

	// Logger for engine operations.
	Logger zerolog.Logger
}

// Engine owns the classifier artifact and serves risk predictions.
// The artifact is published exactly once by Bootstrap and read-only
// afterwards, so concurrent inference needs no locking.
type Engine struct {
	modelPath     string
	usePretrained bool
	logger        zerolog.Logger

	artifact atomic.Pointer[Artifact]
}

// NewEngine creates an engine. Predictions fail with ErrModelNotReady until
// Bootstrap has run.
func NewEngine(cfg EngineConfig) *Engine {
	return &Engine{
		modelPath:     cfg.ModelPath,
		usePretrained: cfg.UsePretrained,
		logger:        cfg.Logger,
	}
}

// Bootstrap loads the persisted artifact if enabled and present, falling
// back to synthesis and training on any load failure. Training results are
// persisted best-effort; persistence failures are logged and never fatal.
// Bootstrap is idempotent: a second call replaces the artifact with an
// equivalent one.
func (e *Engine) Bootstrap() {
	if e.usePretrained && e.modelPath != "" {
		if _, err := os.Stat(e.modelPath); err == nil {
			artifact, err := LoadArtifact(e.modelPath)
			if err == nil {
				e.artifact.Store(artifact)
				e.logger.Info().
					Str("path", e.modelPath).
					Time("trained_at", artifact.TrainedAt).
					Msg("loaded pretrained risk model")
				return
			}
			e.logger.Warn().Err(err).
				Str("path", e.modelPath).
				Msg("could not load pretrained model, training new one")
		}
	}

	e.logger.Info().
		Int("samples", TrainSamples).
		Int64("seed", TrainSeed).
		Msg("training risk model on synthetic data")

	artifact := Train()

	if e.modelPath != "" {
		if err := artifact.Save(e.modelPath); err != nil {
			e.logger.Warn().Err(err).
				Str("path", e.modelPath).
				Msg("could not save risk model")
		} else {
			e.logger.Info().Str("path", e.modelPath).Msg("risk model trained and saved")
		}
	}

	// Publish only the fully constructed artifact.
	e.artifact.Store(artifact)
}

// Ready reports whether the engine can serve predictions.
func (e *Engine) Ready() bool {
	return e.artifact.Load() != nil
}

// PredictRisk vectorizes the inputs, scores them with the trained
// classifier and attaches severity band and advisories. The assessment
// timestamp is copied from the weather reading.
func (e *Engine) PredictRisk(profile Profile, w *weather.Reading, aq *airquality.Reading) (*RiskAssessment, error) {
	artifact := e.artifact.Load()
	if artifact == nil {
		return nil, ErrModelNotReady
	}

	features, err := Vectorize(profile, w, aq)
	if err != nil {
		return nil, err
	}

	score := artifact.Score(features)

	return &RiskAssessment{
		RiskScore:       score,
		SeverityLevel:   SeverityFor(score),
		Recommendations: Recommend(score, profile, w, aq),
		Timestamp:       w.Timestamp,
	}, nil
}
