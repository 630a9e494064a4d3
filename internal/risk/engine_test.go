package risk_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Princebca/heatshield-backend/internal/risk"
)

func TestEngine_NotReadyBeforeBootstrap(t *testing.T) {
	engine := risk.NewEngine(risk.EngineConfig{Logger: zerolog.Nop()})

	assert.False(t, engine.Ready())

	_, err := engine.PredictRisk(risk.Profile{}, testWeather(), testAir())
	assert.ErrorIs(t, err, risk.ErrModelNotReady)
}

func TestEngine_BootstrapTrainsAndPredicts(t *testing.T) {
	engine := risk.NewEngine(risk.EngineConfig{Logger: zerolog.Nop()})
	engine.Bootstrap()

	require.True(t, engine.Ready())

	assessment, err := engine.PredictRisk(risk.Profile{
		Age:              float64Ptr(65),
		HealthConditions: []string{"asthma"},
	}, testWeather(), testAir())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, assessment.RiskScore, 0.0)
	assert.LessOrEqual(t, assessment.RiskScore, 10.0)
	assert.Equal(t, risk.SeverityFor(assessment.RiskScore), assessment.SeverityLevel)
	assert.Equal(t, testWeather().Timestamp, assessment.Timestamp)
	assert.NotEmpty(t, assessment.Recommendations)
}

func TestEngine_BootstrapPersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "risk_model.gob")

	first := risk.NewEngine(risk.EngineConfig{
		ModelPath:     path,
		UsePretrained: true,
		Logger:        zerolog.Nop(),
	})
	first.Bootstrap()
	require.True(t, first.Ready())
	require.FileExists(t, path)

	second := risk.NewEngine(risk.EngineConfig{
		ModelPath:     path,
		UsePretrained: true,
		Logger:        zerolog.Nop(),
	})
	second.Bootstrap()
	require.True(t, second.Ready())

	a1, err := first.PredictRisk(risk.Profile{}, testWeather(), testAir())
	require.NoError(t, err)
	a2, err := second.PredictRisk(risk.Profile{}, testWeather(), testAir())
	require.NoError(t, err)

	assert.Equal(t, a1.RiskScore, a2.RiskScore)
}

func TestEngine_PredictValidationError(t *testing.T) {
	engine := risk.NewEngine(risk.EngineConfig{Logger: zerolog.Nop()})
	engine.Bootstrap()

	_, err := engine.PredictRisk(risk.Profile{}, nil, testAir())
	require.Error(t, err)

	var verr *risk.ValidationError
	assert.ErrorAs(t, err, &verr)
}
