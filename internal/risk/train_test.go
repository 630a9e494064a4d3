package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Princebca/heatshield-backend/internal/risk"
)

func TestSyntheticDataset_Deterministic(t *testing.T) {
	x1, y1 := risk.SyntheticDataset(risk.TrainSeed, 200)
	x2, y2 := risk.SyntheticDataset(risk.TrainSeed, 200)

	require.Len(t, x1, 200)
	require.Len(t, y1, 200)
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}

func TestSyntheticDataset_LabelsAndDomains(t *testing.T) {
	X, y := risk.SyntheticDataset(risk.TrainSeed, risk.TrainSamples)

	for i, row := range X {
		require.Len(t, row, risk.FeatureCount)

		assert.GreaterOrEqual(t, row[0], 20.0, "temperature low bound")
		assert.LessOrEqual(t, row[0], 45.0, "temperature high bound")
		assert.GreaterOrEqual(t, row[4], 0.0, "aqi low bound")
		assert.LessOrEqual(t, row[4], 400.0, "aqi high bound")
		assert.Contains(t, []float64{0, 1}, row[8], "health flag")

		assert.GreaterOrEqual(t, y[i], 0)
		assert.LessOrEqual(t, y[i], 10)
	}
}

func TestRuleScore(t *testing.T) {
	tests := []struct {
		name     string
		features []float64
		expected int
	}{
		{
			name:     "benign conditions",
			features: []float64{28, 30, 50, 3, 80, 40, 30, 2, 0},
			expected: 0,
		},
		{
			name:     "moderate heat and pollution",
			features: []float64{36, 40, 60, 5, 150, 70, 30, 2, 0},
			expected: 3,
		},
		{
			name:     "extreme everything",
			features: []float64{45, 55, 80, 10, 420, 250, 70, 8, 1},
			expected: 9,
		},
		{
			name:     "health conditions only",
			features: []float64{26, 26, 40, 2, 60, 20, 25, 1, 1},
			expected: 1,
		},
		{
			name:     "elderly long outdoor hours",
			features: []float64{33, 36, 55, 9, 210, 90, 65, 7, 0},
			expected: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, risk.RuleScore(tt.features))
		})
	}
}

func TestForest_FitAndPredict(t *testing.T) {
	X, y := risk.SyntheticDataset(risk.TrainSeed, 300)

	scaler := risk.FitScaler(X)
	scaled := scaler.TransformAll(X)

	cfg := risk.DefaultForestConfig()
	cfg.NumTrees = 20
	forest := risk.NewForest(cfg)
	forest.Fit(scaled, y)

	require.Len(t, forest.Trees, 20)

	// Predictions on training data should track the generating rule closely.
	within := 0
	for i, row := range scaled {
		pred := forest.Predict(row)
		assert.GreaterOrEqual(t, pred, 0.0)
		assert.LessOrEqual(t, pred, 10.0)
		if diff := pred - float64(y[i]); diff >= -2 && diff <= 2 {
			within++
		}
	}
	assert.Greater(t, within, 240, "most training predictions within 2 of label")
}

func TestForest_DeterministicWithSeed(t *testing.T) {
	X, y := risk.SyntheticDataset(risk.TrainSeed, 150)
	scaler := risk.FitScaler(X)
	scaled := scaler.TransformAll(X)

	cfg := risk.DefaultForestConfig()
	cfg.NumTrees = 10

	f1 := risk.NewForest(cfg)
	f1.Fit(scaled, y)
	f2 := risk.NewForest(cfg)
	f2.Fit(scaled, y)

	for _, row := range scaled {
		assert.Equal(t, f1.Predict(row), f2.Predict(row))
	}
}

func TestFitScaler_ZeroVariance(t *testing.T) {
	X := [][]float64{
		{1, 5},
		{1, 7},
		{1, 9},
	}

	scaler := risk.FitScaler(X)

	assert.Equal(t, 1.0, scaler.Mean[0])
	assert.Equal(t, 1.0, scaler.Std[0], "zero variance column keeps std 1")

	scaled := scaler.Transform([]float64{1, 7})
	assert.Equal(t, 0.0, scaled[0])
	assert.InDelta(t, 0.0, scaled[1], 1e-9)
}
