package risk

import "math/rand"

// Training constants. The fixed seed makes dataset synthesis, labeling and
// model fitting reproducible end to end.
const (
	TrainSeed    int64 = 42
	TrainSamples       = 1000
)

// SyntheticDataset generates n labeled training samples. Each sample draws
// nine independent uniform variates rescaled into realistic feature domains;
// the label is the deterministic rule score plus a bounded perturbation in
// {-1, 0, +1}, clipped to [0, 10].
func SyntheticDataset(seed int64, n int) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))

	X := make([][]float64, n)
	y := make([]int, n)

	for i := 0; i < n; i++ {
		row := []float64{
			rng.Float64()*25 + 20, // temperature: 20-45 °C
			rng.Float64()*30 + 25, // heat index: 25-55 °C
			rng.Float64()*60 + 20, // humidity: 20-80 %
			rng.Float64() * 11,    // uv index: 0-11
			rng.Float64() * 400,   // aqi: 0-400
			rng.Float64() * 200,   // pm2.5: 0-200
			rng.Float64()*60 + 18, // age: 18-78
			rng.Float64() * 12,    // outdoor hours: 0-12
			float64(rng.Intn(2)),  // health conditions: 0 or 1
		}
		X[i] = row

		label := RuleScore(row) + rng.Intn(3) - 1
		if label < 0 {
			label = 0
		}
		if label > 10 {
			label = 10
		}
		y[i] = label
	}

	return X, y
}

// RuleScore computes the deterministic label rule over raw (unscaled)
// features. It is a pure function of the feature vector and must match the
// labeling used for any reference dataset.
func RuleScore(features []float64) int {
	temperature := features[0]
	uvIndex := features[3]
	aqi := features[4]
	age := features[6]
	outdoorHours := features[7]
	healthConditions := features[8]

	risk := 0

	switch {
	case temperature > 40:
		risk += 3
	case temperature > 35:
		risk += 2
	case temperature > 32:
		risk++
	}

	switch {
	case aqi > 300:
		risk += 3
	case aqi > 200:
		risk += 2
	case aqi > 100:
		risk++
	}

	if uvIndex > 8 {
		risk++
	}

	if age > 60 || healthConditions == 1 {
		risk++
	}

	if outdoorHours > 6 {
		risk++
	}

	return risk
}

// Train synthesizes the dataset, fits the scaler and the forest, and
// returns the completed artifact.
func Train() *Artifact {
	X, y := SyntheticDataset(TrainSeed, TrainSamples)

	scaler := FitScaler(X)
	scaled := scaler.TransformAll(X)

	forest := NewForest(DefaultForestConfig())
	forest.Fit(scaled, y)

	return NewArtifact(forest, scaler)
}
