package risk

import (
	"math"
	"math/rand"
	"sort"
)

// Scorer is the polymorphic classifier capability behind the risk engine.
// Any statistical model may be substituted as long as it is trained on the
// same synthetic-data procedure and predicts deterministically for a fixed
// seed.
type Scorer interface {
	// Fit trains the model on feature matrix X and integer labels y.
	Fit(X [][]float64, y []int)

	// Predict returns the risk score for a single feature vector.
	Predict(x []float64) float64
}

// ForestConfig holds hyperparameters for the random forest.
type ForestConfig struct {
	// NumTrees is the ensemble size (default: 100).
	NumTrees int

	// MaxDepth bounds tree depth (default: 10).
	MaxDepth int

	// NumClasses is the number of label classes (default: 11 for scores 0-10).
	NumClasses int

	// Seed drives all random draws during training. Identical seeds and
	// training data produce identical forests.
	Seed int64
}

// DefaultForestConfig returns the hyperparameters the engine trains with.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		NumTrees:   100,
		MaxDepth:   10,
		NumClasses: 11,
		Seed:       TrainSeed,
	}
}

// Forest is a random forest classifier over integer risk labels.
// All fields are exported for gob serialization of the model artifact.
type Forest struct {
	NumTrees   int
	MaxDepth   int
	NumClasses int
	Seed       int64
	Trees      []*TreeNode
}

// TreeNode is one node of a decision tree. Leaf nodes carry the predicted
// class; internal nodes route on Feature <= Threshold.
type TreeNode struct {
	Feature   int
	Threshold float64
	Left      *TreeNode
	Right     *TreeNode
	Leaf      bool
	Class     int
}

// NewForest creates an untrained forest with the given configuration.
func NewForest(cfg ForestConfig) *Forest {
	if cfg.NumTrees <= 0 {
		cfg.NumTrees = 100
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 10
	}
	if cfg.NumClasses <= 0 {
		cfg.NumClasses = 11
	}
	return &Forest{
		NumTrees:   cfg.NumTrees,
		MaxDepth:   cfg.MaxDepth,
		NumClasses: cfg.NumClasses,
		Seed:       cfg.Seed,
	}
}

// Fit trains the ensemble: each tree grows on a bootstrap sample of X with
// a random feature subset considered at every split. A fixed seed makes the
// whole procedure reproducible.
func (f *Forest) Fit(X [][]float64, y []int) {
	rng := rand.New(rand.NewSource(f.Seed))
	n := len(X)
	mtry := int(math.Sqrt(float64(len(X[0]))))
	if mtry < 1 {
		mtry = 1
	}

	f.Trees = make([]*TreeNode, f.NumTrees)
	for t := 0; t < f.NumTrees; t++ {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = rng.Intn(n)
		}
		f.Trees[t] = f.growTree(X, y, indices, 0, mtry, rng)
	}
}

// Predict returns the majority-vote class as a float score.
// Ties resolve to the lowest class for determinism.
func (f *Forest) Predict(x []float64) float64 {
	votes := make([]int, f.NumClasses)
	for _, root := range f.Trees {
		votes[predictTree(root, x)]++
	}

	best := 0
	for c := 1; c < len(votes); c++ {
		if votes[c] > votes[best] {
			best = c
		}
	}
	return float64(best)
}

func predictTree(node *TreeNode, x []float64) int {
	for !node.Leaf {
		if x[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Class
}

// growTree builds one CART tree over the sample indices.
func (f *Forest) growTree(X [][]float64, y []int, indices []int, depth, mtry int, rng *rand.Rand) *TreeNode {
	counts := f.classCounts(y, indices)

	if depth >= f.MaxDepth || len(indices) < 2 || isPure(counts) {
		return &TreeNode{Leaf: true, Class: majorityClass(counts)}
	}

	feature, threshold, ok := f.bestSplit(X, y, indices, mtry, rng)
	if !ok {
		return &TreeNode{Leaf: true, Class: majorityClass(counts)}
	}

	var left, right []int
	for _, i := range indices {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &TreeNode{Leaf: true, Class: majorityClass(counts)}
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      f.growTree(X, y, left, depth+1, mtry, rng),
		Right:     f.growTree(X, y, right, depth+1, mtry, rng),
	}
}

// bestSplit searches a random feature subset for the split minimizing the
// weighted gini impurity. Candidate thresholds are midpoints between
// consecutive distinct sample values.
func (f *Forest) bestSplit(X [][]float64, y []int, indices []int, mtry int, rng *rand.Rand) (int, float64, bool) {
	dims := len(X[0])
	candidates := rng.Perm(dims)[:mtry]
	sort.Ints(candidates)

	bestGini := math.Inf(1)
	bestFeature := -1
	bestThreshold := 0.0

	values := make([]float64, 0, len(indices))
	for _, feature := range candidates {
		values = values[:0]
		for _, i := range indices {
			values = append(values, X[i][feature])
		}
		sort.Float64s(values)

		for k := 1; k < len(values); k++ {
			if values[k] == values[k-1] {
				continue
			}
			threshold := (values[k] + values[k-1]) / 2

			gini := f.splitGini(X, y, indices, feature, threshold)
			if gini < bestGini {
				bestGini = gini
				bestFeature = feature
				bestThreshold = threshold
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

// splitGini computes the weighted gini impurity of a candidate split.
func (f *Forest) splitGini(X [][]float64, y []int, indices []int, feature int, threshold float64) float64 {
	leftCounts := make([]int, f.NumClasses)
	rightCounts := make([]int, f.NumClasses)
	leftN, rightN := 0, 0

	for _, i := range indices {
		if X[i][feature] <= threshold {
			leftCounts[y[i]]++
			leftN++
		} else {
			rightCounts[y[i]]++
			rightN++
		}
	}

	total := float64(leftN + rightN)
	return float64(leftN)/total*gini(leftCounts, leftN) +
		float64(rightN)/total*gini(rightCounts, rightN)
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	impurity := 1.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		impurity -= p * p
	}
	return impurity
}

func (f *Forest) classCounts(y []int, indices []int) []int {
	counts := make([]int, f.NumClasses)
	for _, i := range indices {
		counts[y[i]]++
	}
	return counts
}

func isPure(counts []int) bool {
	nonZero := 0
	for _, c := range counts {
		if c > 0 {
			nonZero++
		}
	}
	return nonZero <= 1
}

func majorityClass(counts []int) int {
	best := 0
	for c := 1; c < len(counts); c++ {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

// Ensure Forest implements the Scorer capability.
var _ Scorer = (*Forest)(nil)
