package learn

import (
	"fmt"
	"math"
	"math/rand"

	"creditcore/risk"
)

// Forest is a bagged ensemble of seeded decision trees. It is the default
// importance-reporting backend: the bootstrap draws and per-tree seeds all
// derive from one seed, so identical inputs produce bit-identical fits,
// importances and probabilities.
type Forest struct {
	Trees           int
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int // <= 0 uses sqrt(n_features)

	seed        int64
	trees       []*DecisionTree
	importances []float64
}

func NewForest(trees int, seed int64) *Forest {
	return &Forest{
		Trees:           trees,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		seed:            seed,
	}
}

func (rf *Forest) Fit(x [][]float64, y []int) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrEmptyInput)
	}
	if len(x) != len(y) {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrLengthMismatch)
	}

	n := len(x)
	features := len(x[0])
	maxFeatures := rf.MaxFeatures
	if maxFeatures <= 0 {
		maxFeatures = int(math.Max(1, math.Sqrt(float64(features))))
	}

	rng := rand.New(rand.NewSource(rf.seed))
	rf.trees = make([]*DecisionTree, 0, rf.Trees)
	rf.importances = make([]float64, features)

	for k := 0; k < rf.Trees; k++ {
		xb := make([][]float64, n)
		yb := make([]int, n)
		for i := 0; i < n; i++ {
			j := rng.Intn(n)
			xb[i] = x[j]
			yb[i] = y[j]
		}
		tree := NewDecisionTree(rng.Int63())
		tree.MaxDepth = rf.MaxDepth
		tree.MinSamplesSplit = rf.MinSamplesSplit
		tree.MaxFeatures = maxFeatures
		if err := tree.Fit(xb, yb); err != nil {
			return fmt.Errorf("tree %d: %w", k, err)
		}
		rf.trees = append(rf.trees, tree)
		for i, imp := range tree.importances {
			rf.importances[i] += imp
		}
	}
	normalize(rf.importances)
	return nil
}

func (rf *Forest) PredictProba(x [][]float64) ([]float64, error) {
	if len(rf.trees) == 0 {
		return nil, fmt.Errorf("forest not fitted: %w", risk.ErrMissingCapability)
	}
	out := make([]float64, len(x))
	for _, tree := range rf.trees {
		pp, err := tree.PredictProba(x)
		if err != nil {
			return nil, err
		}
		for i, p := range pp {
			out[i] += p
		}
	}
	for i := range out {
		out[i] /= float64(len(rf.trees))
	}
	return out, nil
}

// FeatureImportances reports the normalized mean impurity-decrease
// importances over all trees.
func (rf *Forest) FeatureImportances() ([]float64, error) {
	if len(rf.trees) == 0 {
		return nil, fmt.Errorf("forest not fitted: %w", risk.ErrMissingCapability)
	}
	return append([]float64{}, rf.importances...), nil
}
