package learn

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"creditcore/risk"
)

// twoClusterData generates a separable two-feature sample plus a constant
// third column that carries no signal.
func twoClusterData(n int, seed int64) ([][]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	x := make([][]float64, n)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		y[i] = i % 2
		shift := float64(y[i]) * 3
		x[i] = []float64{
			shift + rng.NormFloat64()*0.5,
			rng.NormFloat64(),
			1.0,
		}
	}
	return x, y
}

func TestDecisionTree(t *testing.T) {
	x := [][]float64{{0}, {0.2}, {1}, {1.2}}
	y := []int{0, 0, 1, 1}

	tree := NewDecisionTree(42)
	assert.NoError(t, tree.Fit(x, y))

	proba, err := tree.PredictProba(x)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1}, proba)

	importances, err := tree.FeatureImportances()
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, importances[0], 1e-9)
}

func TestForest_Deterministic(t *testing.T) {
	x, y := twoClusterData(80, 7)

	first := NewForest(25, 99)
	assert.NoError(t, first.Fit(x, y))
	second := NewForest(25, 99)
	assert.NoError(t, second.Fit(x, y))

	probaA, err := first.PredictProba(x)
	assert.NoError(t, err)
	probaB, err := second.PredictProba(x)
	assert.NoError(t, err)
	assert.Equal(t, probaA, probaB)

	impA, err := first.FeatureImportances()
	assert.NoError(t, err)
	impB, err := second.FeatureImportances()
	assert.NoError(t, err)
	assert.Equal(t, impA, impB)
}

func TestForest_Importances(t *testing.T) {
	x, y := twoClusterData(100, 3)

	forest := NewForest(30, 11)
	assert.NoError(t, forest.Fit(x, y))

	importances, err := forest.FeatureImportances()
	assert.NoError(t, err)
	assert.Equal(t, 3, len(importances))

	sum := 0.0
	for _, imp := range importances {
		assert.True(t, imp >= 0)
		sum += imp
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	// the separating feature dominates, the constant one never splits
	assert.True(t, importances[0] > importances[1])
	assert.Equal(t, 0.0, importances[2])
}

func TestForest_Predictions(t *testing.T) {
	x, y := twoClusterData(100, 5)

	forest := NewForest(30, 21)
	assert.NoError(t, forest.Fit(x, y))

	proba, err := forest.PredictProba(x)
	assert.NoError(t, err)

	correct := 0
	for i, p := range proba {
		assert.True(t, p >= 0 && p <= 1)
		if (p >= 0.5) == (y[i] == 1) {
			correct++
		}
	}
	assert.True(t, correct >= 95)
}

func TestForest_NotFitted(t *testing.T) {
	forest := NewForest(10, 1)
	_, err := forest.PredictProba([][]float64{{1, 2, 3}})
	assert.Error(t, err)
	_, err = forest.FeatureImportances()
	assert.Error(t, err)
}

func TestForest_Errors(t *testing.T) {
	forest := NewForest(10, 1)
	assert.True(t, errors.Is(forest.Fit([][]float64{}, []int{}), risk.ErrEmptyInput))
	assert.True(t, errors.Is(forest.Fit([][]float64{{1}}, []int{0, 1}), risk.ErrLengthMismatch))
}

func TestTreeExplainer(t *testing.T) {
	x, y := twoClusterData(100, 13)

	forest := NewForest(30, 17)
	assert.NoError(t, forest.Fit(x, y))

	explainer := NewTreeExplainer(forest)
	attributions, err := explainer.Attributions(x)
	assert.NoError(t, err)
	assert.Equal(t, len(x), len(attributions))
	assert.Equal(t, 3, len(attributions[0]))

	// a feature that never splits attributes nothing
	meanAbs := make([]float64, 3)
	for _, row := range attributions {
		for j, a := range row {
			if a < 0 {
				a = -a
			}
			meanAbs[j] += a
		}
	}
	assert.True(t, meanAbs[0] > meanAbs[1])
	assert.Equal(t, 0.0, meanAbs[2])
}
