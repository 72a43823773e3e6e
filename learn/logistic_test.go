package learn

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"creditcore/risk"
)

func TestLogistic_Separable(t *testing.T) {
	x, y := twoClusterData(100, 19)

	model := NewLogistic(1.0, 1000)
	assert.NoError(t, model.Fit(x, y))

	coef, err := model.Coefficients()
	assert.NoError(t, err)
	assert.Equal(t, 3, len(coef))
	// the separating feature dominates the constant column
	assert.True(t, coef[0] > 0)
	assert.True(t, math.Abs(coef[2]) < coef[0])

	proba, err := model.PredictProba(x)
	assert.NoError(t, err)

	var posMean, negMean float64
	var pos, neg int
	for i, p := range proba {
		assert.True(t, p >= 0 && p <= 1)
		if y[i] == 1 {
			posMean += p
			pos++
		} else {
			negMean += p
			neg++
		}
	}
	assert.True(t, posMean/float64(pos) > negMean/float64(neg))

	assert.True(t, model.Iterations() >= 1)
	assert.True(t, model.Iterations() <= 1000)
}

func TestLogistic_Deterministic(t *testing.T) {
	x, y := twoClusterData(60, 23)

	first := NewLogistic(1.0, 500)
	assert.NoError(t, first.Fit(x, y))
	second := NewLogistic(1.0, 500)
	assert.NoError(t, second.Fit(x, y))

	coefA, err := first.Coefficients()
	assert.NoError(t, err)
	coefB, err := second.Coefficients()
	assert.NoError(t, err)
	assert.Equal(t, coefA, coefB)
}

func TestLogistic_RegularizationPath(t *testing.T) {
	x, y := twoClusterData(100, 29)

	nonZero := func(c float64) int {
		model := NewLogistic(c, 1000)
		assert.NoError(t, model.Fit(x, y))
		coef, err := model.Coefficients()
		assert.NoError(t, err)
		count := 0
		for _, w := range coef {
			if w != 0 {
				count++
			}
		}
		return count
	}

	// a stronger penalty never keeps more features
	assert.True(t, nonZero(0.001) <= nonZero(10.0))
}

func TestLogistic_Errors(t *testing.T) {
	model := NewLogistic(1.0, 100)
	assert.True(t, errors.Is(model.Fit([][]float64{}, []int{}), risk.ErrEmptyInput))
	assert.True(t, errors.Is(model.Fit([][]float64{{1}}, []int{0, 1}), risk.ErrLengthMismatch))

	bad := NewLogistic(0, 100)
	assert.True(t, errors.Is(bad.Fit([][]float64{{1}}, []int{1}), risk.ErrInvalidParameter))

	_, err := model.PredictProba([][]float64{{1}})
	assert.True(t, errors.Is(err, risk.ErrMissingCapability))
	_, err = model.Coefficients()
	assert.True(t, errors.Is(err, risk.ErrMissingCapability))
}

func TestBinomQuantile(t *testing.T) {

	type test struct {
		n        int
		p        float64
		q        float64
		expected float64
	}

	tests := map[string]test{
		"hundred": {n: 100, p: 0.5, q: 0.95, expected: 58},
		"twenty":  {n: 20, p: 0.5, q: 0.95, expected: 14},
		"median":  {n: 20, p: 0.5, q: 0.5, expected: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BinomQuantile(tt.n, tt.p, tt.q))
		})
	}
}

func TestBinomQuantile_Monotone(t *testing.T) {
	previous := 0.0
	for _, q := range []float64{0.5, 0.8, 0.9, 0.95, 0.99} {
		k := BinomQuantile(100, 0.5, q)
		assert.True(t, k >= previous)
		previous = k
	}
}
