package risk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSeries(t *testing.T) {

	type test struct {
		labels []int
		proba  []float64
		err    error
	}

	tests := map[string]test{
		"valid": {
			labels: []int{0, 1},
			proba:  []float64{0.2, 0.8},
		},
		"empty": {
			labels: []int{},
			proba:  []float64{},
			err:    ErrEmptyInput,
		},
		"mismatch": {
			labels: []int{0, 1, 1},
			proba:  []float64{0.2, 0.8},
			err:    ErrLengthMismatch,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := CheckSeries(tt.labels, tt.proba)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.err))
			}
		})
	}
}

func TestCheckBinary(t *testing.T) {
	assert.NoError(t, CheckBinary([]int{0, 1, 0}))
	assert.True(t, errors.Is(CheckBinary([]int{0, 2}), ErrInvalidParameter))
}

func TestCheckTwoClasses(t *testing.T) {
	assert.NoError(t, CheckTwoClasses([]int{0, 1}))
	assert.True(t, errors.Is(CheckTwoClasses([]int{1, 1, 1}), ErrDegenerateLabels))
	assert.True(t, errors.Is(CheckTwoClasses([]int{0, 0}), ErrDegenerateLabels))
}

func TestCheckMatrix(t *testing.T) {

	type test struct {
		x      [][]float64
		labels []int
		names  []string
		err    error
	}

	tests := map[string]test{
		"valid": {
			x:      [][]float64{{1, 2}, {3, 4}},
			labels: []int{0, 1},
			names:  []string{"a", "b"},
		},
		"empty": {
			x:      [][]float64{},
			labels: []int{},
			names:  []string{"a"},
			err:    ErrEmptyInput,
		},
		"label-mismatch": {
			x:      [][]float64{{1, 2}},
			labels: []int{0, 1},
			names:  []string{"a", "b"},
			err:    ErrLengthMismatch,
		},
		"ragged": {
			x:      [][]float64{{1, 2}, {3}},
			labels: []int{0, 1},
			names:  []string{"a", "b"},
			err:    ErrLengthMismatch,
		},
		"name-mismatch": {
			x:      [][]float64{{1, 2}, {3, 4}},
			labels: []int{0, 1},
			names:  []string{"a"},
			err:    ErrLengthMismatch,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := CheckMatrix(tt.x, tt.labels, tt.names)
			if tt.err == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.err))
			}
		})
	}
}
