package eval

import (
	"fmt"
	"math"

	"creditcore/risk"
)

// Confidence scores each probability by its distance from the decision
// boundary, normalized by the larger of the two maximal distances, so a
// prediction exactly at the threshold scores 0.
func Confidence(proba []float64, threshold float64) ([]float64, error) {
	if threshold < 0 || threshold > 1 || math.IsNaN(threshold) {
		return nil, fmt.Errorf("threshold=%f: %w", threshold, risk.ErrInvalidThreshold)
	}
	if len(proba) == 0 {
		return nil, fmt.Errorf("probabilities: %w", risk.ErrEmptyInput)
	}

	maxDistance := threshold
	if 1-threshold > maxDistance {
		maxDistance = 1 - threshold
	}

	confidence := make([]float64, len(proba))
	for i, p := range proba {
		confidence[i] = math.Abs(p-threshold) / maxDistance
	}
	return confidence, nil
}
