package eval

import (
	"fmt"

	"creditcore/risk"
)

// ConfusionMatrix is the 2x2 count matrix [[TN, FP], [FN, TP]] with the four
// counts broken out. The counts always sum to the number of samples.
type ConfusionMatrix struct {
	Matrix         [2][2]int
	TrueNegatives  int
	FalsePositives int
	FalseNegatives int
	TruePositives  int
}

// NewConfusionMatrix tallies binary predictions against binary labels.
func NewConfusionMatrix(labels, predictions []int) (ConfusionMatrix, error) {
	if len(labels) == 0 || len(predictions) == 0 {
		return ConfusionMatrix{}, fmt.Errorf("labels=%d predictions=%d: %w", len(labels), len(predictions), risk.ErrEmptyInput)
	}
	if len(labels) != len(predictions) {
		return ConfusionMatrix{}, fmt.Errorf("labels=%d predictions=%d: %w", len(labels), len(predictions), risk.ErrLengthMismatch)
	}
	if err := risk.CheckBinary(labels); err != nil {
		return ConfusionMatrix{}, err
	}
	if err := risk.CheckBinary(predictions); err != nil {
		return ConfusionMatrix{}, err
	}

	var cm ConfusionMatrix
	for i, y := range labels {
		switch {
		case y == 0 && predictions[i] == 0:
			cm.TrueNegatives++
		case y == 0 && predictions[i] == 1:
			cm.FalsePositives++
		case y == 1 && predictions[i] == 0:
			cm.FalseNegatives++
		default:
			cm.TruePositives++
		}
	}
	cm.Matrix = [2][2]int{
		{cm.TrueNegatives, cm.FalsePositives},
		{cm.FalseNegatives, cm.TruePositives},
	}
	return cm, nil
}

// predict applies the decision rule: positive iff probability >= threshold.
func predict(proba []float64, threshold float64) []int {
	predictions := make([]int, len(proba))
	for i, p := range proba {
		if p >= threshold {
			predictions[i] = 1
		}
	}
	return predictions
}
