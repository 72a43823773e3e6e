package eval

import (
	"fmt"
	"math"

	"creditcore/risk"
)

// ThresholdResult bundles the metrics of a single decision threshold.
// YoudenJ is always sensitivity + specificity - 1.
type ThresholdResult struct {
	Threshold   float64
	Sensitivity float64
	Specificity float64
	YoudenJ     float64
	Precision   float64
	F1          float64
}

// FindOptimalThreshold searches the ROC sweep for the threshold maximizing
// Youden's J = tpr - fpr. Ties keep the first occurrence, which is the
// highest threshold in the descending sweep. Precision and F1 are recomputed
// from predictions at the chosen threshold, since the sweep does not carry
// them. Non-finite values at the sweep boundaries are coerced: threshold
// falls back to 0.5, tpr/fpr/J to 0.
func FindOptimalThreshold(labels []int, proba []float64) (ThresholdResult, error) {
	curve, err := ROC(labels, proba)
	if err != nil {
		return ThresholdResult{}, err
	}

	best := 0
	bestJ := math.Inf(-1)
	for i := range curve.TPR {
		j := curve.TPR[i] - curve.FPR[i]
		if j > bestJ {
			bestJ = j
			best = i
		}
	}

	threshold := curve.Thresholds[best]
	if math.IsInf(threshold, 0) || math.IsNaN(threshold) {
		threshold = 0.5
	}
	tpr := coerceFinite(curve.TPR[best])
	fpr := coerceFinite(curve.FPR[best])
	youden := coerceFinite(curve.TPR[best] - curve.FPR[best])

	cm, err := NewConfusionMatrix(labels, predict(proba, threshold))
	if err != nil {
		return ThresholdResult{}, err
	}
	precision := ratio(cm.TruePositives, cm.TruePositives+cm.FalsePositives)

	return ThresholdResult{
		Threshold:   threshold,
		Sensitivity: tpr,
		Specificity: 1 - fpr,
		YoudenJ:     youden,
		Precision:   precision,
		F1:          f1(precision, tpr),
	}, nil
}

// EvaluateThreshold evaluates a caller-supplied threshold directly from the
// confusion matrix. Zero denominators map to 0; Youden's J is computed from
// sensitivity and specificity rather than read off a sweep.
func EvaluateThreshold(labels []int, proba []float64, threshold float64) (ThresholdResult, error) {
	if threshold < 0 || threshold > 1 || math.IsNaN(threshold) {
		return ThresholdResult{}, fmt.Errorf("threshold=%f: %w", threshold, risk.ErrInvalidThreshold)
	}
	if err := risk.CheckSeries(labels, proba); err != nil {
		return ThresholdResult{}, err
	}

	cm, err := NewConfusionMatrix(labels, predict(proba, threshold))
	if err != nil {
		return ThresholdResult{}, err
	}

	sensitivity := ratio(cm.TruePositives, cm.TruePositives+cm.FalseNegatives)
	specificity := ratio(cm.TrueNegatives, cm.TrueNegatives+cm.FalsePositives)
	precision := ratio(cm.TruePositives, cm.TruePositives+cm.FalsePositives)

	return ThresholdResult{
		Threshold:   threshold,
		Sensitivity: sensitivity,
		Specificity: specificity,
		YoudenJ:     sensitivity + specificity - 1,
		Precision:   precision,
		F1:          f1(precision, sensitivity),
	}, nil
}

func coerceFinite(f float64) float64 {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func f1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}
