// Package eval implements the evaluation primitives and the threshold
// engine for binary default classifiers: ROC sweep, confusion matrix,
// calibration curve, confidence scoring and Youden's J threshold search.
// All functions are pure and stateless; they validate at the boundary and
// never substitute defaults for malformed input.
package eval

import (
	"math"
	"sort"

	"creditcore/risk"
)

// ROCCurve holds the parallel sweep arrays. Thresholds are descending,
// starting with +Inf so the curve begins at (0,0).
type ROCCurve struct {
	FPR        []float64
	TPR        []float64
	Thresholds []float64
}

// ROC computes the ROC curve with a sorted-by-score threshold sweep.
// One point is emitted per distinct probability value. Labels must contain
// both classes.
func ROC(labels []int, proba []float64) (ROCCurve, error) {
	if err := risk.CheckSeries(labels, proba); err != nil {
		return ROCCurve{}, err
	}
	if err := risk.CheckBinary(labels); err != nil {
		return ROCCurve{}, err
	}
	if err := risk.CheckTwoClasses(labels); err != nil {
		return ROCCurve{}, err
	}

	order := make([]int, len(proba))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return proba[order[i]] > proba[order[j]]
	})

	var pos, neg int
	for _, y := range labels {
		if y == 1 {
			pos++
		} else {
			neg++
		}
	}

	curve := ROCCurve{
		FPR:        []float64{0},
		TPR:        []float64{0},
		Thresholds: []float64{math.Inf(1)},
	}

	var tp, fp int
	for k, idx := range order {
		if labels[idx] == 1 {
			tp++
		} else {
			fp++
		}
		// emit a point only once the score changes, so ties share one point
		if k+1 < len(order) && proba[order[k+1]] == proba[idx] {
			continue
		}
		curve.FPR = append(curve.FPR, float64(fp)/float64(neg))
		curve.TPR = append(curve.TPR, float64(tp)/float64(pos))
		curve.Thresholds = append(curve.Thresholds, proba[idx])
	}

	return curve, nil
}

// AUC integrates the curve over FPR with the trapezoid rule.
func AUC(curve ROCCurve) float64 {
	area := 0.0
	for i := 1; i < len(curve.FPR); i++ {
		area += (curve.FPR[i] - curve.FPR[i-1]) * (curve.TPR[i] + curve.TPR[i-1]) / 2
	}
	return area
}
