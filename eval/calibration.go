package eval

import (
	"fmt"

	"creditcore/risk"
)

// CalibrationCurve compares predicted probabilities against observed default
// frequencies in equal-width probability bins. Empty bins are omitted, so
// the parallel arrays may be shorter than Bins.
type CalibrationCurve struct {
	ProbTrue []float64
	ProbPred []float64
	Bins     int
}

// Calibration bins probabilities into bins equal-width intervals over [0,1]
// and reports, per non-empty bin, the mean predicted probability and the
// observed positive fraction.
func Calibration(labels []int, proba []float64, bins int) (CalibrationCurve, error) {
	if bins < 1 {
		return CalibrationCurve{}, fmt.Errorf("bins=%d: %w", bins, risk.ErrInvalidParameter)
	}
	if err := risk.CheckSeries(labels, proba); err != nil {
		return CalibrationCurve{}, err
	}
	if err := risk.CheckBinary(labels); err != nil {
		return CalibrationCurve{}, err
	}

	sums := make([]float64, bins)
	hits := make([]float64, bins)
	counts := make([]int, bins)
	for i, p := range proba {
		b := int(p * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		if b < 0 {
			b = 0
		}
		sums[b] += p
		hits[b] += float64(labels[i])
		counts[b]++
	}

	curve := CalibrationCurve{Bins: bins}
	for b := 0; b < bins; b++ {
		if counts[b] == 0 {
			continue
		}
		curve.ProbPred = append(curve.ProbPred, sums[b]/float64(counts[b]))
		curve.ProbTrue = append(curve.ProbTrue, hits[b]/float64(counts[b]))
	}
	return curve, nil
}
