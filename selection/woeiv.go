package selection

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Information Value interpretation bands, the standard credit-scoring
// cutoffs. An IV above the strong band usually means leakage rather than a
// genuinely strong feature.
const (
	IVUseless = 0.02
	IVWeak    = 0.1
	IVMedium  = 0.3
	IVStrong  = 0.5
)

// WoeIV rates each feature's separation power via Weight of Evidence /
// Information Value: label 0 is "good", label 1 is "bad", continuous
// features are cut into equal-frequency quantile bins, and bins missing
// either outcome are skipped to avoid log(0). Features with IV at or above
// the threshold are selected.
func WoeIV(x [][]float64, y []int, names []string, p WoeIVParams, _ int64) (Result, error) {
	if err := checkInputs(x, y, names); err != nil {
		return Result{}, err
	}
	if err := p.validate(len(names)); err != nil {
		return Result{}, err
	}

	scores := make([]float64, len(names))
	selected := make([]bool, len(names))
	meta := make([]map[string]interface{}, len(names))
	column := make([]float64, len(x))
	for j := range names {
		for i, row := range x {
			column[i] = row[j]
		}
		iv := infoValue(column, y, p.Bins)
		scores[j] = iv
		selected[j] = iv >= p.IVThreshold
		meta[j] = map[string]interface{}{"iv_category": ivCategory(iv)}
	}

	methodMeta := map[string]interface{}{
		"iv_threshold": p.IVThreshold,
		"n_bins":       p.Bins,
		"mean_iv":      stat.Mean(scores, nil),
		"max_iv":       floats.Max(scores),
	}
	return buildResult(MethodWoeIV, names, scores, selected, meta, methodMeta), nil
}

// infoValue computes the IV of one feature. Binary and one-hot features use
// their raw values as bins; continuous features use equal-frequency quantile
// bins with duplicate edges collapsed, so skewed columns may end up with
// fewer effective bins than requested.
func infoValue(values []float64, y []int, bins int) float64 {
	assignment := binAssignment(values, bins)

	totalGood, totalBad := 0, 0
	for _, label := range y {
		if label == 0 {
			totalGood++
		} else {
			totalBad++
		}
	}
	if totalGood == 0 {
		totalGood = 1
	}
	if totalBad == 0 {
		totalBad = 1
	}

	// dense per-bin counts keep the summation order fixed, so the float
	// accumulation is bit-identical across calls
	maxBin := 0
	for _, b := range assignment {
		if b > maxBin {
			maxBin = b
		}
	}
	good := make([]int, maxBin+1)
	bad := make([]int, maxBin+1)
	for i, b := range assignment {
		if y[i] == 0 {
			good[b]++
		} else {
			bad[b]++
		}
	}

	iv := 0.0
	for b, nGood := range good {
		nBad := bad[b]
		if nGood == 0 || nBad == 0 {
			continue
		}
		pctGood := float64(nGood) / float64(totalGood)
		pctBad := float64(nBad) / float64(totalBad)
		woe := math.Log(pctGood / pctBad)
		iv += (pctGood - pctBad) * woe
	}
	return iv
}

// binAssignment maps each value to a bin index.
func binAssignment(values []float64, bins int) []int {
	distinct := map[float64]int{}
	for _, v := range values {
		if _, ok := distinct[v]; !ok {
			distinct[v] = len(distinct)
		}
	}

	assignment := make([]int, len(values))
	if len(distinct) <= 2 {
		// binary / one-hot: raw values are the bins
		keys := make([]float64, 0, len(distinct))
		for v := range distinct {
			keys = append(keys, v)
		}
		sort.Float64s(keys)
		index := make(map[float64]int, len(keys))
		for i, v := range keys {
			index[v] = i
		}
		for i, v := range values {
			assignment[i] = index[v]
		}
		return assignment
	}

	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)
	edges := make([]float64, 0, bins+1)
	for j := 0; j <= bins; j++ {
		q := stat.Quantile(float64(j)/float64(bins), stat.LinInterp, sorted, nil)
		if len(edges) == 0 || q != edges[len(edges)-1] {
			edges = append(edges, q)
		}
	}

	// interior edges split the range; a value lands in the count of edges
	// at or below it
	var interior []float64
	if len(edges) > 2 {
		interior = edges[1 : len(edges)-1]
	}
	for i, v := range values {
		b := 0
		for _, e := range interior {
			if v >= e {
				b++
			}
		}
		assignment[i] = b
	}
	return assignment
}

func ivCategory(iv float64) string {
	switch {
	case iv < IVUseless:
		return "useless"
	case iv < IVWeak:
		return "weak"
	case iv < IVMedium:
		return "medium"
	case iv < IVStrong:
		return "strong"
	default:
		return "suspicious"
	}
}
