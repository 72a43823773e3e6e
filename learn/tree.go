package learn

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"creditcore/risk"
)

type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	leaf      bool
	// value is the positive-class fraction of the samples in the node,
	// kept on every node for decision-path attribution.
	value float64
}

// DecisionTree is a CART-style binary classification tree with probability
// leaves. All randomness (feature subsetting) comes from the given seed, so
// a fit is bit-identical across runs.
type DecisionTree struct {
	MaxDepth        int
	MinSamplesSplit int
	MaxFeatures     int // <= 0 uses all features
	MaxThresholds   int

	seed        int64
	root        *treeNode
	importances []float64
	total       int
}

func NewDecisionTree(seed int64) *DecisionTree {
	return &DecisionTree{
		MaxDepth:        10,
		MinSamplesSplit: 2,
		MaxThresholds:   32,
		seed:            seed,
	}
}

func (dt *DecisionTree) Fit(x [][]float64, y []int) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrEmptyInput)
	}
	if len(x) != len(y) {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrLengthMismatch)
	}

	rng := rand.New(rand.NewSource(dt.seed))
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	dt.total = len(x)
	dt.importances = make([]float64, len(x[0]))
	dt.root = dt.build(rng, x, y, idx, 0)
	normalize(dt.importances)
	return nil
}

func (dt *DecisionTree) PredictProba(x [][]float64) ([]float64, error) {
	if dt.root == nil {
		return nil, fmt.Errorf("decision tree not fitted: %w", risk.ErrMissingCapability)
	}
	out := make([]float64, len(x))
	for i, row := range x {
		node := dt.root
		for !node.leaf {
			if row[node.feature] <= node.threshold {
				node = node.left
			} else {
				node = node.right
			}
		}
		out[i] = node.value
	}
	return out, nil
}

// FeatureImportances reports normalized impurity-decrease importances.
func (dt *DecisionTree) FeatureImportances() ([]float64, error) {
	if dt.root == nil {
		return nil, fmt.Errorf("decision tree not fitted: %w", risk.ErrMissingCapability)
	}
	return append([]float64{}, dt.importances...), nil
}

func (dt *DecisionTree) build(rng *rand.Rand, x [][]float64, y []int, idx []int, depth int) *treeNode {
	node := &treeNode{value: positiveFraction(y, idx)}
	if depth >= dt.MaxDepth || len(idx) < dt.MinSamplesSplit || node.value == 0 || node.value == 1 {
		node.leaf = true
		return node
	}

	parent := gini(node.value)
	bestFeature := -1
	bestThreshold := 0.0
	bestImpurity := math.MaxFloat64
	var bestLeft, bestRight []int

	for _, f := range dt.pickFeatures(rng, len(x[0])) {
		for _, threshold := range candidateThresholds(x, idx, f, dt.MaxThresholds) {
			left, right := split(x, idx, f, threshold)
			if len(left) == 0 || len(right) == 0 {
				continue
			}
			impurity := weightedGini(y, left, right)
			if impurity < bestImpurity {
				bestImpurity = impurity
				bestFeature = f
				bestThreshold = threshold
				bestLeft = left
				bestRight = right
			}
		}
	}

	if bestFeature == -1 {
		node.leaf = true
		return node
	}

	dt.importances[bestFeature] += float64(len(idx)) / float64(dt.total) * (parent - bestImpurity)
	node.feature = bestFeature
	node.threshold = bestThreshold
	node.left = dt.build(rng, x, y, bestLeft, depth+1)
	node.right = dt.build(rng, x, y, bestRight, depth+1)
	return node
}

func (dt *DecisionTree) pickFeatures(rng *rand.Rand, n int) []int {
	features := make([]int, n)
	for i := range features {
		features[i] = i
	}
	if dt.MaxFeatures <= 0 || dt.MaxFeatures >= n {
		return features
	}
	rng.Shuffle(n, func(i, j int) {
		features[i], features[j] = features[j], features[i]
	})
	return features[:dt.MaxFeatures]
}

// candidateThresholds returns midpoints between consecutive distinct values,
// thinned evenly when there are more than max. No randomness, so a tree fit
// depends only on the feature subsets drawn.
func candidateThresholds(x [][]float64, idx []int, f, max int) []float64 {
	values := make([]float64, len(idx))
	for i, j := range idx {
		values[i] = x[j][f]
	}
	sort.Float64s(values)

	mids := make([]float64, 0, len(values))
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1] {
			mids = append(mids, (values[i]+values[i-1])/2)
		}
	}
	if max <= 0 || len(mids) <= max {
		return mids
	}
	thinned := make([]float64, 0, max)
	step := float64(len(mids)) / float64(max)
	for i := 0; i < max; i++ {
		thinned = append(thinned, mids[int(float64(i)*step)])
	}
	return thinned
}

func split(x [][]float64, idx []int, f int, threshold float64) ([]int, []int) {
	left := make([]int, 0, len(idx))
	right := make([]int, 0, len(idx))
	for _, i := range idx {
		if x[i][f] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return left, right
}

func positiveFraction(y []int, idx []int) float64 {
	sum := 0
	for _, i := range idx {
		sum += y[i]
	}
	return float64(sum) / float64(len(idx))
}

func gini(p float64) float64 {
	return 2 * p * (1 - p)
}

func weightedGini(y []int, left, right []int) float64 {
	gl := gini(positiveFraction(y, left))
	gr := gini(positiveFraction(y, right))
	wl := float64(len(left))
	wr := float64(len(right))
	return (wl*gl + wr*gr) / (wl + wr)
}

func normalize(ff []float64) {
	sum := 0.0
	for _, f := range ff {
		sum += f
	}
	if sum == 0 {
		return
	}
	for i := range ff {
		ff[i] /= sum
	}
}
