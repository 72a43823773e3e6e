package learn

import (
	"fmt"

	"creditcore/risk"
)

// TreeExplainer decomposes a Forest prediction into per-feature
// contributions by walking each decision path: at every split, the change in
// the node's positive-class fraction is attributed to the split feature.
// Contributions per sample sum to prediction minus the root baseline.
type TreeExplainer struct {
	forest *Forest
}

func NewTreeExplainer(forest *Forest) *TreeExplainer {
	return &TreeExplainer{forest: forest}
}

// Attributions returns one positive-class contribution vector per sample.
func (e *TreeExplainer) Attributions(x [][]float64) ([][]float64, error) {
	if e.forest == nil || len(e.forest.trees) == 0 {
		return nil, fmt.Errorf("explainer needs a fitted forest: %w", risk.ErrMissingCapability)
	}

	features := len(e.forest.importances)
	out := make([][]float64, len(x))
	for i, row := range x {
		contributions := make([]float64, features)
		for _, tree := range e.forest.trees {
			node := tree.root
			for !node.leaf {
				next := node.right
				if row[node.feature] <= node.threshold {
					next = node.left
				}
				contributions[node.feature] += next.value - node.value
				node = next
			}
		}
		for j := range contributions {
			contributions[j] /= float64(len(e.forest.trees))
		}
		out[i] = contributions
	}
	return out, nil
}
