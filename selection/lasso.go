package selection

import (
	"fmt"
	"math"
)

// Lasso fits an L1-penalized linear model and selects the features with
// non-zero coefficients. Solver convergence and the iteration count are
// recorded as diagnostics, not used as a selection criterion.
func Lasso(x [][]float64, y []int, names []string, p LassoParams, seed int64) (Result, error) {
	if err := checkInputs(x, y, names); err != nil {
		return Result{}, err
	}
	if err := p.validate(len(names)); err != nil {
		return Result{}, err
	}
	build := p.Model
	if build == nil {
		build = DefaultLassoParams().Model
	}

	model := build(p.C, p.MaxIter, seed)
	if err := model.Fit(x, y); err != nil {
		return Result{}, fmt.Errorf("lasso fit: %w", err)
	}
	coefficients, err := model.Coefficients()
	if err != nil {
		return Result{}, err
	}

	scores := make([]float64, len(names))
	selected := make([]bool, len(names))
	for i := range names {
		scores[i] = math.Abs(coefficients[i])
		selected[i] = scores[i] > 0
	}

	meta := map[string]interface{}{
		"C":            p.C,
		"converged":    model.Converged(),
		"n_iterations": model.Iterations(),
	}
	return buildResult(MethodLasso, names, scores, selected, nil, meta), nil
}
