package selection

import (
	"fmt"
	"math"
	"math/rand"
)

// Boruta runs the all-relevant shadow-feature procedure: each round, every
// column is independently permuted into a shadow copy, a forest is fitted on
// real+shadow columns, and a real feature scores a hit when its importance
// beats the best shadow importance. A one-sided binomial test at the given
// confidence confirms features; fewer hits than 10% of the rounds rejects
// them; the rest stay tentative.
func Boruta(x [][]float64, y []int, names []string, p BorutaParams, seed int64) (Result, error) {
	if err := checkInputs(x, y, names); err != nil {
		return Result{}, err
	}
	if err := p.validate(len(names)); err != nil {
		return Result{}, err
	}
	build := p.Model
	if build == nil {
		build = DefaultForest
	}
	quantile := p.Quantile
	if quantile == nil {
		quantile = DefaultBorutaParams().Quantile
	}

	n := len(x)
	features := len(names)
	rng := rand.New(rand.NewSource(seed))
	hits := make([]int, features)

	combined := make([][]float64, n)
	for i := range combined {
		combined[i] = make([]float64, 2*features)
		copy(combined[i], x[i])
	}

	for iteration := 0; iteration < p.Iterations; iteration++ {
		// permute each column independently into the shadow half
		for j := 0; j < features; j++ {
			perm := rng.Perm(n)
			for i := 0; i < n; i++ {
				combined[i][features+j] = x[perm[i]][j]
			}
		}

		model := build(seed + int64(iteration))
		if err := model.Fit(combined, y); err != nil {
			return Result{}, fmt.Errorf("boruta iteration %d fit: %w", iteration, err)
		}
		importances, err := featureImportances(model, 2*features)
		if err != nil {
			return Result{}, err
		}

		maxShadow := 0.0
		for _, imp := range importances[features:] {
			if imp > maxShadow {
				maxShadow = imp
			}
		}
		for j, imp := range importances[:features] {
			if imp > maxShadow {
				hits[j]++
			}
		}
	}

	confirmAt := math.Ceil(quantile(p.Iterations, 0.5, p.Confidence))
	rejectBelow := 0.1 * float64(p.Iterations)

	scores := make([]float64, features)
	selected := make([]bool, features)
	meta := make([]map[string]interface{}, features)
	confirmed, tentative, rejected := 0, 0, 0
	for j := 0; j < features; j++ {
		scores[j] = float64(hits[j]) / float64(p.Iterations)
		status := "tentative"
		switch {
		case float64(hits[j]) >= confirmAt:
			status = "confirmed"
			confirmed++
			selected[j] = true
		case float64(hits[j]) < rejectBelow:
			status = "rejected"
			rejected++
		default:
			tentative++
			selected[j] = p.IncludeTentative
		}
		meta[j] = map[string]interface{}{"status": status, "hit_rate": scores[j]}
	}

	methodMeta := map[string]interface{}{
		"n_iterations":      p.Iterations,
		"confidence_level":  p.Confidence,
		"include_tentative": p.IncludeTentative,
		"n_confirmed":       confirmed,
		"n_tentative":       tentative,
		"n_rejected":        rejected,
	}
	return buildResult(MethodBoruta, names, scores, selected, meta, methodMeta), nil
}
