package selection

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Shap fits a tree model, explains a bounded sample of predictions through
// the model's decision paths, and ranks features by mean absolute
// positive-class attribution. Selection policy matches TreeImportance.
func Shap(x [][]float64, y []int, names []string, p ShapParams, seed int64) (Result, error) {
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
	explain := p.Explain
	if explain == nil {
		explain = DefaultExplainer
	}

	model := build(seed)
	if err := model.Fit(x, y); err != nil {
		return Result{}, fmt.Errorf("shap fit: %w", err)
	}
	explainer, err := explain(model)
	if err != nil {
		return Result{}, err
	}

	sample := x
	if len(x) > p.SampleSize {
		rng := rand.New(rand.NewSource(seed))
		picked := rng.Perm(len(x))[:p.SampleSize]
		sort.Ints(picked)
		sample = make([][]float64, p.SampleSize)
		for i, idx := range picked {
			sample[i] = x[idx]
		}
	}

	attributions, err := explainer.Attributions(sample)
	if err != nil {
		return Result{}, err
	}

	scores := make([]float64, len(names))
	for _, row := range attributions {
		for j := range names {
			scores[j] += math.Abs(row[j])
		}
	}
	for j := range scores {
		scores[j] /= float64(len(attributions))
	}

	selected, meta := selectByPolicy(scores, p.TopK, p.Threshold)
	meta["model_type"] = fmt.Sprintf("%T", model)
	meta["sample_size"] = len(sample)

	return buildResult(MethodShap, names, scores, selected, nil, meta), nil
}
