package selection

import "sort"

// rankOrder returns feature indices sorted by score descending, ties kept in
// original column order. Position k in the returned slice holds the index of
// the feature with rank k+1.
func rankOrder(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	return order
}

// buildResult assembles the standardized result: ranked scores, selected
// names in original column order, and the selection counts.
func buildResult(method Method, names []string, scores []float64, selected []bool, meta []map[string]interface{}, methodMeta map[string]interface{}) Result {
	order := rankOrder(scores)

	featureScores := make([]Score, len(names))
	for rank, idx := range order {
		score := Score{
			Feature:  names[idx],
			Score:    scores[idx],
			Selected: selected[idx],
			Rank:     rank + 1,
		}
		if meta != nil {
			score.Metadata = meta[idx]
		}
		featureScores[rank] = score
	}

	selectedFeatures := make([]string, 0)
	count := 0
	for i, name := range names {
		if selected[i] {
			selectedFeatures = append(selectedFeatures, name)
			count++
		}
	}

	return Result{
		Method:           method,
		SelectedFeatures: selectedFeatures,
		FeatureScores:    featureScores,
		NSelected:        count,
		NTotal:           len(names),
		Metadata:         methodMeta,
	}
}

// selectByPolicy applies the shared top-k / threshold / non-zero selection
// policy of the importance-style methods, in that priority order.
func selectByPolicy(scores []float64, topK int, threshold *float64) ([]bool, map[string]interface{}) {
	selected := make([]bool, len(scores))
	switch {
	case topK > 0:
		for _, idx := range rankOrder(scores)[:topK] {
			selected[idx] = true
		}
		return selected, map[string]interface{}{"selection_mode": "top_k", "k": topK}
	case threshold != nil:
		for i, s := range scores {
			selected[i] = s >= *threshold
		}
		return selected, map[string]interface{}{"selection_mode": "threshold", "threshold": *threshold}
	default:
		for i, s := range scores {
			selected[i] = s > 0
		}
		return selected, map[string]interface{}{"selection_mode": "non_zero"}
	}
}
