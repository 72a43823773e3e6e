// Package selection implements five independent feature selection methods
// for credit default models behind one dispatcher and one result shape:
// tree importance, L1-penalized linear selection, Weight-of-Evidence /
// Information-Value, a simplified Boruta procedure, and attribution
// ranking. Every method is deterministic given the same inputs and seed.
package selection

// Method identifies a feature selection strategy. The set is closed; the
// dispatcher matches it exhaustively.
type Method string

const (
	MethodTreeImportance Method = "tree_importance"
	MethodLasso          Method = "lasso"
	MethodWoeIV          Method = "woe_iv"
	MethodBoruta         Method = "boruta"
	MethodShap           Method = "shap"
)

// Score is the per-feature outcome of a method. Ranks are a permutation of
// 1..N, descending by score with ties broken by original column order.
type Score struct {
	Feature  string
	Score    float64
	Selected bool
	Rank     int
	Metadata map[string]interface{}
}

// Result is the standardized output of every method.
// NSelected == len(SelectedFeatures) == number of selected FeatureScores,
// and NTotal == len(FeatureScores) == number of input features.
type Result struct {
	Method           Method
	SelectedFeatures []string
	FeatureScores    []Score
	NSelected        int
	NTotal           int
	Metadata         map[string]interface{}
}
