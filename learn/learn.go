// Package learn defines the trainable-classifier capabilities the selection
// methods consume, together with the backends that implement them: a native
// seeded decision forest, an L1 logistic solver, a decision-path explainer,
// and adapters over malaschitz/randomForest and golearn.
package learn

// Classifier is the minimal trainable binary model.
type Classifier interface {
	Fit(x [][]float64, y []int) error
	// PredictProba returns the positive-class probability per row.
	PredictProba(x [][]float64) ([]float64, error)
}

// ImportanceClassifier also reports native per-feature importances after a
// fit. Models that cannot are plain Classifiers, and the methods that need
// importances fail explicitly on them.
type ImportanceClassifier interface {
	Classifier
	FeatureImportances() ([]float64, error)
}

// LinearClassifier exposes the coefficient vector and solver diagnostics of
// a linear model.
type LinearClassifier interface {
	Classifier
	Coefficients() ([]float64, error)
	Iterations() int
	Converged() bool
}

// Explainer produces per-sample per-feature attributions for the
// positive class.
type Explainer interface {
	Attributions(x [][]float64) ([][]float64, error)
}

// BinomialQuantile is the inverse CDF of Binomial(n, p): the smallest k with
// P(X <= k) >= q.
type BinomialQuantile func(n int, p, q float64) float64
