package selection

import (
	"fmt"

	"creditcore/learn"
	"creditcore/risk"
)

// Parameter bounds, matching the request schema the methods are exposed
// through.
const (
	minC          = 0.0
	maxC          = 10.0
	minMaxIter    = 100
	maxMaxIter    = 5000
	minBins       = 5
	maxBins       = 20
	minIterations = 20
	maxIterations = 500
	minConfidence = 0.8
	maxConfidence = 0.99
)

// TreeParams drives tree-importance selection. TopK and Threshold are
// mutually exclusive knobs: TopK wins when both are set, and with neither
// the non-zero fallback applies. A zero TopK means unset.
type TreeParams struct {
	TopK      int
	Threshold *float64
	// Model builds the importance-reporting classifier per fit. A model
	// without importances makes the method fail with ErrMissingCapability.
	Model func(seed int64) learn.Classifier
}

func DefaultTreeParams() TreeParams {
	return TreeParams{Model: DefaultForest}
}

// DefaultForest is the native seeded 100-tree forest, the deterministic
// default backend of the importance-driven methods.
func DefaultForest(seed int64) learn.Classifier {
	return learn.NewForest(100, seed)
}

func (p TreeParams) validate(features int) error {
	if p.TopK < 0 || p.TopK > features {
		return fmt.Errorf("top_k=%d with %d features: %w", p.TopK, features, risk.ErrInvalidParameter)
	}
	if p.Threshold != nil && (*p.Threshold < 0 || *p.Threshold > 1) {
		return fmt.Errorf("threshold=%f: %w", *p.Threshold, risk.ErrInvalidParameter)
	}
	return nil
}

// LassoParams drives L1 linear selection. C is the inverse regularization
// strength: lower C means stronger shrinkage and fewer selected features.
type LassoParams struct {
	C       float64
	MaxIter int
	Model   func(c float64, maxIter int, seed int64) learn.LinearClassifier
}

func DefaultLassoParams() LassoParams {
	return LassoParams{
		C:       1.0,
		MaxIter: 1000,
		Model: func(c float64, maxIter int, _ int64) learn.LinearClassifier {
			return learn.NewLogistic(c, maxIter)
		},
	}
}

func (p LassoParams) validate(int) error {
	if p.C <= minC || p.C > maxC {
		return fmt.Errorf("C=%f outside (%g, %g]: %w", p.C, minC, maxC, risk.ErrInvalidParameter)
	}
	if p.MaxIter < minMaxIter || p.MaxIter > maxMaxIter {
		return fmt.Errorf("max_iter=%d outside [%d, %d]: %w", p.MaxIter, minMaxIter, maxMaxIter, risk.ErrInvalidParameter)
	}
	return nil
}

// WoeIVParams drives Weight-of-Evidence / Information-Value selection.
type WoeIVParams struct {
	Bins        int
	IVThreshold float64
}

func DefaultWoeIVParams() WoeIVParams {
	return WoeIVParams{Bins: 10, IVThreshold: 0.1}
}

func (p WoeIVParams) validate(int) error {
	if p.Bins < minBins || p.Bins > maxBins {
		return fmt.Errorf("n_bins=%d outside [%d, %d]: %w", p.Bins, minBins, maxBins, risk.ErrInvalidParameter)
	}
	if p.IVThreshold < 0 || p.IVThreshold > 1 {
		return fmt.Errorf("iv_threshold=%f: %w", p.IVThreshold, risk.ErrInvalidParameter)
	}
	return nil
}

// BorutaParams drives the simplified Boruta procedure.
type BorutaParams struct {
	Iterations       int
	Confidence       float64
	IncludeTentative bool
	Model            func(seed int64) learn.Classifier
	Quantile         learn.BinomialQuantile
}

func DefaultBorutaParams() BorutaParams {
	return BorutaParams{
		Iterations: 100,
		Confidence: 0.95,
		Model:      DefaultForest,
		Quantile:   learn.BinomQuantile,
	}
}

func (p BorutaParams) validate(int) error {
	if p.Iterations < minIterations || p.Iterations > maxIterations {
		return fmt.Errorf("n_iterations=%d outside [%d, %d]: %w", p.Iterations, minIterations, maxIterations, risk.ErrInvalidParameter)
	}
	if p.Confidence < minConfidence || p.Confidence > maxConfidence {
		return fmt.Errorf("confidence_level=%f outside [%g, %g]: %w", p.Confidence, minConfidence, maxConfidence, risk.ErrInvalidParameter)
	}
	return nil
}

// ShapParams drives attribution ranking. The explainer is resolved from the
// fitted model; models no explainer can handle fail with
// ErrMissingCapability.
type ShapParams struct {
	SampleSize int
	TopK       int
	Threshold  *float64
	Model      func(seed int64) learn.Classifier
	Explain    func(model learn.Classifier) (learn.Explainer, error)
}

func DefaultShapParams() ShapParams {
	return ShapParams{
		SampleSize: 100,
		Model:      DefaultForest,
		Explain:    DefaultExplainer,
	}
}

// DefaultExplainer explains the native forest through its decision paths.
func DefaultExplainer(model learn.Classifier) (learn.Explainer, error) {
	if forest, ok := model.(*learn.Forest); ok {
		return learn.NewTreeExplainer(forest), nil
	}
	return nil, fmt.Errorf("no explainer for model %T: %w", model, risk.ErrMissingCapability)
}

func (p ShapParams) validate(features int) error {
	if p.SampleSize < 1 {
		return fmt.Errorf("sample_size=%d: %w", p.SampleSize, risk.ErrInvalidParameter)
	}
	if p.TopK < 0 || p.TopK > features {
		return fmt.Errorf("top_k=%d with %d features: %w", p.TopK, features, risk.ErrInvalidParameter)
	}
	if p.Threshold != nil && (*p.Threshold < 0 || *p.Threshold > 1) {
		return fmt.Errorf("threshold=%f: %w", *p.Threshold, risk.ErrInvalidParameter)
	}
	return nil
}
