package selection

import (
	"fmt"

	"creditcore/learn"
	"creditcore/risk"
)

// TreeImportance fits a tree ensemble on the full matrix and ranks features
// by the model's native importances.
func TreeImportance(x [][]float64, y []int, names []string, p TreeParams, seed int64) (Result, error) {
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

	model := build(seed)
	if err := model.Fit(x, y); err != nil {
		return Result{}, fmt.Errorf("tree importance fit: %w", err)
	}
	importances, err := featureImportances(model, len(names))
	if err != nil {
		return Result{}, err
	}

	selected, meta := selectByPolicy(importances, p.TopK, p.Threshold)
	meta["model_type"] = fmt.Sprintf("%T", model)

	return buildResult(MethodTreeImportance, names, importances, selected, nil, meta), nil
}

// featureImportances pulls native importances off the model, failing
// explicitly when the model cannot report them.
func featureImportances(model learn.Classifier, features int) ([]float64, error) {
	reporter, ok := model.(learn.ImportanceClassifier)
	if !ok {
		return nil, fmt.Errorf("model %T has no feature importances: %w", model, risk.ErrMissingCapability)
	}
	importances, err := reporter.FeatureImportances()
	if err != nil {
		return nil, err
	}
	if len(importances) < features {
		return nil, fmt.Errorf("model reported %d importances for %d features: %w", len(importances), features, risk.ErrLengthMismatch)
	}
	return importances, nil
}

func checkInputs(x [][]float64, y []int, names []string) error {
	if err := risk.CheckMatrix(x, y, names); err != nil {
		return err
	}
	return risk.CheckBinary(y)
}
