package risk

import "fmt"

// CheckSeries validates a (labels, probabilities) pair for the evaluation
// primitives: both non-empty and of equal length.
func CheckSeries(labels []int, proba []float64) error {
	if len(labels) == 0 || len(proba) == 0 {
		return fmt.Errorf("labels=%d probabilities=%d: %w", len(labels), len(proba), ErrEmptyInput)
	}
	if len(labels) != len(proba) {
		return fmt.Errorf("labels=%d probabilities=%d: %w", len(labels), len(proba), ErrLengthMismatch)
	}
	return nil
}

// CheckBinary validates that every label is 0 or 1.
func CheckBinary(labels []int) error {
	for i, y := range labels {
		if y != 0 && y != 1 {
			return fmt.Errorf("label %d at index %d is not binary: %w", y, i, ErrInvalidParameter)
		}
	}
	return nil
}

// CheckTwoClasses validates that both classes are present.
func CheckTwoClasses(labels []int) error {
	if len(labels) == 0 {
		return fmt.Errorf("labels: %w", ErrEmptyInput)
	}
	first := labels[0]
	for _, y := range labels {
		if y != first {
			return nil
		}
	}
	return fmt.Errorf("only class %d present: %w", first, ErrDegenerateLabels)
}

// CheckMatrix validates a feature matrix against its labels and column names:
// non-empty, rectangular, rows matching labels and columns matching names.
func CheckMatrix(x [][]float64, labels []int, names []string) error {
	if len(x) == 0 || len(labels) == 0 {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(labels), ErrEmptyInput)
	}
	if len(x) != len(labels) {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(labels), ErrLengthMismatch)
	}
	if len(names) == 0 || len(x[0]) == 0 {
		return fmt.Errorf("columns=%d names=%d: %w", len(x[0]), len(names), ErrEmptyInput)
	}
	for i, row := range x {
		if len(row) != len(names) {
			return fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), len(names), ErrLengthMismatch)
		}
	}
	return nil
}
