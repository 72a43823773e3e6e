// Package encoding maps the categorical loan fields to and from the numeric
// column layout the classifiers are trained on. The vocabularies are fixed and
// exhaustive; anything outside them is rejected rather than coerced.
package encoding

import (
	"fmt"

	"creditcore/risk"
)

// Ordinal vocabularies. Index position is the encoded integer.
var (
	HomeOwnership = []string{"RENT", "OWN", "MORTGAGE", "OTHER"}
	LoanIntent    = []string{"EDUCATION", "MEDICAL", "VENTURE", "PERSONAL", "DEBTCONSOLIDATION", "HOMEIMPROVEMENT"}
	LoanGrade     = []string{"A", "B", "C", "D", "E", "F", "G"}
	DefaultOnFile = []string{"N", "Y"}
)

// Encode maps categorical values to their integer codes within the given
// vocabulary. A value outside the vocabulary fails with ErrUnknownCategory.
func Encode(vocab []string, values []string) ([]int, error) {
	index := make(map[string]int, len(vocab))
	for i, v := range vocab {
		index[v] = i
	}
	codes := make([]int, len(values))
	for i, v := range values {
		code, ok := index[v]
		if !ok {
			return nil, fmt.Errorf("value %q not in vocabulary %v: %w", v, vocab, risk.ErrUnknownCategory)
		}
		codes[i] = code
	}
	return codes, nil
}

// Decode is the exact inverse of Encode.
func Decode(vocab []string, codes []int) ([]string, error) {
	values := make([]string, len(codes))
	for i, c := range codes {
		if c < 0 || c >= len(vocab) {
			return nil, fmt.Errorf("code %d outside vocabulary of size %d: %w", c, len(vocab), risk.ErrUnknownCategory)
		}
		values[i] = vocab[c]
	}
	return values, nil
}
