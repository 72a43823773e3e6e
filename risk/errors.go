// Package risk holds the error taxonomy and input validation shared by the
// statistical packages. Every failure surfaced by the core wraps one of the
// sentinels below, so callers can branch with errors.Is without parsing
// messages.
package risk

import "errors"

var (
	// ErrEmptyInput flags an empty label, probability or feature array.
	ErrEmptyInput = errors.New("empty input")
	// ErrLengthMismatch flags parallel arrays of different lengths.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrDegenerateLabels flags a label vector with a single class where a
	// two-class split is required.
	ErrDegenerateLabels = errors.New("degenerate labels")
	// ErrInvalidThreshold flags a decision threshold outside [0,1].
	ErrInvalidThreshold = errors.New("invalid threshold")
	// ErrInvalidParameter flags an out-of-range method parameter.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrUnknownCategory flags a categorical value outside the fixed vocabulary.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownMethod flags an unrecognized feature selection method.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrMissingCapability flags a plugged-in model that lacks a required
	// accessor, e.g. feature importances.
	ErrMissingCapability = errors.New("missing capability")
)
