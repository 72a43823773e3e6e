package learn

import (
	"fmt"

	"github.com/rs/zerolog/log"

	randomforest "github.com/malaschitz/randomForest"

	"creditcore/risk"
)

// RandomForest adapts the malaschitz forest as an ImportanceClassifier.
// The library parallelizes training off its own RNG, so fits are fast but
// not reproducible across runs; the native Forest is the deterministic
// alternative.
type RandomForest struct {
	trees  int
	forest *randomforest.Forest
}

func NewRandomForest(trees int) *RandomForest {
	return &RandomForest{trees: trees}
}

func (rf *RandomForest) Fit(x [][]float64, y []int) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrEmptyInput)
	}
	if len(x) != len(y) {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrLengthMismatch)
	}
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: y}
	forest.Train(rf.trees)
	rf.forest = forest
	log.Debug().Int("trees", rf.trees).Int("samples", len(x)).Msg("trained random forest")
	return nil
}

func (rf *RandomForest) PredictProba(x [][]float64) ([]float64, error) {
	if rf.forest == nil {
		return nil, fmt.Errorf("random forest not fitted: %w", risk.ErrMissingCapability)
	}
	out := make([]float64, len(x))
	for i, row := range x {
		votes := rf.forest.Vote(row)
		if len(votes) > 1 {
			out[i] = votes[1]
		}
	}
	return out, nil
}

func (rf *RandomForest) FeatureImportances() ([]float64, error) {
	if rf.forest == nil {
		return nil, fmt.Errorf("random forest not fitted: %w", risk.ErrMissingCapability)
	}
	return append([]float64{}, rf.forest.FeatureImportance...), nil
}
