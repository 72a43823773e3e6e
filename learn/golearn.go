package learn

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"

	"creditcore/risk"
)

// KNN adapts a golearn k-nearest-neighbours classifier as a plain
// Classifier. The matrix is round-tripped through golearn's CSV reader, the
// same access path the rest of the codebase has always used with golearn.
// Votes produce hard 0/1 probabilities and there are no feature importances,
// so importance-driven selection fails explicitly on this backend.
type KNN struct {
	neighbours int
	classifier *knn.KNNClassifier
	// classOrder is the label first-occurrence order of the training set;
	// prediction grids must introduce class values in the same order to
	// stay attribute-compatible with the training grid.
	classOrder []int
}

func NewKNN(neighbours int) *KNN {
	return &KNN{neighbours: neighbours}
}

func (m *KNN) Fit(x [][]float64, y []int) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrEmptyInput)
	}
	if len(x) != len(y) {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrLengthMismatch)
	}
	instances, err := toInstances(x, y)
	if err != nil {
		log.Error().Err(err).Msg("could not build knn training instances")
		return err
	}
	classifier := knn.NewKnnClassifier("euclidean", "linear", m.neighbours)
	if err := classifier.Fit(instances); err != nil {
		log.Error().Err(err).Msg("could not train knn model")
		return err
	}
	m.classifier = classifier
	m.classOrder = m.classOrder[:0]
	seen := map[int]bool{}
	for _, label := range y {
		if !seen[label] {
			seen[label] = true
			m.classOrder = append(m.classOrder, label)
		}
	}
	return nil
}

func (m *KNN) PredictProba(x [][]float64) ([]float64, error) {
	if m.classifier == nil {
		return nil, fmt.Errorf("knn model not fitted: %w", risk.ErrMissingCapability)
	}
	if len(x) < len(m.classOrder) {
		return nil, fmt.Errorf("need at least %d rows to rebuild the class attribute: %w", len(m.classOrder), risk.ErrEmptyInput)
	}
	// placeholder labels cycling through the training class order keep the
	// parsed class attribute identical to the training one
	placeholder := make([]int, len(x))
	for i := range placeholder {
		placeholder[i] = m.classOrder[i%len(m.classOrder)]
	}
	instances, err := toInstances(x, placeholder)
	if err != nil {
		return nil, err
	}
	predictions, err := m.classifier.Predict(instances)
	if err != nil {
		log.Error().Err(err).Msg("could not predict on knn model")
		return nil, err
	}
	out := make([]float64, len(x))
	for i := range x {
		if base.GetClass(predictions, i) == "c1" {
			out[i] = 1
		}
	}
	return out, nil
}

// toInstances serializes the matrix to CSV and parses it back, letting
// golearn infer float feature attributes and a categorical class attribute
// from the "c0"/"c1" labels in the last column.
func toInstances(x [][]float64, y []int) (*base.DenseInstances, error) {
	var buf bytes.Buffer
	for i, row := range x {
		for _, v := range row {
			buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			buf.WriteByte(',')
		}
		buf.WriteString(fmt.Sprintf("c%d\n", y[i]))
	}
	return base.ParseCSVToInstancesFromReader(bytes.NewReader(buf.Bytes()), false)
}
