package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"creditcore/learn"
	"creditcore/risk"
)

func testShapParams() ShapParams {
	return ShapParams{
		SampleSize: 50,
		Model:      smallForest,
		Explain:    DefaultExplainer,
	}
}

func TestShap(t *testing.T) {
	x, y, names := creditData(120, 37)

	result, err := Shap(x, y, names, testShapParams(), 41)
	assert.NoError(t, err)
	assertResultShape(t, result, names)

	assert.Equal(t, MethodShap, result.Method)
	// the sample is capped below the input size
	assert.Equal(t, 50, result.Metadata["sample_size"])

	scores := map[string]Score{}
	for _, score := range result.FeatureScores {
		assert.True(t, score.Score >= 0)
		scores[score.Feature] = score
	}
	// a never-split feature accumulates no attribution
	assert.Equal(t, 0.0, scores["flat"].Score)
	assert.False(t, scores["flat"].Selected)
	assert.True(t, scores["signal"].Score > 0)
	assert.True(t, scores["signal"].Selected)
}

func TestShap_NoSubsample(t *testing.T) {
	x, y, names := creditData(30, 37)

	result, err := Shap(x, y, names, testShapParams(), 41)
	assert.NoError(t, err)
	assert.Equal(t, 30, result.Metadata["sample_size"])
}

func TestShap_TopK(t *testing.T) {
	x, y, names := creditData(120, 37)

	p := testShapParams()
	p.TopK = 3
	result, err := Shap(x, y, names, p, 41)
	assert.NoError(t, err)
	assert.Equal(t, 3, result.NSelected)
	assert.Contains(t, result.SelectedFeatures, "signal")
}

func TestShap_Deterministic(t *testing.T) {
	x, y, names := creditData(120, 43)

	first, err := Shap(x, y, names, testShapParams(), 47)
	assert.NoError(t, err)
	second, err := Shap(x, y, names, testShapParams(), 47)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestShap_MissingCapability(t *testing.T) {
	x, y, names := creditData(60, 37)

	p := testShapParams()
	p.Model = func(int64) learn.Classifier { return learn.NewLogistic(1.0, 500) }
	_, err := Shap(x, y, names, p, 1)
	assert.True(t, errors.Is(err, risk.ErrMissingCapability))
}

func TestShap_ParamBounds(t *testing.T) {
	x, y, names := creditData(40, 37)

	p := testShapParams()
	p.SampleSize = 0
	_, err := Shap(x, y, names, p, 1)
	assert.True(t, errors.Is(err, risk.ErrInvalidParameter))

	p = testShapParams()
	p.TopK = 99
	_, err = Shap(x, y, names, p, 1)
	assert.True(t, errors.Is(err, risk.ErrInvalidParameter))
}
