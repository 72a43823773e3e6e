package data

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"creditcore/encoding"
)

func TestPortfolio(t *testing.T) {
	x, y, names, err := Portfolio(500, 42)
	assert.NoError(t, err)

	assert.Equal(t, 500, len(x))
	assert.Equal(t, 500, len(y))
	assert.Equal(t, encoding.AllFeatures(), names)
	for _, row := range x {
		assert.Equal(t, len(names), len(row))
	}

	// the planted mechanism produces both outcomes
	defaults := 0
	for _, label := range y {
		defaults += label
	}
	assert.True(t, defaults > 0)
	assert.True(t, defaults < 500)
}

func TestPortfolio_Deterministic(t *testing.T) {
	xA, yA, _, err := Portfolio(200, 7)
	assert.NoError(t, err)
	xB, yB, _, err := Portfolio(200, 7)
	assert.NoError(t, err)

	assert.Equal(t, xA, xB)
	assert.Equal(t, yA, yB)
}
