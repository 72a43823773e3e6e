package encoding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"creditcore/risk"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {

	type test struct {
		vocab  []string
		values []string
	}

	tests := map[string]test{
		"home-ownership": {
			vocab:  HomeOwnership,
			values: []string{"RENT", "OWN", "MORTGAGE", "OTHER", "RENT"},
		},
		"loan-intent": {
			vocab:  LoanIntent,
			values: []string{"MEDICAL", "EDUCATION", "VENTURE"},
		},
		"loan-grade": {
			vocab:  LoanGrade,
			values: []string{"A", "G", "C", "C"},
		},
		"default-on-file": {
			vocab:  DefaultOnFile,
			values: []string{"N", "Y", "N"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			codes, err := Encode(tt.vocab, tt.values)
			assert.NoError(t, err)
			decoded, err := Decode(tt.vocab, codes)
			assert.NoError(t, err)
			assert.Equal(t, tt.values, decoded)
		})
	}
}

func TestEncode_UnknownCategory(t *testing.T) {
	_, err := Encode(LoanGrade, []string{"A", "Z"})
	assert.True(t, errors.Is(err, risk.ErrUnknownCategory))

	_, err = Decode(LoanGrade, []int{0, 7})
	assert.True(t, errors.Is(err, risk.ErrUnknownCategory))
}

func TestVectorize(t *testing.T) {
	app := LoanApplication{
		PersonAge:           25,
		PersonIncome:        50000,
		PersonEmpLength:     3,
		LoanAmount:          10000,
		LoanInterestRate:    10.5,
		LoanPercentIncome:   0.2,
		CreditHistoryLength: 5,
		HomeOwnership:       "RENT",
		LoanIntent:          "EDUCATION",
		LoanGrade:           "B",
		DefaultOnFile:       "N",
	}

	vector, err := Vectorize(app)
	assert.NoError(t, err)
	assert.Equal(t, len(AllFeatures()), len(vector))

	columns := AllFeatures()
	hot := map[string]bool{}
	ones := 0
	for i := len(NumericFeatures); i < len(vector); i++ {
		if vector[i] == 1 {
			hot[columns[i]] = true
			ones++
		}
	}
	// exactly one hot column per categorical field
	assert.Equal(t, 4, ones)
	assert.True(t, hot["person_home_ownership_RENT"])
	assert.True(t, hot["loan_intent_EDUCATION"])
	assert.True(t, hot["loan_grade_B"])
	assert.True(t, hot["cb_person_default_on_file_N"])
}

func TestVectorize_UnknownCategory(t *testing.T) {
	app := LoanApplication{
		HomeOwnership: "RENT",
		LoanIntent:    "EDUCATION",
		LoanGrade:     "Z",
		DefaultOnFile: "N",
	}
	_, err := Vectorize(app)
	assert.True(t, errors.Is(err, risk.ErrUnknownCategory))
}

func TestUndersample(t *testing.T) {
	x := [][]float64{{1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}}
	y := []int{0, 0, 0, 0, 0, 0, 1, 1}

	xs, ys, err := Undersample(x, y, 11)
	assert.NoError(t, err)
	assert.Equal(t, 4, len(xs))

	ones := 0
	for _, label := range ys {
		ones += label
	}
	assert.Equal(t, 2, ones)

	// same seed, same sample
	xs2, ys2, err := Undersample(x, y, 11)
	assert.NoError(t, err)
	assert.Equal(t, xs, xs2)
	assert.Equal(t, ys, ys2)

	_, _, err = Undersample(x, []int{0, 0, 0, 0, 0, 0, 0, 0}, 11)
	assert.True(t, errors.Is(err, risk.ErrDegenerateLabels))
}
