package encoding

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"creditcore/risk"
)

// NumericFeatures are the raw numeric columns, in training order.
var NumericFeatures = []string{
	"person_age",
	"person_income",
	"person_emp_length",
	"loan_amnt",
	"loan_int_rate",
	"loan_percent_income",
	"cb_person_cred_hist_length",
}

// categoricalFields pins the one-hot expansion order of the categorical
// fields. Categories are listed alphabetically, matching the columns of the
// processed training data.
var categoricalFields = []struct {
	name       string
	categories []string
}{
	{"person_home_ownership", []string{"MORTGAGE", "OTHER", "OWN", "RENT"}},
	{"loan_intent", []string{"DEBTCONSOLIDATION", "EDUCATION", "HOMEIMPROVEMENT", "MEDICAL", "PERSONAL", "VENTURE"}},
	{"loan_grade", []string{"A", "B", "C", "D", "E", "F", "G"}},
	{"cb_person_default_on_file", []string{"N", "Y"}},
}

// EncodedColumns returns the one-hot column names, derived from the
// "{field}_{category}" convention so that adding or removing a category is a
// single-point change in categoricalFields.
func EncodedColumns() []string {
	columns := make([]string, 0)
	for _, f := range categoricalFields {
		for _, c := range f.categories {
			columns = append(columns, fmt.Sprintf("%s_%s", f.name, c))
		}
	}
	return columns
}

// AllFeatures returns the full feature column layout, numeric then one-hot.
// Column order is a contract shared with the trained classifiers.
func AllFeatures() []string {
	return append(append([]string{}, NumericFeatures...), EncodedColumns()...)
}

// LoanApplication is a structured credit application before encoding.
type LoanApplication struct {
	PersonAge           int
	PersonIncome        float64
	PersonEmpLength     float64
	LoanAmount          float64
	LoanInterestRate    float64
	LoanPercentIncome   float64
	CreditHistoryLength int
	HomeOwnership       string
	LoanIntent          string
	LoanGrade           string
	DefaultOnFile       string
}

// Vectorize expands an application into the full feature vector. The one-hot
// part is derived by prefix-matching the encoded column names against the
// categorical field values; unknown categorical values fail with
// ErrUnknownCategory instead of producing an all-zero block.
func Vectorize(app LoanApplication) ([]float64, error) {
	fieldValues := map[string]string{
		"person_home_ownership":     app.HomeOwnership,
		"loan_intent":               app.LoanIntent,
		"loan_grade":                app.LoanGrade,
		"cb_person_default_on_file": app.DefaultOnFile,
	}

	for _, f := range categoricalFields {
		value := fieldValues[f.name]
		known := false
		for _, c := range f.categories {
			if c == value {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("field %s value %q: %w", f.name, value, risk.ErrUnknownCategory)
		}
	}

	vector := []float64{
		float64(app.PersonAge),
		app.PersonIncome,
		app.PersonEmpLength,
		app.LoanAmount,
		app.LoanInterestRate,
		app.LoanPercentIncome,
		float64(app.CreditHistoryLength),
	}

	for _, column := range EncodedColumns() {
		matched := false
		for fieldName, value := range fieldValues {
			prefix := fieldName + "_"
			if strings.HasPrefix(column, prefix) {
				category := strings.TrimPrefix(column, prefix)
				if category == value {
					vector = append(vector, 1.0)
				} else {
					vector = append(vector, 0.0)
				}
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("encoded column %q matches no categorical field: %w", column, risk.ErrUnknownCategory)
		}
	}

	return vector, nil
}

// Undersample balances a two-class dataset by downsampling both classes to
// the minority class size. The draw is seeded, so identical inputs and seed
// return identical samples.
func Undersample(x [][]float64, labels []int, seed int64) ([][]float64, []int, error) {
	if err := risk.CheckTwoClasses(labels); err != nil {
		return nil, nil, err
	}
	if len(x) != len(labels) {
		return nil, nil, fmt.Errorf("rows=%d labels=%d: %w", len(x), len(labels), risk.ErrLengthMismatch)
	}

	var zeros, ones []int
	for i, y := range labels {
		if y == 0 {
			zeros = append(zeros, i)
		} else {
			ones = append(ones, i)
		}
	}
	size := len(zeros)
	if len(ones) < size {
		size = len(ones)
	}

	rng := rand.New(rand.NewSource(seed))
	picked := append(sample(rng, zeros, size), sample(rng, ones, size)...)
	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})

	xs := make([][]float64, len(picked))
	ys := make([]int, len(picked))
	for i, idx := range picked {
		xs[i] = append([]float64{}, x[idx]...)
		ys[i] = labels[idx]
	}
	return xs, ys, nil
}

// sample draws size indices without replacement, preserving draw order.
func sample(rng *rand.Rand, indices []int, size int) []int {
	perm := rng.Perm(len(indices))[:size]
	sort.Ints(perm)
	out := make([]int, size)
	for i, p := range perm {
		out[i] = indices[p]
	}
	return out
}
