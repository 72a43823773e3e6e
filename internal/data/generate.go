// Package data builds synthetic loan portfolios with a planted default
// mechanism, for the demo binary and heavier tests.
package data

import (
	"math"
	"math/rand"

	"creditcore/encoding"
)

// Portfolio generates n encoded applications and their default labels. The
// default odds rise with payment burden, interest rate, worse grades and a
// prior default on file, so selection methods have a real signal to find.
// The draw is fully seeded.
func Portfolio(n int, seed int64) ([][]float64, []int, []string, error) {
	rng := rand.New(rand.NewSource(seed))

	x := make([][]float64, 0, n)
	y := make([]int, 0, n)
	for i := 0; i < n; i++ {
		gradeIdx := rng.Intn(len(encoding.LoanGrade))
		priorDefault := encoding.DefaultOnFile[0]
		if rng.Float64() < 0.18 {
			priorDefault = encoding.DefaultOnFile[1]
		}

		income := 20000 + rng.ExpFloat64()*45000
		amount := 1000 + rng.Float64()*30000
		burden := amount / income
		if burden > 0.83 {
			burden = 0.83
		}
		rate := 5.5 + 1.6*float64(gradeIdx) + rng.Float64()*2

		app := encoding.LoanApplication{
			PersonAge:           18 + rng.Intn(50),
			PersonIncome:        income,
			PersonEmpLength:     float64(rng.Intn(20)),
			LoanAmount:          amount,
			LoanInterestRate:    rate,
			LoanPercentIncome:   burden,
			CreditHistoryLength: 2 + rng.Intn(15),
			HomeOwnership:       encoding.HomeOwnership[rng.Intn(len(encoding.HomeOwnership))],
			LoanIntent:          encoding.LoanIntent[rng.Intn(len(encoding.LoanIntent))],
			LoanGrade:           encoding.LoanGrade[gradeIdx],
			DefaultOnFile:       priorDefault,
		}
		vector, err := encoding.Vectorize(app)
		if err != nil {
			return nil, nil, nil, err
		}

		score := -3.2 + 4.5*burden + 0.12*(rate-8) + 0.25*float64(gradeIdx) + rng.NormFloat64()*0.5
		if priorDefault == "Y" {
			score += 0.9
		}
		label := 0
		if rng.Float64() < 1/(1+math.Exp(-score)) {
			label = 1
		}

		x = append(x, vector)
		y = append(y, label)
	}
	return x, y, encoding.AllFeatures(), nil
}
