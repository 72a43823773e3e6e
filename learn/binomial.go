package learn

import "gonum.org/v1/gonum/stat/distuv"

// BinomQuantile is the inverse CDF of Binomial(n, p): the smallest k with
// P(X <= k) >= q. It backs the Boruta confirmation test with p = 0.5.
func BinomQuantile(n int, p, q float64) float64 {
	dist := distuv.Binomial{N: float64(n), P: p}
	for k := 0; k <= n; k++ {
		if dist.CDF(float64(k)) >= q {
			return float64(k)
		}
	}
	return float64(n)
}
