package learn

import (
	"fmt"
	"math"

	"creditcore/risk"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Logistic is an L1-penalized logistic regression fitted with proximal
// gradient descent. C is the inverse regularization strength, sklearn style:
// the objective is mean log-loss + ||w||_1 / (C * n). The solver is fully
// deterministic.
type Logistic struct {
	C       float64
	MaxIter int
	Tol     float64
	// Standardize scales columns to zero mean and unit variance before the
	// fit; coefficients are mapped back to the original scale. Zero-variance
	// columns keep scale 1 and end up with a zero coefficient.
	Standardize bool

	coef      []float64
	intercept float64
	means     []float64
	scales    []float64
	iters     int
	converged bool
}

func NewLogistic(c float64, maxIter int) *Logistic {
	return &Logistic{
		C:           c,
		MaxIter:     maxIter,
		Tol:         1e-4,
		Standardize: true,
	}
}

func (lr *Logistic) Fit(x [][]float64, y []int) error {
	if len(x) == 0 || len(y) == 0 {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrEmptyInput)
	}
	if len(x) != len(y) {
		return fmt.Errorf("rows=%d labels=%d: %w", len(x), len(y), risk.ErrLengthMismatch)
	}
	if lr.C <= 0 {
		return fmt.Errorf("C=%f: %w", lr.C, risk.ErrInvalidParameter)
	}

	n := len(x)
	d := len(x[0])
	lr.means = make([]float64, d)
	lr.scales = make([]float64, d)
	column := make([]float64, n)
	for j := 0; j < d; j++ {
		for i := 0; i < n; i++ {
			column[i] = x[i][j]
		}
		mean, std := stat.MeanStdDev(column, nil)
		scale := 1.0
		if lr.Standardize && std > 0 && !math.IsNaN(std) {
			scale = std
		} else {
			mean = 0
		}
		if !lr.Standardize {
			mean, scale = 0, 1
		}
		lr.means[j] = mean
		lr.scales[j] = scale
	}

	flat := make([]float64, n*d)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			flat[i*d+j] = (x[i][j] - lr.means[j]) / lr.scales[j]
		}
	}
	design := mat.NewDense(n, d, flat)

	// Lipschitz bound of the mean log-loss gradient, intercept included.
	lip := 0.0
	for i := 0; i < n; i++ {
		norm := 1.0
		for j := 0; j < d; j++ {
			norm += flat[i*d+j] * flat[i*d+j]
		}
		if norm > lip {
			lip = norm
		}
	}
	step := 4 / lip
	lambda := 1 / (lr.C * float64(n))

	w := mat.NewVecDense(d, nil)
	next := mat.NewVecDense(d, nil)
	margins := mat.NewVecDense(n, nil)
	residual := mat.NewVecDense(n, nil)
	grad := mat.NewVecDense(d, nil)
	b := 0.0

	lr.converged = false
	lr.iters = lr.MaxIter
	for t := 0; t < lr.MaxIter; t++ {
		margins.MulVec(design, w)
		gradB := 0.0
		for i := 0; i < n; i++ {
			r := (sigmoid(margins.AtVec(i)+b) - float64(y[i])) / float64(n)
			residual.SetVec(i, r)
			gradB += r
		}
		grad.MulVec(design.T(), residual)

		delta := 0.0
		for j := 0; j < d; j++ {
			v := softThreshold(w.AtVec(j)-step*grad.AtVec(j), step*lambda)
			if diff := math.Abs(v - w.AtVec(j)); diff > delta {
				delta = diff
			}
			next.SetVec(j, v)
		}
		bNext := b - step*gradB
		if diff := math.Abs(bNext - b); diff > delta {
			delta = diff
		}

		w.CopyVec(next)
		b = bNext
		if delta < lr.Tol {
			lr.converged = true
			lr.iters = t + 1
			break
		}
	}

	lr.coef = make([]float64, d)
	for j := 0; j < d; j++ {
		lr.coef[j] = w.AtVec(j) / lr.scales[j]
	}
	lr.intercept = b
	for j := 0; j < d; j++ {
		lr.intercept -= w.AtVec(j) * lr.means[j] / lr.scales[j]
	}
	return nil
}

func (lr *Logistic) PredictProba(x [][]float64) ([]float64, error) {
	if lr.coef == nil {
		return nil, fmt.Errorf("logistic model not fitted: %w", risk.ErrMissingCapability)
	}
	out := make([]float64, len(x))
	for i, row := range x {
		z := lr.intercept
		for j, v := range row {
			z += lr.coef[j] * v
		}
		out[i] = sigmoid(z)
	}
	return out, nil
}

// Coefficients returns the fitted weights on the original feature scale.
func (lr *Logistic) Coefficients() ([]float64, error) {
	if lr.coef == nil {
		return nil, fmt.Errorf("logistic model not fitted: %w", risk.ErrMissingCapability)
	}
	return append([]float64{}, lr.coef...), nil
}

// Iterations reports how many solver iterations the last fit used.
func (lr *Logistic) Iterations() int { return lr.iters }

// Converged reports whether the last fit met the tolerance within MaxIter.
func (lr *Logistic) Converged() bool { return lr.converged }

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func softThreshold(v, t float64) float64 {
	switch {
	case v > t:
		return v - t
	case v < -t:
		return v + t
	default:
		return 0
	}
}
