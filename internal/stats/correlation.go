package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrInsufficientData     = errors.New("at least two paired observations are required")
	ErrUndefinedCorrelation = errors.New("correlation is undefined for constant input")
	ErrLengthMismatch       = errors.New("x and y must have the same length")
)

// Correlation describes the linear association of two paired samples.
type Correlation struct {
	N         int
	R         float64
	PValue    float64
	Slope     float64
	Intercept float64
}

// Correlate computes Pearson's r, its two-sided p-value and the least-squares line
// y = Intercept + Slope*x.
func Correlate(x, y []float64) (Correlation, error) {
	if len(x) != len(y) {
		return Correlation{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return Correlation{N: n}, ErrInsufficientData
	}
	if isConstant(x) || isConstant(y) {
		return Correlation{N: n}, ErrUndefinedCorrelation
	}

	r := stat.Correlation(x, y, nil)
	// Rounding can push |r| marginally past 1.
	r = math.Max(-1, math.Min(1, r))

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	return Correlation{
		N:         n,
		R:         r,
		PValue:    pValue(r, n),
		Slope:     slope,
		Intercept: intercept,
	}, nil
}

func isConstant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func pValue(r float64, n int) float64 {
	if n == 2 {
		return 1
	}
	if math.Abs(r) == 1 {
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.Survival(math.Abs(t))
}

// Predict evaluates the fitted line at x.
func (c Correlation) Predict(x float64) float64 {
	return c.Intercept + c.Slope*x
}

// FormatR renders r the way it is displayed: two decimals.
func FormatR(r float64) string {
	return fmt.Sprintf("%.2f", r)
}

// FormatP renders the p-value with three decimals.
func FormatP(p float64) string {
	return fmt.Sprintf("%.3f", p)
}
