// Package stats holds the numeric primitives behind the dashboard: quantiles,
// frequency counting, histogram binning, and kernel density estimation.
package stats

import (
	"fmt"
	"math"
	"sort"
)

// Bounds is a (low, high) pair of column values used to exclude outliers.
type Bounds struct {
	Low  float64
	High float64
}

// Contains reports whether v lies within the closed interval [Low, High].
func (b Bounds) Contains(v float64) bool { return v >= b.Low && v <= b.High }

// EmptyColumnError indicates a quantile was requested over a column with no
// non-missing values. Fatal for the chart that needed it, not for the session.
type EmptyColumnError struct {
	Column string
}

func (e *EmptyColumnError) Error() string {
	return fmt.Sprintf("column %q has no non-missing values", e.Column)
}

// Quantile returns the q-th quantile of sorted using linear interpolation
// between order statistics, matching the pandas/numpy default so bounds computed
// here agree with a reference run over the same data.
func Quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// OutlierBounds computes the (lowQ, highQ) quantile pair of values for the named
// column. NaNs are dropped first; if nothing remains the column is empty.
func OutlierBounds(column string, values []float64, lowQ, highQ float64) (Bounds, error) {
	cp := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			cp = append(cp, v)
		}
	}
	if len(cp) == 0 {
		return Bounds{}, &EmptyColumnError{Column: column}
	}
	sort.Float64s(cp)
	return Bounds{Low: Quantile(cp, lowQ), High: Quantile(cp, highQ)}, nil
}
