package stats

import "math"

// Bin is one histogram bucket over [Low, High); the last bin is closed on both
// ends so the column maximum is counted.
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Center returns the bin midpoint, useful for frequency-polygon style charts.
func (b Bin) Center() float64 { return (b.Low + b.High) / 2 }

// Histogram buckets values into n uniform bins spanning [min, max] of the data.
// NaNs are ignored. The column name is only used for the empty-column error.
func Histogram(column string, values []float64, n int) ([]Bin, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		clean = append(clean, v)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if len(clean) == 0 {
		return nil, &EmptyColumnError{Column: column}
	}
	return HistogramRange(clean, n, lo, hi), nil
}

// HistogramRange buckets values into n uniform bins over [lo, hi]. Values outside
// the range are dropped. Grouped histograms use it to put every group on the same
// edges so their bars line up.
func HistogramRange(values []float64, n int, lo, hi float64) []Bin {
	if n <= 0 {
		n = 1
	}
	if hi <= lo {
		// Degenerate column: a single bin holding everything at that value.
		bins := []Bin{{Low: lo, High: lo}}
		for _, v := range values {
			if v == lo {
				bins[0].Count++
			}
		}
		return bins
	}
	width := (hi - lo) / float64(n)
	bins := make([]Bin, n)
	for i := range bins {
		bins[i].Low = lo + float64(i)*width
		bins[i].High = lo + float64(i+1)*width
	}
	bins[n-1].High = hi
	for _, v := range values {
		if math.IsNaN(v) || v < lo || v > hi {
			continue
		}
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		bins[i].Count++
	}
	return bins
}
