package stats

import (
	"math"
	"sort"
)

// DensityPoint is one sample of an estimated probability density curve.
type DensityPoint struct {
	X       float64
	Density float64
}

// KDE estimates the density of values with a gaussian kernel and Silverman's
// bandwidth, sampled at n evenly spaced points across the data range padded by
// three bandwidths. This is what backs the violin-style comparison charts.
func KDE(column string, values []float64, n int) ([]DensityPoint, error) {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return nil, &EmptyColumnError{Column: column}
	}
	if n <= 1 {
		n = 64
	}
	sort.Float64s(clean)
	h := silverman(clean)
	lo := clean[0] - 3*h
	hi := clean[len(clean)-1] + 3*h
	if hi <= lo {
		hi = lo + 1
	}
	step := (hi - lo) / float64(n-1)
	norm := 1 / (float64(len(clean)) * h * math.Sqrt(2*math.Pi))

	out := make([]DensityPoint, n)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		var sum float64
		for _, v := range clean {
			z := (x - v) / h
			sum += math.Exp(-0.5 * z * z)
		}
		out[i] = DensityPoint{X: x, Density: sum * norm}
	}
	return out, nil
}

// silverman computes the rule-of-thumb bandwidth over sorted values.
func silverman(sorted []float64) float64 {
	n := float64(len(sorted))
	mean := 0.0
	for _, v := range sorted {
		mean += v
	}
	mean /= n
	var m2 float64
	for _, v := range sorted {
		d := v - mean
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / (n - 1))
	}
	iqr := Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
	spread := std
	if iqr > 0 && iqr/1.34 < spread {
		spread = iqr / 1.34
	}
	if spread <= 0 {
		spread = 1
	}
	return 1.06 * spread * math.Pow(n, -0.2)
}
