package stats

import (
	"errors"
	"math"
	"testing"
)

func TestHistogramCountsSum(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	bins, err := Histogram("price", values, 5)
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if len(bins) != 5 {
		t.Fatalf("got %d bins, want 5", len(bins))
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != len(values) {
		t.Fatalf("bin counts sum to %d, want %d", total, len(values))
	}
	// The maximum lands in the closed last bin.
	if bins[4].Count == 0 {
		t.Fatalf("last bin empty; maximum was dropped")
	}
}

func TestHistogramIgnoresNaN(t *testing.T) {
	values := []float64{1, math.NaN(), 2, 3}
	bins, err := Histogram("odometer", values, 3)
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != 3 {
		t.Fatalf("bin counts sum to %d, want 3", total)
	}
}

func TestHistogramEmpty(t *testing.T) {
	_, err := Histogram("price", nil, 10)
	var empty *EmptyColumnError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyColumnError, got %v", err)
	}
}

func TestHistogramRangeSharedEdges(t *testing.T) {
	a := HistogramRange([]float64{0, 5, 10}, 2, 0, 10)
	b := HistogramRange([]float64{2, 8}, 2, 0, 10)
	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("bin counts: %d, %d, want 2 each", len(a), len(b))
	}
	for i := range a {
		if a[i].Low != b[i].Low || a[i].High != b[i].High {
			t.Fatalf("edges differ at bin %d: %+v vs %+v", i, a[i], b[i])
		}
	}
	// Out-of-range values are dropped, not clamped.
	c := HistogramRange([]float64{-1, 11, 5}, 2, 0, 10)
	total := 0
	for _, bin := range c {
		total += bin.Count
	}
	if total != 1 {
		t.Fatalf("out-of-range values counted: total %d, want 1", total)
	}
}

func TestHistogramRangeDegenerate(t *testing.T) {
	bins := HistogramRange([]float64{4, 4, 4}, 10, 4, 4)
	if len(bins) != 1 {
		t.Fatalf("got %d bins, want 1", len(bins))
	}
	if bins[0].Count != 3 {
		t.Fatalf("degenerate bin count = %d, want 3", bins[0].Count)
	}
}
