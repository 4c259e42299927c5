package chart

import (
	"bytes"
	"testing"

	"github.com/jmorande/carscope/internal/stats"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, a *Artifact, err error, kind Kind) {
	t.Helper()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if a.Kind != kind {
		t.Fatalf("kind = %q, want %q", a.Kind, kind)
	}
	if a.ID == "" {
		t.Fatalf("artifact has no ID")
	}
	if !bytes.HasPrefix(a.PNG, pngMagic) {
		t.Fatalf("artifact is not a PNG (%d bytes)", len(a.PNG))
	}
}

func someBins(n int) []stats.Bin {
	values := make([]float64, 0, 100)
	for i := 0; i < 100; i++ {
		values = append(values, float64(i%17)*100)
	}
	return stats.HistogramRange(values, n, 0, 1700)
}

func TestHistogramRender(t *testing.T) {
	a, err := Histogram("Price Distribution", "price", someBins(50))
	assertPNG(t, a, err, KindHistogram)
}

func TestHistogramNoBins(t *testing.T) {
	if _, err := Histogram("empty", "price", nil); err == nil {
		t.Fatalf("expected error for empty bins")
	}
}

func TestGroupedHistogramRender(t *testing.T) {
	groups := []Group{
		{Name: "ford", Bins: someBins(20)},
		{Name: "chevrolet", Bins: someBins(20)},
	}
	a, err := GroupedHistogram("Price by Manufacturer", "price", groups)
	assertPNG(t, a, err, KindGroupedHistogram)
}

func TestScatterRender(t *testing.T) {
	groups := map[string][]Point{
		"good":      {{X: 10000, Y: 5000}, {X: 20000, Y: 4500}, {X: 90000, Y: 2100}},
		"excellent": {{X: 5000, Y: 9000}, {X: 15000, Y: 8000}},
		"salvage":   {{X: 120000, Y: 700}},
	}
	a, err := Scatter("Price vs Mileage", "odometer", "price", groups)
	assertPNG(t, a, err, KindScatter)
}

func TestScatterNoPoints(t *testing.T) {
	if _, err := Scatter("empty", "x", "y", map[string][]Point{"good": {}}); err == nil {
		t.Fatalf("expected error for empty scatter")
	}
}

func TestViolinRender(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 5, 6, 9}
	profile, err := stats.KDE("price", values, 64)
	if err != nil {
		t.Fatalf("KDE: %v", err)
	}
	groups := []DensityGroup{
		{Name: "sedan", Profile: profile},
		{Name: "truck", Profile: profile},
	}
	a, err := Violin("Price Density", "price", groups)
	assertPNG(t, a, err, KindViolin)
}
