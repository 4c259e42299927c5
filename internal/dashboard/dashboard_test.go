package dashboard

import (
	"strings"
	"testing"

	"github.com/jmorande/carscope/internal/dataset"
	"github.com/jmorande/carscope/internal/prep"
)

func buildSnapshot(t *testing.T) *prep.Snapshot {
	t.Helper()
	table := &dataset.Table{Source: "fixture"}
	add := func(model string, price, odometer float64, cond, typ string) {
		table.Listings = append(table.Listings, dataset.Listing{
			Model: model, Price: price, Odometer: odometer, Condition: cond, Type: typ, ModelYear: 2012,
		})
	}
	for i := 0; i < 8; i++ {
		add("Ford F-150", 9000+float64(i)*250, 40000+float64(i)*5000, "good", "truck")
	}
	for i := 0; i < 6; i++ {
		add("Chevrolet Malibu", 7000+float64(i)*300, 60000+float64(i)*4000, "excellent", "sedan")
	}
	for i := 0; i < 5; i++ {
		add("Toyota Corolla", 6500+float64(i)*200, 80000+float64(i)*3000, "fair", "sedan")
	}
	snap, err := prep.Build(table, prep.Options{
		LowQuantile: 0, HighQuantile: 1,
		DeriveManufacturer: true, MinManufacturerCount: 5,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return snap
}

func TestRunRendersSelectedCharts(t *testing.T) {
	snap := buildSnapshot(t)
	sel := Selections{
		PriceHistogram:  true,
		MileageScatter:  true,
		TopManufacturer: true,
		TypeViolin:      true,
		Bins:            20,
	}
	res, err := Run(snap, sel)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Artifacts) != 4 {
		t.Fatalf("got %d artifacts, want 4 (skipped: %v)", len(res.Artifacts), res.Skipped)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}
	for _, a := range res.Artifacts {
		if len(a.PNG) == 0 {
			t.Fatalf("artifact %q has no PNG bytes", a.Title)
		}
	}
}

func TestRunNothingSelected(t *testing.T) {
	res, err := Run(buildSnapshot(t), Selections{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Artifacts) != 0 || len(res.Warnings) != 0 || len(res.Skipped) != 0 {
		t.Fatalf("empty selection should produce nothing, got %+v", res)
	}
}

func TestRunComparison(t *testing.T) {
	snap := buildSnapshot(t)
	sel := Selections{
		CompareManufacturers: true,
		Manufacturer1:        "ford",
		Manufacturer2:        "chevrolet",
		Bins:                 15,
	}
	res, err := Run(snap, sel)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Artifacts) != 1 {
		t.Fatalf("got %d artifacts, want 1", len(res.Artifacts))
	}
	if got := res.Artifacts[0].Title; !strings.Contains(got, "ford") || !strings.Contains(got, "chevrolet") {
		t.Fatalf("comparison title = %q", got)
	}
}

func TestRunComparisonIdenticalSelectorsSuppressed(t *testing.T) {
	snap := buildSnapshot(t)
	sel := Selections{
		CompareManufacturers: true,
		Manufacturer1:        "ford",
		Manufacturer2:        "ford",
	}
	res, err := Run(snap, sel)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Artifacts) != 0 {
		t.Fatalf("identical selectors should suppress the chart")
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "ford") {
		t.Fatalf("warnings = %v", res.Warnings)
	}
}

func TestRunComparisonUnknownManufacturer(t *testing.T) {
	snap := buildSnapshot(t)
	sel := Selections{
		CompareManufacturers: true,
		Manufacturer1:        "ford",
		Manufacturer2:        "delorean",
	}
	res, err := Run(snap, sel)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Artifacts) != 0 || len(res.Warnings) != 1 {
		t.Fatalf("unknown selector should warn and suppress, got %+v", res)
	}
}

func TestRunInsufficientDataSkipsChartOnly(t *testing.T) {
	// No type labels at all: the violin has nothing to estimate, but the
	// histogram still renders.
	table := &dataset.Table{Source: "fixture"}
	for i := 0; i < 6; i++ {
		table.Listings = append(table.Listings, dataset.Listing{
			Model: "Ford F-150", Price: 5000 + float64(i)*100, Odometer: 40000 + float64(i)*1000,
		})
	}
	snap, err := prep.Build(table, prep.Options{LowQuantile: 0, HighQuantile: 1, DeriveManufacturer: true, MinManufacturerCount: 5})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	res, err := Run(snap, Selections{PriceHistogram: true, TypeViolin: true, Bins: 5})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Artifacts) != 1 {
		t.Fatalf("got %d artifacts, want just the histogram", len(res.Artifacts))
	}
	reason, ok := res.Skipped[ChartTypeViolin]
	if !ok || !strings.Contains(reason, "insufficient data") {
		t.Fatalf("violin skip missing: %v", res.Skipped)
	}
}

func TestSelectionsDefaults(t *testing.T) {
	var s Selections
	if s.bins() != 50 {
		t.Fatalf("default bins = %d, want 50", s.bins())
	}
	if s.topK() != 10 {
		t.Fatalf("default topK = %d, want 10", s.topK())
	}
	if s.Any() {
		t.Fatalf("zero selections should report Any() == false")
	}
}
