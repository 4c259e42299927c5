package prep

import (
	"testing"

	"github.com/jmorande/carscope/internal/dataset"
)

func TestManufacturer(t *testing.T) {
	cases := []struct {
		model string
		want  string
	}{
		{"Ford F-150", "ford"},
		{"chevrolet silverado 1500", "chevrolet"},
		{"BMW", "bmw"},
		{"  Toyota   Camry ", "toyota"},
		{"", "unknown"},
		{"   ", "unknown"},
		{"\t\n", "unknown"},
	}
	for _, tc := range cases {
		if got := Manufacturer(tc.model); got != tc.want {
			t.Errorf("Manufacturer(%q) = %q, want %q", tc.model, got, tc.want)
		}
	}
}

func TestManufacturerIdempotent(t *testing.T) {
	for _, model := range []string{"Ford F-150", "", "Land Rover Discovery", "bmw x5"} {
		once := Manufacturer(model)
		twice := Manufacturer(once)
		if once != twice {
			t.Errorf("Manufacturer not idempotent on %q: %q then %q", model, once, twice)
		}
	}
}

func TestDeriveManufacturers(t *testing.T) {
	table := &dataset.Table{Listings: []dataset.Listing{
		{Model: "Ford F-150"},
		{Model: "Ford Focus"},
		{Model: ""},
	}}
	DeriveManufacturers(table)
	if table.Listings[0].Manufacturer != "ford" || table.Listings[1].Manufacturer != "ford" {
		t.Fatalf("derivation failed: %+v", table.Listings)
	}
	if table.Listings[2].Manufacturer != UnknownManufacturer {
		t.Fatalf("empty model derived %q, want %q", table.Listings[2].Manufacturer, UnknownManufacturer)
	}

	counts := ManufacturerCounts(table)
	if counts["ford"] != 2 || counts[UnknownManufacturer] != 1 {
		t.Fatalf("counts = %v", counts)
	}
}
