package prep

import (
	"sort"

	"github.com/jmorande/carscope/internal/dataset"
	"github.com/jmorande/carscope/internal/stats"
)

// Options controls how a snapshot is prepared.
type Options struct {
	// Quantile levels for outlier bounds on price and odometer.
	LowQuantile  float64
	HighQuantile float64
	// DeriveManufacturer enables the manufacturer label, its frequency filter,
	// and the selector option list.
	DeriveManufacturer bool
	// MinManufacturerCount is the frequency threshold when derivation is on.
	MinManufacturerCount int
}

// DefaultOptions mirrors the dashboard defaults: 1st/99th percentile bounds and
// a minimum of 50 listings per manufacturer.
func DefaultOptions() Options {
	return Options{
		LowQuantile:          0.01,
		HighQuantile:         0.99,
		DeriveManufacturer:   true,
		MinManufacturerCount: 50,
	}
}

// Snapshot is everything the dashboard needs for one session: the source table,
// the bounds and frequency table computed from it unfiltered, the filtered
// listing set, and the selector option list. All fields are read-only after
// Build; a new source table means a new snapshot.
type Snapshot struct {
	Table    *dataset.Table
	Price    stats.Bounds
	Odometer stats.Bounds

	// Counts is the full-table manufacturer frequency table; nil when
	// derivation is disabled.
	Counts map[string]int

	Filtered []dataset.Listing

	// Manufacturers lists, in ascending order, the labels passing the frequency
	// threshold; this is the option list for the comparison selectors.
	Manufacturers []string
}

// Build computes bounds, derives manufacturers, and applies the row filter.
// The only failure mode is an all-missing price or odometer column.
func Build(t *dataset.Table, opt Options) (*Snapshot, error) {
	price, err := stats.OutlierBounds("price", t.Prices(), opt.LowQuantile, opt.HighQuantile)
	if err != nil {
		return nil, err
	}
	odometer, err := stats.OutlierBounds("odometer", t.Odometers(), opt.LowQuantile, opt.HighQuantile)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{Table: t, Price: price, Odometer: odometer}
	f := Filter{Price: price, Odometer: odometer}
	if opt.DeriveManufacturer {
		DeriveManufacturers(t)
		s.Counts = ManufacturerCounts(t)
		f.MinCount = opt.MinManufacturerCount
		f.Counts = s.Counts
		for m, c := range s.Counts {
			if c >= opt.MinManufacturerCount {
				s.Manufacturers = append(s.Manufacturers, m)
			}
		}
		sort.Strings(s.Manufacturers)
	}
	s.Filtered = f.Apply(t)
	return s, nil
}

// FilteredCounts tallies manufacturers over the filtered listing set only, which
// is what the top-K chart ranks.
func (s *Snapshot) FilteredCounts() map[string]int {
	counts := make(map[string]int)
	for _, l := range s.Filtered {
		counts[l.Manufacturer]++
	}
	return counts
}

// FilteredColumn returns the named numeric column restricted to the filtered
// set, optionally restricted further to one manufacturer ("" means all).
func (s *Snapshot) FilteredColumn(column, manufacturer string) []float64 {
	out := make([]float64, 0, len(s.Filtered))
	for _, l := range s.Filtered {
		if manufacturer != "" && l.Manufacturer != manufacturer {
			continue
		}
		switch column {
		case "price":
			if l.HasPrice() {
				out = append(out, l.Price)
			}
		case "odometer":
			if l.HasOdometer() {
				out = append(out, l.Odometer)
			}
		case "model_year":
			if l.HasModelYear() {
				out = append(out, l.ModelYear)
			}
		}
	}
	return out
}
