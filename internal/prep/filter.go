package prep

import (
	"github.com/jmorande/carscope/internal/dataset"
	"github.com/jmorande/carscope/internal/stats"
)

// Filter is the conjunction of row predicates applied before charting. Bounds
// and Counts must come from the unfiltered table; filtering never feeds back
// into bound computation.
type Filter struct {
	Price    stats.Bounds
	Odometer stats.Bounds

	// MinCount > 0 enables the manufacturer frequency predicate: a listing
	// survives only if Counts[manufacturer] >= MinCount.
	MinCount int
	Counts   map[string]int
}

// Keep reports whether a single listing passes every active predicate.
func (f Filter) Keep(l dataset.Listing) bool {
	if !l.HasPrice() || !f.Price.Contains(l.Price) {
		return false
	}
	if !l.HasOdometer() || !f.Odometer.Contains(l.Odometer) {
		return false
	}
	if f.MinCount > 0 && f.Counts[l.Manufacturer] < f.MinCount {
		return false
	}
	return true
}

// Apply materializes the filtered listing set. An empty result is valid.
func (f Filter) Apply(t *dataset.Table) []dataset.Listing {
	out := make([]dataset.Listing, 0, len(t.Listings))
	for _, l := range t.Listings {
		if f.Keep(l) {
			out = append(out, l)
		}
	}
	return out
}
