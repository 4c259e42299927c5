// Package prep turns a raw listings table into the filtered, annotated form every
// chart consumes: outlier bounds, derived manufacturers, and the row filter.
package prep

import (
	"strings"

	"github.com/jmorande/carscope/internal/dataset"
)

// UnknownManufacturer is the sentinel label for listings whose model field is
// empty or blank.
const UnknownManufacturer = "unknown"

// Manufacturer extracts a best-effort manufacturer label from a free-text model
// string: the lower-cased first whitespace-delimited token. It is total and
// idempotent and never fails. The label is not a validated enumeration —
// multi-word makes ("land rover") will be truncated to their first token.
func Manufacturer(model string) string {
	fields := strings.Fields(model)
	if len(fields) == 0 {
		return UnknownManufacturer
	}
	return strings.ToLower(fields[0])
}

// DeriveManufacturers attaches the derived label to every listing in place.
// It must run over the whole table before any frequency counting.
func DeriveManufacturers(t *dataset.Table) {
	for i := range t.Listings {
		t.Listings[i].Manufacturer = Manufacturer(t.Listings[i].Model)
	}
}

// ManufacturerCounts tallies derived labels across the full table. Listings that
// have not been derived yet count under the empty string, so call
// DeriveManufacturers first.
func ManufacturerCounts(t *dataset.Table) map[string]int {
	counts := make(map[string]int)
	for _, l := range t.Listings {
		counts[l.Manufacturer]++
	}
	return counts
}
