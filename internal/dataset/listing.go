package dataset

import (
	"math"
	"sort"
)

// Listing is one row of the vehicle dataset. Numeric fields use NaN to mark a
// missing cell so that slices of them stay allocation-friendly.
type Listing struct {
	Price     float64
	Odometer  float64
	Model     string
	Condition string
	Type      string
	ModelYear float64

	// Manufacturer is derived from Model after load; empty until derivation runs.
	Manufacturer string
}

// HasPrice reports whether the price cell was present in the source.
func (l Listing) HasPrice() bool { return !math.IsNaN(l.Price) }

// HasOdometer reports whether the odometer cell was present in the source.
func (l Listing) HasOdometer() bool { return !math.IsNaN(l.Odometer) }

// HasModelYear reports whether the model_year cell was present in the source.
func (l Listing) HasModelYear() bool { return !math.IsNaN(l.ModelYear) }

// Table holds the loaded listings plus the identifier they were loaded from.
type Table struct {
	Source   string
	Listings []Listing
}

// Len returns the number of listings.
func (t *Table) Len() int { return len(t.Listings) }

// Prices returns the non-missing price values in row order.
func (t *Table) Prices() []float64 {
	return t.column(func(l Listing) (float64, bool) { return l.Price, l.HasPrice() })
}

// Odometers returns the non-missing odometer values in row order.
func (t *Table) Odometers() []float64 {
	return t.column(func(l Listing) (float64, bool) { return l.Odometer, l.HasOdometer() })
}

// ModelYears returns the non-missing model_year values in row order.
func (t *Table) ModelYears() []float64 {
	return t.column(func(l Listing) (float64, bool) { return l.ModelYear, l.HasModelYear() })
}

func (t *Table) column(get func(Listing) (float64, bool)) []float64 {
	out := make([]float64, 0, len(t.Listings))
	for _, l := range t.Listings {
		if v, ok := get(l); ok {
			out = append(out, v)
		}
	}
	return out
}

// Column resolves one of the numeric column names to its values.
// Recognized names: price, odometer, model_year.
func (t *Table) Column(name string) ([]float64, bool) {
	switch name {
	case "price":
		return t.Prices(), true
	case "odometer":
		return t.Odometers(), true
	case "model_year":
		return t.ModelYears(), true
	}
	return nil, false
}

// Conditions returns the distinct condition labels in ascending order.
func (t *Table) Conditions() []string {
	seen := map[string]bool{}
	for _, l := range t.Listings {
		if l.Condition != "" {
			seen[l.Condition] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
