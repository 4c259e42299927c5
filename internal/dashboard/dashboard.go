// Package dashboard runs one recomputation pass: a pure function from the
// prepared snapshot and the current selections to rendered artifacts. Selection
// problems become warnings, an empty column becomes a per-chart skip, and only
// genuine render failures surface as errors.
package dashboard

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jmorande/carscope/internal/chart"
	"github.com/jmorande/carscope/internal/prep"
	"github.com/jmorande/carscope/internal/stats"
)

// Chart names used for skip reporting and artifact file naming.
const (
	ChartPriceHistogram  = "price_histogram"
	ChartMileageScatter  = "mileage_scatter"
	ChartTopManufacturer = "top_manufacturers"
	ChartTypeViolin      = "type_violin"
	ChartComparison      = "manufacturer_comparison"
)

// Result is the outcome of one pass. Skipped maps a chart name to the reason it
// produced no artifact; Warnings carry selector problems.
type Result struct {
	Artifacts []*chart.Artifact
	Warnings  []string
	Skipped   map[string]string
}

// Run renders every selected chart against the snapshot. It never mutates the
// snapshot, so repeated passes over the same session are deterministic.
func Run(snap *prep.Snapshot, sel Selections) (*Result, error) {
	res := &Result{Skipped: map[string]string{}}

	if sel.PriceHistogram {
		a, err := priceHistogram(snap, sel)
		if err := res.add(ChartPriceHistogram, a, err); err != nil {
			return nil, err
		}
	}
	if sel.MileageScatter {
		a, err := mileageScatter(snap)
		if err := res.add(ChartMileageScatter, a, err); err != nil {
			return nil, err
		}
	}
	if sel.TopManufacturer {
		a, err := topManufacturerHistogram(snap, sel)
		if err := res.add(ChartTopManufacturer, a, err); err != nil {
			return nil, err
		}
	}
	if sel.TypeViolin {
		a, err := typeViolin(snap)
		if err := res.add(ChartTypeViolin, a, err); err != nil {
			return nil, err
		}
	}
	if sel.CompareManufacturers {
		a, warn, err := comparison(snap, sel)
		if warn != "" {
			res.Warnings = append(res.Warnings, warn)
		} else if err := res.add(ChartComparison, a, err); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// add records an artifact, converting an empty-column failure into a skip.
func (r *Result) add(name string, a *chart.Artifact, err error) error {
	var empty *stats.EmptyColumnError
	switch {
	case errors.As(err, &empty):
		r.Skipped[name] = fmt.Sprintf("insufficient data: %v", empty)
		return nil
	case err != nil:
		return fmt.Errorf("%s: %w", name, err)
	default:
		r.Artifacts = append(r.Artifacts, a)
		return nil
	}
}

func priceHistogram(snap *prep.Snapshot, sel Selections) (*chart.Artifact, error) {
	bins, err := stats.Histogram("price", snap.FilteredColumn("price", ""), sel.bins())
	if err != nil {
		return nil, err
	}
	return chart.Histogram("Price Distribution (outliers filtered)", "price", bins)
}

func mileageScatter(snap *prep.Snapshot) (*chart.Artifact, error) {
	groups := map[string][]chart.Point{}
	for _, l := range snap.Filtered {
		if !l.HasPrice() || !l.HasOdometer() {
			continue
		}
		cond := l.Condition
		if cond == "" {
			cond = "unknown"
		}
		groups[cond] = append(groups[cond], chart.Point{X: l.Odometer, Y: l.Price})
	}
	if len(groups) == 0 {
		return nil, &stats.EmptyColumnError{Column: "odometer"}
	}
	return chart.Scatter("Price vs Mileage by Condition", "odometer", "price", groups)
}

func topManufacturerHistogram(snap *prep.Snapshot, sel Selections) (*chart.Artifact, error) {
	tops := stats.TopK(snap.FilteredCounts(), sel.topK())
	if len(tops) == 0 {
		return nil, &stats.EmptyColumnError{Column: "manufacturer"}
	}
	groups := make([]chart.Group, 0, len(tops))
	for _, tc := range tops {
		values := snap.FilteredColumn("price", tc.Value)
		if len(values) == 0 {
			continue
		}
		groups = append(groups, chart.Group{
			Name: tc.Value,
			Bins: stats.HistogramRange(values, sel.bins(), snap.Price.Low, snap.Price.High),
		})
	}
	if len(groups) == 0 {
		return nil, &stats.EmptyColumnError{Column: "price"}
	}
	return chart.GroupedHistogram("Price by Top Manufacturers", "price", groups)
}

func typeViolin(snap *prep.Snapshot) (*chart.Artifact, error) {
	byType := map[string][]float64{}
	for _, l := range snap.Filtered {
		if !l.HasPrice() || l.Type == "" {
			continue
		}
		byType[l.Type] = append(byType[l.Type], l.Price)
	}
	if len(byType) == 0 {
		return nil, &stats.EmptyColumnError{Column: "type"}
	}
	names := make([]string, 0, len(byType))
	for name := range byType {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]chart.DensityGroup, 0, len(names))
	for _, name := range names {
		profile, err := stats.KDE("price", byType[name], 128)
		if err != nil {
			continue
		}
		groups = append(groups, chart.DensityGroup{Name: name, Profile: profile})
	}
	if len(groups) == 0 {
		return nil, &stats.EmptyColumnError{Column: "price"}
	}
	return chart.Violin("Price Density by Vehicle Type", "price", groups)
}

// comparison builds the two-selector chart. A bad selection is not an error: it
// suppresses the chart and returns a warning instead.
func comparison(snap *prep.Snapshot, sel Selections) (*chart.Artifact, string, error) {
	m1, m2 := sel.Manufacturer1, sel.Manufacturer2
	if m1 == "" || m2 == "" {
		return nil, "comparison needs both manufacturer selectors set", nil
	}
	if m1 == m2 {
		return nil, fmt.Sprintf("both selectors hold %q; pick two different manufacturers", m1), nil
	}
	for _, m := range []string{m1, m2} {
		if !contains(snap.Manufacturers, m) {
			return nil, fmt.Sprintf("manufacturer %q is not in the selectable list", m), nil
		}
	}

	v1 := snap.FilteredColumn("price", m1)
	v2 := snap.FilteredColumn("price", m2)
	if len(v1) == 0 && len(v2) == 0 {
		return nil, "", &stats.EmptyColumnError{Column: "price"}
	}
	groups := []chart.Group{
		{Name: m1, Bins: stats.HistogramRange(v1, sel.bins(), snap.Price.Low, snap.Price.High)},
		{Name: m2, Bins: stats.HistogramRange(v2, sel.bins(), snap.Price.Low, snap.Price.High)},
	}
	a, err := chart.GroupedHistogram(fmt.Sprintf("Price: %s vs %s", m1, m2), "price", groups)
	return a, "", err
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
