package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jmorande/carscope/internal/stats"
)

// Histogram renders a single-column histogram from precomputed bins.
func Histogram(title, xLabel string, bins []stats.Bin) (*Artifact, error) {
	if len(bins) == 0 {
		return nil, fmt.Errorf("histogram %q: no bins", title)
	}
	// Label only a handful of bars so 50-bin histograms stay readable.
	step := len(bins) / 8
	if step < 1 {
		step = 1
	}
	bars := make([]chart.Value, len(bins))
	for i, b := range bins {
		bars[i] = chart.Value{Value: float64(b.Count)}
		if i%step == 0 {
			bars[i].Label = fmt.Sprintf("%.0f", b.Low)
		}
	}

	barWidth := (defaultWidth - 100) / len(bins)
	if barWidth < 2 {
		barWidth = 2
	}
	ch := chart.BarChart{
		Title:      title,
		Width:      defaultWidth,
		Height:     defaultHeight,
		BarWidth:   barWidth,
		BarSpacing: 1,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		YAxis:      chart.YAxis{Name: "count"},
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render histogram %q: %w", title, err)
	}
	return newArtifact(KindHistogram, title, buf.Bytes()), nil
}

// GroupedHistogram overlays one frequency polygon per group on shared bin edges,
// the comparison view behind the two manufacturer selectors.
func GroupedHistogram(title, xLabel string, groups []Group) (*Artifact, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("grouped histogram %q: no groups", title)
	}
	series := make([]chart.Series, 0, len(groups))
	for i, g := range groups {
		if len(g.Bins) < 2 {
			continue
		}
		xs := make([]float64, len(g.Bins))
		ys := make([]float64, len(g.Bins))
		for j, b := range g.Bins {
			xs[j] = b.Center()
			ys[j] = float64(b.Count)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    g.Name,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(seriesColor(i)),
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("grouped histogram %q: all groups empty", title)
	}

	ch := chart.Chart{
		Title:      title,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: xLabel},
		YAxis:      chart.YAxis{Name: "count"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render grouped histogram %q: %w", title, err)
	}
	return newArtifact(KindGroupedHistogram, title, buf.Bytes()), nil
}

// Group is one named series of histogram bins or raw values.
type Group struct {
	Name string
	Bins []stats.Bin
}
