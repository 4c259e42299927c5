package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jmorande/carscope/internal/stats"
)

// DensityGroup is one named density curve for a violin-style comparison.
type DensityGroup struct {
	Name    string
	Profile []stats.DensityPoint
}

// Violin renders kernel density profiles for each group over a shared value
// axis. go-chart has no native violin geometry, so the comparison is drawn as
// overlaid density curves, which carries the same information.
func Violin(title, xLabel string, groups []DensityGroup) (*Artifact, error) {
	series := make([]chart.Series, 0, len(groups))
	for i, g := range groups {
		if len(g.Profile) < 2 {
			continue
		}
		xs := make([]float64, len(g.Profile))
		ys := make([]float64, len(g.Profile))
		for j, p := range g.Profile {
			xs[j] = p.X
			ys[j] = p.Density
		}
		series = append(series, chart.ContinuousSeries{
			Name:    g.Name,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(seriesColor(i)),
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("violin %q: no density profiles", title)
	}

	ch := chart.Chart{
		Title:      title,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: xLabel},
		YAxis:      chart.YAxis{Name: "density"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render violin %q: %w", title, err)
	}
	return newArtifact(KindViolin, title, buf.Bytes()), nil
}
