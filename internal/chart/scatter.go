package chart

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// Point is one (x, y) sample of a scatter series.
type Point struct {
	X float64
	Y float64
}

// Scatter renders a dot plot of the given points, one colored series per group
// key (the color-column of the dashboard, typically condition). Group names are
// ordered so colors stay stable across recomputation passes.
func Scatter(title, xLabel, yLabel string, groups map[string][]Point) (*Artifact, error) {
	names := make([]string, 0, len(groups))
	for name, pts := range groups {
		if len(pts) > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("scatter %q: no points", title)
	}
	sort.Strings(names)

	series := make([]chart.Series, 0, len(names))
	for i, name := range names {
		pts := groups[name]
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for j, p := range pts {
			xs[j] = p.X
			ys[j] = p.Y
		}
		if len(xs) == 1 {
			// go-chart needs at least two X values per series.
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(seriesColor(i)),
		})
	}

	ch := chart.Chart{
		Title:      title,
		Width:      defaultWidth,
		Height:     defaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		XAxis:      chart.XAxis{Name: xLabel},
		YAxis:      chart.YAxis{Name: yLabel},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render scatter %q: %w", title, err)
	}
	return newArtifact(KindScatter, title, buf.Bytes()), nil
}
