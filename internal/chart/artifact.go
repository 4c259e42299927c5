// Package chart renders the dashboard's visual artifacts with go-chart. It is a
// pure consumer: it takes prepared columns and bins and returns PNG bytes, and
// never reaches back into loading or filtering.
package chart

import (
	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Kind names the chart variants the dashboard can produce.
type Kind string

const (
	KindHistogram        Kind = "histogram"
	KindScatter          Kind = "scatter"
	KindGroupedHistogram Kind = "grouped_histogram"
	KindViolin           Kind = "violin"
)

// Artifact is one rendered chart, ready to write to disk or hand to a viewer.
type Artifact struct {
	ID    string
	Kind  Kind
	Title string
	PNG   []byte
}

const (
	defaultWidth  = 1024
	defaultHeight = 560
)

func newArtifact(kind Kind, title string, png []byte) *Artifact {
	return &Artifact{ID: uuid.NewString(), Kind: kind, Title: title, PNG: png}
}

// seriesColor cycles the go-chart palette for grouped series.
func seriesColor(i int) drawing.Color {
	return chart.GetDefaultColor(i)
}

// pointStyle returns a style that renders points only (no connecting line).
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

// lineStyle renders a series as a plain stroked line.
func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}
