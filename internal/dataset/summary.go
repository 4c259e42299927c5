package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmorande/carscope/internal/stats"
)

// Summary is a markdown-friendly overview of a loaded table, one entry per
// schema column.
type Summary struct {
	Source  string
	Rows    int
	Numeric []NumericColumnSummary
	Labels  []LabelColumnSummary
}

// NumericColumnSummary captures the usual descriptive stats for one numeric column.
type NumericColumnSummary struct {
	Name    string
	NonNull int
	Missing int
	Min     float64
	Max     float64
	Mean    float64
	Std     float64
}

// LabelColumnSummary captures cardinality and top values for one categorical column.
type LabelColumnSummary struct {
	Name    string
	NonNull int
	Missing int
	Unique  int
	Top     []stats.CategoryCount
}

// Summarize computes the per-column overview of t.
func Summarize(t *Table) *Summary {
	s := &Summary{Source: t.Source, Rows: t.Len()}
	for _, name := range []string{"price", "odometer", "model_year"} {
		values, _ := t.Column(name)
		s.Numeric = append(s.Numeric, summarizeNumeric(name, values, t.Len()))
	}
	for _, col := range []struct {
		name string
		get  func(Listing) string
	}{
		{"model", func(l Listing) string { return l.Model }},
		{"condition", func(l Listing) string { return l.Condition }},
		{"type", func(l Listing) string { return l.Type }},
	} {
		values := make([]string, 0, t.Len())
		missing := 0
		for _, l := range t.Listings {
			v := col.get(l)
			if v == "" {
				missing++
				continue
			}
			values = append(values, v)
		}
		counts := stats.Counts(values)
		s.Labels = append(s.Labels, LabelColumnSummary{
			Name:    col.name,
			NonNull: len(values),
			Missing: missing,
			Unique:  len(counts),
			Top:     stats.TopK(counts, 8),
		})
	}
	return s
}

func summarizeNumeric(name string, values []float64, rows int) NumericColumnSummary {
	c := NumericColumnSummary{Name: name, NonNull: len(values), Missing: rows - len(values)}
	if len(values) == 0 {
		return c
	}
	c.Min, c.Max = math.Inf(1), math.Inf(-1)
	// Welford keeps mean/std stable on large tables.
	var mean, m2 float64
	for i, v := range values {
		if v < c.Min {
			c.Min = v
		}
		if v > c.Max {
			c.Max = v
		}
		delta := v - mean
		mean += delta / float64(i+1)
		m2 += delta * (v - mean)
	}
	c.Mean = mean
	if len(values) > 1 {
		c.Std = math.Sqrt(m2 / float64(len(values)-1))
	}
	return c
}

// Markdown renders the summary in a compact prompt-friendly layout.
func (s *Summary) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if s.Source != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", s.Source))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n\n", s.Rows))

	b.WriteString("[SCHEMA]\n")
	for _, c := range s.Numeric {
		b.WriteString(fmt.Sprintf("- %s: numeric (non-null %d, missing %.1f%%)", c.Name, c.NonNull, missPct(c.Missing, s.Rows)))
		if c.NonNull > 0 {
			b.WriteString(fmt.Sprintf(" min %.4g, max %.4g, mean %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Std))
		}
		b.WriteString("\n")
	}
	for _, c := range s.Labels {
		b.WriteString(fmt.Sprintf("- %s: categorical (non-null %d, missing %.1f%%)", c.Name, c.NonNull, missPct(c.Missing, s.Rows)))
		if len(c.Top) > 0 {
			b.WriteString(" top: ")
			for i, kv := range c.Top {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(fmt.Sprintf("%s(%d)", kv.Value, kv.Count))
			}
			if c.Unique > len(c.Top) {
				b.WriteString(fmt.Sprintf("; unique=%d", c.Unique))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func missPct(missing, rows int) float64 {
	if rows == 0 {
		return 0
	}
	return float64(missing) * 100 / float64(rows)
}
