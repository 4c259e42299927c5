package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// RequiredColumns is the minimum schema the loader accepts. Extra columns in the
// source are ignored.
var RequiredColumns = []string{"price", "odometer", "model", "condition", "type", "model_year"}

// Load reads a delimited text file into a Table. Any failure to open, parse, or
// match the required schema is reported as a *DataSourceError.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = sniffDelimiter(path)

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DataSourceError{Path: path, Err: errors.New("empty file")}
		}
		return nil, &DataSourceError{Path: path, Err: fmt.Errorf("read header: %w", err)}
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range RequiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, &DataSourceError{Path: path, Err: fmt.Errorf("missing column %q", name)}
		}
	}

	t := &Table{Source: path}
	row := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, &DataSourceError{Path: path, Err: fmt.Errorf("read row %d: %w", row+1, err)}
		}
		row++

		l := Listing{
			Model:     cell(rec, idx["model"]),
			Condition: cell(rec, idx["condition"]),
			Type:      cell(rec, idx["type"]),
		}
		if l.Price, err = numericCell(rec, idx["price"]); err != nil {
			return nil, &DataSourceError{Path: path, Err: fmt.Errorf("row %d, column price: %w", row, err)}
		}
		if l.Odometer, err = numericCell(rec, idx["odometer"]); err != nil {
			return nil, &DataSourceError{Path: path, Err: fmt.Errorf("row %d, column odometer: %w", row, err)}
		}
		if l.ModelYear, err = numericCell(rec, idx["model_year"]); err != nil {
			return nil, &DataSourceError{Path: path, Err: fmt.Errorf("row %d, column model_year: %w", row, err)}
		}
		t.Listings = append(t.Listings, l)
	}
	return t, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// numericCell parses a numeric cell; an empty cell is missing, not an error.
func numericCell(rec []string, i int) (float64, error) {
	s := cell(rec, i)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return v, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
