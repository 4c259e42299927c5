package dashboard

// Selections captures the interaction surface as plain values: which charts are
// toggled on and which manufacturers the two comparison selectors hold. The CLI
// fills this from flags and config; nothing here knows about either.
type Selections struct {
	PriceHistogram  bool
	MileageScatter  bool
	TopManufacturer bool
	TypeViolin      bool

	CompareManufacturers bool
	Manufacturer1        string
	Manufacturer2        string

	// Bins is the histogram bin count; 0 means the default of 50.
	Bins int
	// TopK is how many manufacturers the top chart ranks; 0 means 10.
	TopK int
}

const (
	defaultBins = 50
	defaultTopK = 10
)

func (s Selections) bins() int {
	if s.Bins > 0 {
		return s.Bins
	}
	return defaultBins
}

func (s Selections) topK() int {
	if s.TopK > 0 {
		return s.TopK
	}
	return defaultTopK
}

// Any reports whether at least one chart is toggled on.
func (s Selections) Any() bool {
	return s.PriceHistogram || s.MileageScatter || s.TopManufacturer || s.TypeViolin || s.CompareManufacturers
}
