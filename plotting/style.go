package plotting

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

// Style holds everything about the trace figure that is not data.
type Style struct {
	Title       string  `json:"title"`
	XLabel      string  `json:"xLabel"`
	YLabel      string  `json:"yLabel"`
	SeriesLabel string  `json:"seriesLabel"`
	WidthInch   float64 `json:"widthInch"`
	HeightInch  float64 `json:"heightInch"`
	DPI         int     `json:"dpi"`
	YTicks      int     `json:"yTicks"` // target number of y-axis intervals
}

func DefaultStyle() Style {
	return Style{
		Title:       "CRDT Benchmark: Average Time per Change vs Total Changes",
		XLabel:      "Total Changes",
		YLabel:      "Average Time (Milliseconds)",
		SeriesLabel: "Average Time per Change",
		WidthInch:   10,
		HeightInch:  6,
		DPI:         100,
		YTicks:      20,
	}
}

func (s Style) width() vg.Length  { return vg.Length(s.WidthInch) * vg.Inch }
func (s Style) height() vg.Length { return vg.Length(s.HeightInch) * vg.Inch }

func (s Style) validate() error {
	switch {
	case s.WidthInch <= 0 || s.HeightInch <= 0:
		return errors.Errorf("figure size must be positive, got %gx%g", s.WidthInch, s.HeightInch)
	case s.DPI <= 0:
		return errors.Errorf("dpi must be positive, got %d", s.DPI)
	case s.YTicks <= 0:
		return errors.Errorf("yTicks must be positive, got %d", s.YTicks)
	}
	return nil
}

// DecodeStyle reads a JSON style from r on top of the defaults.
// Fields missing from the JSON keep their default values.
func DecodeStyle(r io.Reader) (Style, error) {
	st := DefaultStyle()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&st); err != nil {
		return Style{}, errors.Wrap(err, "unable to decode style")
	}
	if err := st.validate(); err != nil {
		return Style{}, err
	}
	return st, nil
}
