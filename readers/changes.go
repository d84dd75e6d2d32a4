package readers

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Column positions in the benchmark CSV.
const (
	totalChangesCol = 0
	avgTimeCol      = 4

	minFields = avgTimeCol + 1
)

// ChangeSeries holds the points of a CRDT benchmark run.
// TotalChanges[i] and AvgTimeMs[i] come from the same row,
// and rows appear in file order.
type ChangeSeries struct {
	TotalChanges []int64
	AvgTimeMs    []float64
}

func (s *ChangeSeries) Len() int { return len(s.TotalChanges) }

// XY returns the i-th point as float64s.
func (s *ChangeSeries) XY(i int) (x, y float64) {
	return float64(s.TotalChanges[i]), s.AvgTimeMs[i]
}

// FormatError reports a data row that could not be parsed.
type FormatError struct {
	Line   int // 1-based line in the input
	Column int // -1 if the row is too short
	Value  string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %d: bad value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

var errShortRow = errors.New("row has fewer than 5 fields")

// ReadChanges parses benchmark CSV output. The first row is a header
// and is skipped without being looked at. Every later row contributes
// column 0 as the total change count and column 4 as the average time
// per change in milliseconds.
func ReadChanges(r io.Reader) (*ChangeSeries, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		return nil, errors.Wrap(err, "missing header")
	}

	var s ChangeSeries
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		if len(rec) < minFields {
			return nil, &FormatError{Line: line, Column: -1, Err: errShortRow}
		}

		x, err := strconv.ParseInt(strings.TrimSpace(rec[totalChangesCol]), 10, 64)
		if err != nil {
			return nil, &FormatError{Line: line, Column: totalChangesCol, Value: rec[totalChangesCol], Err: err}
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[avgTimeCol]), 64)
		if err != nil {
			return nil, &FormatError{Line: line, Column: avgTimeCol, Value: rec[avgTimeCol], Err: err}
		}

		s.TotalChanges = append(s.TotalChanges, x)
		s.AvgTimeMs = append(s.AvgTimeMs, y)
	}
	return &s, nil
}

// ReadChangesFile reads the benchmark CSV at p, gunzipping it
// first if the name ends in .gz. Errors from opening the file are
// returned as is.
func ReadChangesFile(p string) (*ChangeSeries, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(p, ".gz") {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", p)
		}
		defer gr.Close()
		r = gr
	}

	s, err := ReadChanges(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", p)
	}
	return s, nil
}
