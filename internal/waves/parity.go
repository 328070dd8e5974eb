package waves

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// ErrMalformedSample is returned when a sample row cannot be parsed.
var ErrMalformedSample = errors.New("waves: malformed sample")

var sampleHeader = []string{"x", "z", "t", "elevation"}

// Sample is one plane-local field evaluation, typically captured from the
// renderer's displaced vertices.
type Sample struct {
	X, Z, T   float64
	Elevation float64
}

// WriteSamples writes samples as CSV with a header row.
func WriteSamples(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(sampleHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.X, 'g', -1, 64),
			strconv.FormatFloat(s.Z, 'g', -1, 64),
			strconv.FormatFloat(s.T, 'g', -1, 64),
			strconv.FormatFloat(s.Elevation, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadSamples parses CSV written by WriteSamples or an equivalent renderer
// dump. A leading header row is skipped.
func ReadSamples(r io.Reader) ([]Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	samples := make([]Sample, 0, len(records))
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && rec[0] == sampleHeader[0] {
			continue
		}
		if len(rec) < 4 {
			return nil, fmt.Errorf("line %d: want 4 fields, got %d: %w", i+1, len(rec), ErrMalformedSample)
		}
		var vals [4]float64
		for j := range vals {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w", i+1, j+1, ErrMalformedSample)
			}
			vals[j] = v
		}
		samples = append(samples, Sample{X: vals[0], Z: vals[1], T: vals[2], Elevation: vals[3]})
	}
	return samples, nil
}

// Report summarizes a parity check.
type Report struct {
	Count       int
	Mismatches  int
	MaxAbsError float64
	Worst       Sample
	Expected    float64
}

// OK reports whether every sample was within tolerance.
func (r Report) OK() bool { return r.Mismatches == 0 }

// Compare evaluates p at every sample and counts those whose recorded
// elevation differs by more than tol. GPU dumps are single precision, so
// tol should reflect float32 rounding of the renderer.
func Compare(p Parameters, samples []Sample, tol float64) Report {
	rep := Report{Count: len(samples)}
	for _, s := range samples {
		want := Elevation(s.X, s.Z, s.T, p)
		diff := math.Abs(want - s.Elevation)
		if math.IsNaN(diff) {
			diff = math.Inf(1)
		}
		if diff > tol {
			rep.Mismatches++
		}
		if diff > rep.MaxAbsError {
			rep.MaxAbsError = diff
			rep.Worst = s
			rep.Expected = want
		}
	}
	return rep
}
