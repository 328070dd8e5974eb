package waves

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestSamplesRoundTrip(t *testing.T) {
	h := NewHeightmap(DefaultParameters(), 10, 4, 2.5)
	samples := h.Samples()

	var buf bytes.Buffer
	if err := WriteSamples(&buf, samples); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := ReadSamples(&buf)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(got) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(got))
	}
	for i := range got {
		if got[i] != samples[i] {
			t.Fatalf("sample %d: got %+v, want %+v", i, got[i], samples[i])
		}
	}
}

func TestReadSamplesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short row", "x,z,t,elevation\n1,2,3\n"},
		{"bad float", "1,2,3,abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSamples(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedSample) {
				t.Errorf("expected ErrMalformedSample, got %v", err)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	p := DefaultParameters()
	samples := NewHeightmap(p, 20, 16, 4).Samples()

	rep := Compare(p, samples, 1e-9)
	if !rep.OK() || rep.MaxAbsError != 0 {
		t.Errorf("expected exact parity, got %+v", rep)
	}

	// Simulate a renderer evaluating in single precision.
	for i := range samples {
		samples[i].Elevation = float64(float32(samples[i].Elevation))
	}
	rep = Compare(p, samples, 1e-6)
	if !rep.OK() {
		t.Errorf("float32 rounding should pass at 1e-6, got %d mismatches", rep.Mismatches)
	}

	samples[3].Elevation += 0.01
	samples[5].Elevation = math.NaN()
	rep = Compare(p, samples, 1e-6)
	if rep.Mismatches != 2 {
		t.Errorf("expected 2 mismatches, got %d", rep.Mismatches)
	}
	if !math.IsNaN(rep.Worst.Elevation) {
		t.Errorf("expected NaN sample to be worst, got %+v", rep.Worst)
	}
	if !math.IsInf(rep.MaxAbsError, 1) {
		t.Errorf("expected infinite max error, got %v", rep.MaxAbsError)
	}
}

func TestCompareRejectsDifferentParams(t *testing.T) {
	p := DefaultParameters()
	samples := NewHeightmap(p, 20, 16, 4).Samples()

	q := p
	q.Lacunarity = 2.2
	if rep := Compare(q, samples, 1e-6); rep.OK() {
		t.Error("expected mismatches for different lacunarity")
	}
}
