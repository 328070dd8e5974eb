package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

type Bin struct {
	Freq  float64
	Power float64
}

// Spectrum returns the one-sided magnitude spectrum of series sampled every
// dt seconds. The mean is removed first so the DC bin is not dominant.
func Spectrum(series []float64, dt float64) []Bin {
	if len(series) < 2 || dt <= 0 {
		return nil
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}

	out := fft.FFTReal(centered)
	n := len(out)
	bins := make([]Bin, n/2)
	for i := range bins {
		bins[i] = Bin{
			Freq:  float64(i) / (float64(n) * dt),
			Power: cmplx.Abs(out[i]),
		}
	}
	return bins
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin.
// ok is false for series too short or too flat to have one.
func DominantFrequency(series []float64, dt float64) (freq float64, ok bool) {
	bins := Spectrum(series, dt)
	best := 0.0
	for _, b := range bins[min(1, len(bins)):] {
		if b.Power > best {
			best = b.Power
			freq = b.Freq
		}
	}
	return freq, best > 1e-9
}
