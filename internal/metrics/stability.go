package metrics

import (
	"math"

	"github.com/san-kum/wavesim/internal/sim"
)

// MaxTilt is the largest angle in radians between the hull's up axis and
// world up seen during a run.
type MaxTilt struct {
	name string
	max  float64
}

func NewMaxTilt() *MaxTilt {
	return &MaxTilt{name: "max_tilt"}
}

func (m *MaxTilt) Name() string { return m.name }

func (m *MaxTilt) Observe(f sim.Frame) {
	m.max = math.Max(m.max, f.Tilt)
}

func (m *MaxTilt) Value() float64 { return m.max }

func (m *MaxTilt) Reset() { m.max = 0 }

// Stability is the fraction of frames with tilt under a threshold.
type Stability struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewStability(threshold float64) *Stability {
	return &Stability{
		name:      "stability",
		threshold: threshold,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(f sim.Frame) {
	s.samples++
	if f.Tilt > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
