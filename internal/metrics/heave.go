package metrics

import (
	"math"

	"github.com/san-kum/wavesim/internal/sim"
)

// HeaveRange is the peak-to-peak vertical excursion of the hull relative to
// the water under it, ignoring the first settle seconds of the run.
type HeaveRange struct {
	name     string
	settle   float64
	min, max float64
	seen     bool
}

func NewHeaveRange(settle float64) *HeaveRange {
	return &HeaveRange{name: "heave_range", settle: settle}
}

func (h *HeaveRange) Name() string { return h.name }

func (h *HeaveRange) Observe(f sim.Frame) {
	if f.Time < h.settle {
		return
	}
	v := f.Heave()
	if !h.seen {
		h.min, h.max, h.seen = v, v, true
		return
	}
	h.min = math.Min(h.min, v)
	h.max = math.Max(h.max, v)
}

func (h *HeaveRange) Value() float64 {
	if !h.seen {
		return 0
	}
	return h.max - h.min
}

func (h *HeaveRange) Reset() {
	h.min, h.max, h.seen = 0, 0, false
}

// Submerged is the mean fraction of hull sample points under water.
type Submerged struct {
	name    string
	corners int
	avg     mean
}

func NewSubmerged(corners int) *Submerged {
	if corners < 1 {
		corners = 1
	}
	return &Submerged{name: "submerged", corners: corners}
}

func (s *Submerged) Name() string { return s.name }

func (s *Submerged) Observe(f sim.Frame) {
	s.avg.add(float64(f.Submerged) / float64(s.corners))
}

func (s *Submerged) Value() float64 { return s.avg.value() }

func (s *Submerged) Reset() { s.avg = mean{} }

// Default returns the standard metric set for a hull with the given number
// of sample corners.
func Default(corners int) []sim.Metric {
	return []sim.Metric{
		NewEnergy(),
		NewMaxTilt(),
		NewStability(0.35),
		NewControlEffort(),
		NewHeaveRange(2.0),
		NewSubmerged(corners),
	}
}
