package metrics

import "github.com/san-kum/wavesim/internal/sim"

// mean is a running average. The zero value reports 0.
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n++
}

func (m *mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}

// Energy is the mean kinetic energy of the hull over a run.
type Energy struct {
	name string
	avg  mean
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string        { return e.name }
func (e *Energy) Observe(f sim.Frame) { e.avg.add(f.Energy) }
func (e *Energy) Value() float64      { return e.avg.value() }
func (e *Energy) Reset()              { e.avg = mean{} }
