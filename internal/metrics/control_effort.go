package metrics

import "github.com/san-kum/wavesim/internal/sim"

// ControlEffort is the mean number of actions held per frame. A script that
// holds Forward the whole run scores 1.
type ControlEffort struct {
	name string
	avg  mean
}

func NewControlEffort() *ControlEffort {
	return &ControlEffort{name: "control_effort"}
}

func (c *ControlEffort) Name() string {
	return c.name
}

func (c *ControlEffort) Observe(f sim.Frame) {
	c.avg.add(float64(f.ActiveActions()))
}

func (c *ControlEffort) Value() float64 {
	return c.avg.value()
}

func (c *ControlEffort) Reset() {
	c.avg = mean{}
}
