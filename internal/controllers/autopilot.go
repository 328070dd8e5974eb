package controllers

import (
	"math"

	"github.com/san-kum/wavesim/internal/input"
	"github.com/san-kum/wavesim/internal/rigid"
)

// AutopilotParams configure heading hold.
type AutopilotParams struct {
	Enabled  bool    `yaml:"enabled"`
	Heading  float64 `yaml:"heading"`
	Cruise   bool    `yaml:"cruise"`
	Kp       float64 `yaml:"kp"`
	Ki       float64 `yaml:"ki"`
	Kd       float64 `yaml:"kd"`
	Windup   float64 `yaml:"windup"`
	Deadband float64 `yaml:"deadband"`
}

func DefaultAutopilotParams() AutopilotParams {
	return AutopilotParams{
		Kp:       2.0,
		Ki:       0.0,
		Kd:       1.5,
		Deadband: 0.05,
	}
}

// Autopilot holds a heading by driving the turn flags, the same way a
// player would. It writes input state; it never touches the body.
type Autopilot struct {
	Params AutopilotParams
	pid    *PID
}

func NewAutopilot(p AutopilotParams) *Autopilot {
	pid := NewPID(p.Kp, p.Ki, p.Kd)
	pid.Windup = p.Windup
	return &Autopilot{Params: p, pid: pid}
}

// Update sets TurnLeft/TurnRight (and Forward when cruising) for this frame.
func (a *Autopilot) Update(body rigid.Handle, in *input.State, t float64) {
	err := wrapAngle(a.Params.Heading - rigid.Heading(body.Orientation()))
	u := a.pid.Update(err, t)

	in.Set(input.TurnLeft, u > a.Params.Deadband)
	in.Set(input.TurnRight, u < -a.Params.Deadband)
	if a.Params.Cruise {
		in.Press(input.Forward)
	}
}

// wrapAngle maps a to (-pi, pi].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
