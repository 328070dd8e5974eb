package controllers

import "math"

// PID drives a scalar error towards zero. When Windup is positive the
// integral term is clamped to [-Windup, Windup].
type PID struct {
	Kp, Ki, Kd float64
	Windup     float64

	integral float64
	lastErr  float64
	lastT    float64
	primed   bool
}

func NewPID(kp, ki, kd float64) *PID {
	return &PID{Kp: kp, Ki: ki, Kd: kd}
}

// Update returns the control output for err observed at time t. The first
// call after construction or Reset is purely proportional, as is any call
// that does not move time forward.
func (p *PID) Update(err, t float64) float64 {
	out := p.Kp * err
	dt := t - p.lastT
	if p.primed && dt <= 0 {
		return out
	}
	if p.primed {
		p.integral += err * dt
		if p.Windup > 0 {
			p.integral = math.Max(-p.Windup, math.Min(p.Windup, p.integral))
		}
		out += p.Ki*p.integral + p.Kd*(err-p.lastErr)/dt
	}
	p.lastErr, p.lastT, p.primed = err, t, true
	return out
}

// Reset forgets accumulated state but keeps the gains.
func (p *PID) Reset() {
	p.integral, p.lastErr, p.lastT, p.primed = 0, 0, 0, false
}
