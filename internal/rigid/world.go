package rigid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultGravity is Earth gravity along -Y.
var DefaultGravity = mgl64.Vec3{0, -9.82, 0}

// World steps a set of bodies on a fixed timestep.
type World struct {
	Gravity mgl64.Vec3

	bodies      []*Body
	accumulator float64
	time        float64
	steps       int
}

func NewWorld(gravity mgl64.Vec3) *World {
	return &World{Gravity: gravity}
}

func (w *World) AddBody(b *Body) { w.bodies = append(w.bodies, b) }
func (w *World) Bodies() []*Body { return w.bodies }

// Time returns the simulated time consumed by internal steps.
func (w *World) Time() float64 { return w.time }

// Steps returns the number of internal steps taken so far.
func (w *World) Steps() int { return w.steps }

// Step advances the world by realDt seconds of wall time using at most
// maxSubSteps internal steps of fixedDt. Leftover time carries into the next
// call. A non-positive realDt takes exactly one fixed step. It returns the
// number of internal steps taken.
func (w *World) Step(fixedDt, realDt float64, maxSubSteps int) int {
	if fixedDt <= 0 {
		return 0
	}
	if realDt <= 0 {
		w.internalStep(fixedDt)
		return 1
	}
	if maxSubSteps < 1 {
		maxSubSteps = 1
	}

	w.accumulator += realDt
	n := 0
	for w.accumulator >= fixedDt && n < maxSubSteps {
		w.internalStep(fixedDt)
		w.accumulator -= fixedDt
		n++
	}
	// Time the substep cap could not absorb is dropped.
	w.accumulator = math.Mod(w.accumulator, fixedDt)
	return n
}

func (w *World) internalStep(dt float64) {
	for _, b := range w.bodies {
		b.integrate(w.Gravity, dt)
	}
	w.time += dt
	w.steps++
}
