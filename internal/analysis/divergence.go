package analysis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/wavesim/internal/sim"
)

// Divergence estimates the growth rate of the distance between two hulls
// started perturbation metres apart along X on the same water. It runs the
// pair in lockstep for duration seconds, pulling the second hull back to the
// starting gap after every frame. A positive value means small differences in
// starting position grow.
func Divergence(sc sim.Scenario, perturbation, duration float64) float64 {
	if perturbation <= 0 || duration <= 0 || sc.Timing.FrameDt <= 0 {
		return 0
	}
	dt := sc.Timing.FrameDt

	a := sim.New(sc)
	shifted := sc
	shifted.Body.Position = sc.Body.Position.Add(mgl64.Vec3{perturbation, 0, 0})
	b := sim.New(shifted)

	d0 := perturbation
	sumLog := 0.0
	count := 0

	frames := int(math.Round(duration / dt))
	for i := 0; i < frames; i++ {
		fa := a.Advance(dt)
		fb := b.Advance(dt)

		diff := fb.Position.Sub(fa.Position)
		sep := diff.Len()
		if math.IsNaN(sep) || sep == 0 {
			break
		}
		sumLog += math.Log(sep / d0)
		count++

		b.Body().SetPosition(fa.Position.Add(diff.Mul(d0 / sep)))
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
