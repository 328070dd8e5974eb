package controllers

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/wavesim/internal/input"
	"github.com/san-kum/wavesim/internal/rigid"
	"github.com/san-kum/wavesim/internal/waves"
)

// BoatParams are the hull coupling coefficients. Corners are body-local
// sample points and are tuned independently of the collision box.
type BoatParams struct {
	Buoyancy         float64      `yaml:"buoyancy"`
	ForwardForce     float64      `yaml:"forward_force"`
	TurnTorque       float64      `yaml:"turn_torque"`
	LateralDrag      float64      `yaml:"lateral_drag"`
	LongitudinalDrag float64      `yaml:"longitudinal_drag"`
	Corners          []mgl64.Vec3 `yaml:"corners"`
}

// DefaultCorners are the bottom corners of a 2x1x4 hull.
func DefaultCorners() []mgl64.Vec3 {
	return []mgl64.Vec3{
		{-1, -0.5, -2},
		{1, -0.5, -2},
		{-1, -0.5, 2},
		{1, -0.5, 2},
	}
}

func DefaultBoatParams() BoatParams {
	return BoatParams{
		Buoyancy:         40,
		ForwardForce:     50,
		TurnTorque:       25,
		LateralDrag:      -30,
		LongitudinalDrag: -5,
		Corners:          DefaultCorners(),
	}
}

// Boat couples a hull to a water surface: per-corner buoyancy, keyboard
// thrust and keel-like anisotropic drag. Forward is local -Z.
type Boat struct {
	Params BoatParams

	submerged int
}

func NewBoat(p BoatParams) *Boat {
	return &Boat{Params: p}
}

// Step issues this frame's forces and torques to body. The forces are
// consumed by the next engine step.
func (c *Boat) Step(body rigid.Handle, field waves.Sampler, in *input.State, t float64) {
	c.applyBuoyancy(body, field, t)
	c.applyThrust(body, in)
	c.applyDrag(body)
}

// Submerged returns how many corners were under the surface in the last Step.
func (c *Boat) Submerged() int { return c.submerged }

func (c *Boat) applyBuoyancy(body rigid.Handle, field waves.Sampler, t float64) {
	pos := body.Position()
	q := body.Orientation()

	c.submerged = 0
	for _, corner := range c.Params.Corners {
		world := pos.Add(q.Rotate(corner))
		depth := field.HeightAt(world.X(), world.Z(), t) - world.Y()
		if depth > 0 {
			body.ApplyLocalForce(mgl64.Vec3{0, depth * c.Params.Buoyancy, 0}, corner)
			c.submerged++
		}
	}
}

func (c *Boat) applyThrust(body rigid.Handle, in *input.State) {
	if in == nil {
		return
	}
	var origin mgl64.Vec3

	if in.Pressed(input.Forward) {
		body.ApplyLocalForce(mgl64.Vec3{0, 0, -c.Params.ForwardForce}, origin)
	}
	if in.Pressed(input.Backward) {
		body.ApplyLocalForce(mgl64.Vec3{0, 0, c.Params.ForwardForce}, origin)
	}
	if in.Pressed(input.TurnLeft) {
		body.ApplyTorque(mgl64.Vec3{0, c.Params.TurnTorque, 0})
	}
	if in.Pressed(input.TurnRight) {
		body.ApplyTorque(mgl64.Vec3{0, -c.Params.TurnTorque, 0})
	}
}

func (c *Boat) applyDrag(body rigid.Handle) {
	local := body.Orientation().Inverse().Rotate(body.Velocity())
	var origin mgl64.Vec3

	body.ApplyLocalForce(mgl64.Vec3{local.X() * c.Params.LateralDrag, 0, 0}, origin)
	body.ApplyLocalForce(mgl64.Vec3{0, 0, local.Z() * c.Params.LongitudinalDrag}, origin)
}
