package rigid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Handle is the view of a rigid body that force controllers operate on.
type Handle interface {
	Position() mgl64.Vec3
	Orientation() mgl64.Quat
	Velocity() mgl64.Vec3
	// ApplyLocalForce applies a body-frame force at a body-frame point.
	ApplyLocalForce(force, localPoint mgl64.Vec3)
	// ApplyTorque applies a world-frame torque.
	ApplyTorque(torque mgl64.Vec3)
}

// BoxConfig describes a box hull. Damping values are fractions of velocity
// lost per second.
type BoxConfig struct {
	Mass           float64    `yaml:"mass"`
	HalfExtents    mgl64.Vec3 `yaml:"half_extents"`
	Position       mgl64.Vec3 `yaml:"position"`
	LinearDamping  float64    `yaml:"linear_damping"`
	AngularDamping float64    `yaml:"angular_damping"`
}

// DefaultBoxConfig returns the reference hull: a 2x1x4 box of mass 10
// starting 2 units above the water plane.
func DefaultBoxConfig() BoxConfig {
	return BoxConfig{
		Mass:           10,
		HalfExtents:    mgl64.Vec3{1, 0.5, 2},
		Position:       mgl64.Vec3{0, 2, 0},
		LinearDamping:  0.3,
		AngularDamping: 0.8,
	}
}

// Body is a dynamic box.
type Body struct {
	mass, invMass  float64
	invInertia     mgl64.Vec3
	linearDamping  float64
	angularDamping float64

	position        mgl64.Vec3
	orientation     mgl64.Quat
	velocity        mgl64.Vec3
	angularVelocity mgl64.Vec3

	force  mgl64.Vec3
	torque mgl64.Vec3
}

// NewBox builds a body from cfg. A non-positive mass makes the body static.
func NewBox(cfg BoxConfig) *Body {
	b := &Body{
		mass:           cfg.Mass,
		linearDamping:  cfg.LinearDamping,
		angularDamping: cfg.AngularDamping,
		position:       cfg.Position,
		orientation:    mgl64.QuatIdent(),
	}
	if cfg.Mass > 0 {
		b.invMass = 1 / cfg.Mass
		b.invInertia = invBoxInertia(cfg.Mass, cfg.HalfExtents)
	}
	return b
}

// invBoxInertia returns the inverse principal moments of a solid box.
func invBoxInertia(mass float64, e mgl64.Vec3) mgl64.Vec3 {
	x, y, z := 2*e.X(), 2*e.Y(), 2*e.Z()
	moments := mgl64.Vec3{
		mass / 12 * (y*y + z*z),
		mass / 12 * (x*x + z*z),
		mass / 12 * (x*x + y*y),
	}
	var inv mgl64.Vec3
	for i, m := range moments {
		if m > 0 {
			inv[i] = 1 / m
		}
	}
	return inv
}

func (b *Body) Mass() float64               { return b.mass }
func (b *Body) Position() mgl64.Vec3        { return b.position }
func (b *Body) Orientation() mgl64.Quat     { return b.orientation }
func (b *Body) Velocity() mgl64.Vec3        { return b.velocity }
func (b *Body) AngularVelocity() mgl64.Vec3 { return b.angularVelocity }
func (b *Body) Force() mgl64.Vec3           { return b.force }
func (b *Body) Torque() mgl64.Vec3          { return b.torque }

// SetPosition teleports the body. Intended for resets, not for control.
func (b *Body) SetPosition(p mgl64.Vec3) { b.position = p }

// SetOrientation replaces the orientation, normalizing it.
func (b *Body) SetOrientation(q mgl64.Quat) { b.orientation = q.Normalize() }

func (b *Body) SetVelocity(v mgl64.Vec3)        { b.velocity = v }
func (b *Body) SetAngularVelocity(w mgl64.Vec3) { b.angularVelocity = w }

// ApplyForce applies a world-frame force at a world-frame offset from the
// center of mass.
func (b *Body) ApplyForce(force, relPoint mgl64.Vec3) {
	b.force = b.force.Add(force)
	b.torque = b.torque.Add(relPoint.Cross(force))
}

func (b *Body) ApplyLocalForce(force, localPoint mgl64.Vec3) {
	b.ApplyForce(b.orientation.Rotate(force), b.orientation.Rotate(localPoint))
}

func (b *Body) ApplyTorque(torque mgl64.Vec3) {
	b.torque = b.torque.Add(torque)
}

// Up returns the body's local +Y axis in world space.
func (b *Body) Up() mgl64.Vec3 { return b.orientation.Rotate(mgl64.Vec3{0, 1, 0}) }

// Tilt returns the angle in radians between the body's up axis and world up.
func (b *Body) Tilt() float64 {
	c := b.Up().Dot(mgl64.Vec3{0, 1, 0})
	return math.Acos(mgl64.Clamp(c, -1, 1))
}

// Heading returns the yaw of the body's forward axis. See [Heading].
func (b *Body) Heading() float64 { return Heading(b.orientation) }

// Heading returns the yaw in radians of the local forward (-Z) axis under q,
// measured counterclockwise from world -Z when viewed from above.
func Heading(q mgl64.Quat) float64 {
	f := q.Rotate(mgl64.Vec3{0, 0, -1})
	return math.Atan2(-f.X(), -f.Z())
}

// KineticEnergy returns translational plus rotational kinetic energy.
func (b *Body) KineticEnergy() float64 {
	if b.invMass == 0 {
		return 0
	}
	ke := 0.5 * b.mass * b.velocity.Dot(b.velocity)
	wl := b.orientation.Inverse().Rotate(b.angularVelocity)
	for i := 0; i < 3; i++ {
		if b.invInertia[i] > 0 {
			ke += 0.5 * wl[i] * wl[i] / b.invInertia[i]
		}
	}
	return ke
}

// IsValid reports whether the body state is finite.
func (b *Body) IsValid() bool {
	vals := []float64{b.orientation.W}
	for _, v := range []mgl64.Vec3{b.position, b.velocity, b.angularVelocity, b.orientation.V} {
		vals = append(vals, v[:]...)
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (b *Body) clearForces() {
	b.force = mgl64.Vec3{}
	b.torque = mgl64.Vec3{}
}

// applyInverseInertia maps a world torque to a world angular acceleration.
func (b *Body) applyInverseInertia(torque mgl64.Vec3) mgl64.Vec3 {
	local := b.orientation.Inverse().Rotate(torque)
	local = mgl64.Vec3{local[0] * b.invInertia[0], local[1] * b.invInertia[1], local[2] * b.invInertia[2]}
	return b.orientation.Rotate(local)
}

// integrate advances the body by dt with semi-implicit Euler.
func (b *Body) integrate(gravity mgl64.Vec3, dt float64) {
	if b.invMass == 0 {
		b.clearForces()
		return
	}

	b.velocity = b.velocity.Mul(math.Pow(1-b.linearDamping, dt))
	b.angularVelocity = b.angularVelocity.Mul(math.Pow(1-b.angularDamping, dt))

	acc := b.force.Mul(b.invMass).Add(gravity)
	b.velocity = b.velocity.Add(acc.Mul(dt))
	b.angularVelocity = b.angularVelocity.Add(b.applyInverseInertia(b.torque).Mul(dt))

	b.position = b.position.Add(b.velocity.Mul(dt))

	w := mgl64.Quat{W: 0, V: b.angularVelocity}
	dq := w.Mul(b.orientation).Scale(0.5 * dt)
	b.orientation = b.orientation.Add(dq).Normalize()

	b.clearForces()
}
