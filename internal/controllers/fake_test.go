package controllers_test

import "github.com/go-gl/mathgl/mgl64"

type localForce struct {
	Force, Point mgl64.Vec3
}

// fakeBody records every force and torque issued to it.
type fakeBody struct {
	position    mgl64.Vec3
	orientation mgl64.Quat
	velocity    mgl64.Vec3

	forces  []localForce
	torques []mgl64.Vec3
}

func newFakeBody(pos mgl64.Vec3) *fakeBody {
	return &fakeBody{position: pos, orientation: mgl64.QuatIdent()}
}

func (b *fakeBody) Position() mgl64.Vec3    { return b.position }
func (b *fakeBody) Orientation() mgl64.Quat { return b.orientation }
func (b *fakeBody) Velocity() mgl64.Vec3    { return b.velocity }

func (b *fakeBody) ApplyLocalForce(force, localPoint mgl64.Vec3) {
	b.forces = append(b.forces, localForce{force, localPoint})
}

func (b *fakeBody) ApplyTorque(torque mgl64.Vec3) {
	b.torques = append(b.torques, torque)
}

// forcesAt returns every force applied at point.
func (b *fakeBody) forcesAt(point mgl64.Vec3) []mgl64.Vec3 {
	var out []mgl64.Vec3
	for _, f := range b.forces {
		if f.Point == point {
			out = append(out, f.Force)
		}
	}
	return out
}

// flatWater is a constant-height surface.
type flatWater float64

func (w flatWater) HeightAt(x, z, t float64) float64 { return float64(w) }

// sampleLog records sample coordinates.
type sampleLog struct {
	height  float64
	samples [][3]float64
}

func (s *sampleLog) HeightAt(x, z, t float64) float64 {
	s.samples = append(s.samples, [3]float64{x, z, t})
	return s.height
}
