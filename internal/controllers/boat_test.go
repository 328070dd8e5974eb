package controllers_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavesim/internal/controllers"
	"github.com/san-kum/wavesim/internal/input"
	"github.com/san-kum/wavesim/internal/waves"
)

var origin = mgl64.Vec3{}

var _ = Describe("Boat", func() {
	var (
		boat *controllers.Boat
		body *fakeBody
		keys *input.State
	)

	BeforeEach(func() {
		boat = controllers.NewBoat(controllers.DefaultBoatParams())
		body = newFakeBody(mgl64.Vec3{0, 2, 0})
		keys = input.NewState()
	})

	Describe("buoyancy", func() {
		It("pushes a submerged corner up by 40 per unit depth", func() {
			boat.Params.Corners = []mgl64.Vec3{{1, -0.5, 2}}
			boat.Step(body, flatWater(2.0), keys, 0)

			forces := body.forcesAt(mgl64.Vec3{1, -0.5, 2})
			Expect(forces).To(HaveLen(1))
			Expect(forces[0]).To(Equal(mgl64.Vec3{0, 20, 0}))
			Expect(boat.Submerged()).To(Equal(1))
		})

		It("samples the field at the rotated world corner", func() {
			boat.Params.Corners = []mgl64.Vec3{{1, -0.5, 2}}
			water := &sampleLog{height: 0}
			boat.Step(body, water, keys, 3.5)

			Expect(water.samples).To(Equal([][3]float64{{1, 2, 3.5}}))

			body.orientation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
			water.samples = nil
			boat.Step(body, water, keys, 0)
			Expect(water.samples[0][0]).To(BeNumerically("~", 2, 1e-12))
			Expect(water.samples[0][1]).To(BeNumerically("~", -1, 1e-12))
		})

		It("applies nothing when the corner is at or above the surface", func() {
			boat.Params.Corners = []mgl64.Vec3{{1, -0.5, 2}}
			for _, h := range []float64{1.5, 1.0, -3} {
				body.forces = nil
				boat.Step(body, flatWater(h), keys, 0)
				Expect(body.forcesAt(mgl64.Vec3{1, -0.5, 2})).To(BeEmpty())
				Expect(boat.Submerged()).To(Equal(0))
			}
		})

		It("samples every default corner once per step", func() {
			water := &sampleLog{height: 10}
			boat.Step(body, water, keys, 0)
			Expect(water.samples).To(HaveLen(4))
			Expect(boat.Submerged()).To(Equal(4))
		})

		It("submerges corners unevenly on a tilted hull", func() {
			body.orientation = mgl64.QuatRotate(0.2, mgl64.Vec3{1, 0, 0})
			boat.Step(body, flatWater(1.6), keys, 0)

			bow := body.forcesAt(mgl64.Vec3{1, -0.5, -2})
			stern := body.forcesAt(mgl64.Vec3{1, -0.5, 2})
			// Bow pitches up out of the water, stern digs in.
			Expect(bow).To(BeEmpty())
			Expect(stern).To(HaveLen(1))
		})
	})

	Describe("thrust", func() {
		It("issues nothing but drag with no keys held", func() {
			boat.Step(body, flatWater(-10), keys, 0)
			Expect(body.torques).To(BeEmpty())
			Expect(body.forcesAt(origin)).To(HaveLen(2))
		})

		It("pushes along local -Z for forward and +Z for backward", func() {
			keys.Press(input.Forward)
			boat.Step(body, flatWater(-10), keys, 0)
			Expect(body.forcesAt(origin)).To(ContainElement(mgl64.Vec3{0, 0, -50}))

			body.forces = nil
			keys.Reset()
			keys.Press(input.Backward)
			boat.Step(body, flatWater(-10), keys, 0)
			Expect(body.forcesAt(origin)).To(ContainElement(mgl64.Vec3{0, 0, 50}))
		})

		It("turns with opposite torques about Y", func() {
			keys.Press(input.TurnLeft)
			boat.Step(body, flatWater(-10), keys, 0)
			Expect(body.torques).To(Equal([]mgl64.Vec3{{0, 25, 0}}))

			body.torques = nil
			keys.Reset()
			keys.Press(input.TurnRight)
			boat.Step(body, flatWater(-10), keys, 0)
			Expect(body.torques).To(Equal([]mgl64.Vec3{{0, -25, 0}}))
		})

		It("superposes forward and turn-left in one step", func() {
			keys.Press(input.Forward)
			keys.Press(input.TurnLeft)
			boat.Step(body, flatWater(-10), keys, 0)

			Expect(body.forcesAt(origin)).To(ContainElement(mgl64.Vec3{0, 0, -50}))
			Expect(body.torques).To(Equal([]mgl64.Vec3{{0, 25, 0}}))
		})

		It("re-applies a held key every frame", func() {
			keys.Press(input.TurnRight)
			for i := 0; i < 5; i++ {
				boat.Step(body, flatWater(-10), keys, float64(i))
			}
			Expect(body.torques).To(HaveLen(5))
		})

		It("tolerates a nil input state", func() {
			Expect(func() { boat.Step(body, flatWater(-10), nil, 0) }).NotTo(Panic())
			Expect(body.torques).To(BeEmpty())
		})
	})

	Describe("drag", func() {
		It("issues exactly zero drag forces at rest", func() {
			boat.Step(body, flatWater(-10), keys, 0)
			drag := body.forcesAt(origin)
			Expect(drag).To(HaveLen(2))
			for _, f := range drag {
				Expect(f.X() == 0 && f.Y() == 0 && f.Z() == 0).To(BeTrue())
			}
		})

		It("damps sideways motion harder than forward motion", func() {
			body.velocity = mgl64.Vec3{1, 0, 1}
			boat.Step(body, flatWater(-10), keys, 0)

			Expect(body.forcesAt(origin)).To(ConsistOf(
				mgl64.Vec3{-30, 0, 0},
				mgl64.Vec3{0, 0, -5},
			))
		})

		It("ignores vertical velocity", func() {
			body.velocity = mgl64.Vec3{0, -4, 0}
			boat.Step(body, flatWater(-10), keys, 0)
			for _, f := range body.forcesAt(origin) {
				Expect(f.Len()).To(BeZero())
			}
		})

		It("measures velocity in the hull frame", func() {
			body.orientation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
			// World -X is local -Z after a quarter turn: pure forward motion.
			body.velocity = mgl64.Vec3{-2, 0, 0}
			boat.Step(body, flatWater(-10), keys, 0)

			drag := body.forcesAt(origin)
			Expect(drag).To(HaveLen(2))
			Expect(drag[0].X()).To(BeNumerically("~", 0, 1e-12))
			Expect(drag[1].Z()).To(BeNumerically("~", 10, 1e-12))
		})
	})

	It("leaves the wave field independent of input state", func() {
		p := waves.Parameters{Amplitude: 0.025, Frequency: 1.07, Persistence: 0.3, Lacunarity: 2.18, Iterations: 8, Speed: 0.4}
		before := waves.Elevation(0, 0, 0, p)

		keys.Press(input.TurnLeft)
		boat.Step(body, waves.NewField(p, mgl64.Vec3{}), keys, 0)

		Expect(math.Float64bits(waves.Elevation(0, 0, 0, p))).To(Equal(math.Float64bits(before)))
	})
})
