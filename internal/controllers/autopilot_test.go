package controllers_test

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/wavesim/internal/controllers"
	"github.com/san-kum/wavesim/internal/input"
)

var _ = Describe("Autopilot", func() {
	var (
		pilot *controllers.Autopilot
		body  *fakeBody
		keys  *input.State
	)

	BeforeEach(func() {
		p := controllers.DefaultAutopilotParams()
		p.Enabled = true
		pilot = controllers.NewAutopilot(p)
		body = newFakeBody(mgl64.Vec3{})
		keys = input.NewState()
	})

	It("turns left toward a heading to port", func() {
		pilot.Params.Heading = 1.0
		pilot.Update(body, keys, 0)
		Expect(keys.Pressed(input.TurnLeft)).To(BeTrue())
		Expect(keys.Pressed(input.TurnRight)).To(BeFalse())
	})

	It("turns right toward a heading to starboard", func() {
		pilot.Params.Heading = -1.0
		pilot.Update(body, keys, 0)
		Expect(keys.Pressed(input.TurnRight)).To(BeTrue())
		Expect(keys.Pressed(input.TurnLeft)).To(BeFalse())
	})

	It("releases both turn flags inside the deadband", func() {
		keys.Press(input.TurnLeft)
		pilot.Update(body, keys, 0)
		Expect(keys.Pressed(input.TurnLeft)).To(BeFalse())
		Expect(keys.Pressed(input.TurnRight)).To(BeFalse())
	})

	It("takes the short way round", func() {
		body.orientation = mgl64.QuatRotate(3.0, mgl64.Vec3{0, 1, 0})
		pilot.Params.Heading = -3.0
		pilot.Update(body, keys, 0)
		// -3 is 2*pi-6 ~ 0.28 rad further counterclockwise than 3.
		Expect(keys.Pressed(input.TurnLeft)).To(BeTrue())
	})

	It("holds forward when cruising", func() {
		pilot.Params.Cruise = true
		pilot.Update(body, keys, 0)
		Expect(keys.Pressed(input.Forward)).To(BeTrue())
	})
})

var _ = Describe("PID", func() {
	It("returns the proportional term on the first update", func() {
		pid := controllers.NewPID(10, 0.1, 5)
		Expect(pid.Update(-1, 0)).To(Equal(-10.0))
	})

	It("integrates and differentiates over time", func() {
		pid := controllers.NewPID(1, 1, 1)
		pid.Update(1, 0)
		u := pid.Update(2, 1)
		// kp*2 + ki*(2*1) + kd*(2-1)/1
		Expect(u).To(BeNumerically("~", 5, 1e-12))
	})

	It("clamps the integral to the windup limit", func() {
		pid := controllers.NewPID(0, 1, 0)
		pid.Windup = 0.5
		pid.Update(1, 0)
		Expect(pid.Update(1, 10)).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("starts over after Reset", func() {
		pid := controllers.NewPID(2, 1, 1)
		pid.Update(1, 0)
		pid.Update(3, 1)
		pid.Reset()
		Expect(pid.Update(1, 5)).To(Equal(2.0))
		Expect(math.IsNaN(pid.Update(1, 5))).To(BeFalse())
	})
})
