package sim

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/wavesim/internal/controllers"
	"github.com/san-kum/wavesim/internal/input"
	"github.com/san-kum/wavesim/internal/rigid"
	"github.com/san-kum/wavesim/internal/waves"
)

// Frame is the observable state after one frame.
type Frame struct {
	Index       int
	Time        float64
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Velocity    mgl64.Vec3
	Heading     float64
	Tilt        float64
	WaterHeight float64
	Energy      float64
	Submerged   int
	Actions     [4]bool
	EngineSteps int
}

// Heave returns the hull's height above the local water surface.
func (f Frame) Heave() float64 { return f.Position.Y() - f.WaterHeight }

// ActiveActions counts the actions held during the frame.
func (f Frame) ActiveActions() int {
	n := 0
	for _, a := range f.Actions {
		if a {
			n++
		}
	}
	return n
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f Frame)
}

// Timing controls the frame loop. FrameDt is the wall-clock delta fed to the
// engine each frame; FixedDt and MaxSubSteps are passed through to it.
type Timing struct {
	FixedDt       float64 `yaml:"fixed_dt"`
	FrameDt       float64 `yaml:"frame_dt"`
	MaxSubSteps   int     `yaml:"max_substeps"`
	Duration      float64 `yaml:"duration"`
	SampleEvery   int     `yaml:"sample_every"`
	ValidateState bool    `yaml:"validate_state"`
}

func DefaultTiming() Timing {
	return Timing{
		FixedDt:       1.0 / 60,
		FrameDt:       1.0 / 60,
		MaxSubSteps:   3,
		Duration:      20,
		SampleEvery:   1,
		ValidateState: true,
	}
}

// Scenario is everything needed to build a simulator.
type Scenario struct {
	Name        string
	Waves       waves.Parameters
	WaterOrigin mgl64.Vec3
	Gravity     mgl64.Vec3
	Body        rigid.BoxConfig
	Boat        controllers.BoatParams
	Autopilot   controllers.AutopilotParams
	Script      []input.Event
	Timing      Timing
}

// DefaultScenario is the reference boat on the reference water.
func DefaultScenario() Scenario {
	return Scenario{
		Name:      "default",
		Waves:     waves.DefaultParameters(),
		Gravity:   rigid.DefaultGravity,
		Body:      rigid.DefaultBoxConfig(),
		Boat:      controllers.DefaultBoatParams(),
		Autopilot: controllers.DefaultAutopilotParams(),
		Timing:    DefaultTiming(),
	}
}

type Result struct {
	Scenario    string
	Frames      []Frame
	Metrics     map[string]float64
	FramesRun   int
	EngineSteps int
	Errors      []error
}

// SimError records a frame at which the body state went non-finite.
type SimError struct {
	Time    float64
	Frame   int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("frame %d (t=%.4f): %s", e.Frame, e.Time, e.Message)
}
