package sim

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/wavesim/internal/controllers"
	"github.com/san-kum/wavesim/internal/input"
	"github.com/san-kum/wavesim/internal/logger"
	"github.com/san-kum/wavesim/internal/rigid"
	"github.com/san-kum/wavesim/internal/waves"
)

// Simulator runs the per-frame loop: advance time, step the engine, then let
// the boat controller issue forces for the next step.
type Simulator struct {
	scenario Scenario
	field    *waves.Field
	world    *rigid.World
	body     *rigid.Body
	boat     *controllers.Boat
	pilot    *controllers.Autopilot
	input    *input.State
	script   *input.Script

	metrics   []Metric
	observers []Observer

	t     float64
	frame int
}

func New(sc Scenario) *Simulator {
	s := &Simulator{
		scenario:  sc,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
	s.build()
	return s
}

func (s *Simulator) build() {
	sc := s.scenario
	s.field = waves.NewField(sc.Waves, sc.WaterOrigin)
	s.world = rigid.NewWorld(sc.Gravity)
	s.body = rigid.NewBox(sc.Body)
	s.world.AddBody(s.body)
	s.boat = controllers.NewBoat(sc.Boat)
	if sc.Autopilot.Enabled {
		s.pilot = controllers.NewAutopilot(sc.Autopilot)
	} else {
		s.pilot = nil
	}
	s.input = input.NewState()
	s.script = input.NewScript(sc.Script)
	s.t = 0
	s.frame = 0
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Field() *waves.Field { return s.field }
func (s *Simulator) Body() *rigid.Body   { return s.body }
func (s *Simulator) Input() *input.State { return s.input }
func (s *Simulator) Time() float64       { return s.t }
func (s *Simulator) Scenario() Scenario  { return s.scenario }

// Reset rebuilds the world from the scenario. Wave parameters changed via
// Field().SetParams are kept.
func (s *Simulator) Reset() {
	p := s.field.Params()
	s.build()
	s.field.SetParams(p)
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Advance runs one frame covering realDt seconds and returns the resulting
// frame. Forces issued here are integrated by the next call's engine step.
func (s *Simulator) Advance(realDt float64) Frame {
	tm := s.scenario.Timing
	s.t += realDt

	s.script.Advance(s.t, s.input)

	n := s.world.Step(tm.FixedDt, realDt, tm.MaxSubSteps)

	if s.pilot != nil {
		s.pilot.Update(s.body, s.input, s.t)
	}
	s.boat.Step(s.body, s.field, s.input, s.t)

	f := s.snapshot(n)
	s.frame++

	for _, m := range s.metrics {
		m.Observe(f)
	}
	for _, o := range s.observers {
		o.OnFrame(f)
	}
	return f
}

func (s *Simulator) snapshot(engineSteps int) Frame {
	pos := s.body.Position()
	return Frame{
		Index:       s.frame,
		Time:        s.t,
		Position:    pos,
		Orientation: s.body.Orientation(),
		Velocity:    s.body.Velocity(),
		Heading:     s.body.Heading(),
		Tilt:        s.body.Tilt(),
		WaterHeight: s.field.HeightAt(pos.X(), pos.Z(), s.t),
		Energy:      s.body.KineticEnergy(),
		Submerged:   s.boat.Submerged(),
		Actions:     s.input.Snapshot(),
		EngineSteps: engineSteps,
	}
}

// Run plays the scenario to completion from a fresh world.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	tm := s.scenario.Timing
	if err := validateTiming(tm); err != nil {
		return nil, err
	}
	s.Reset()

	frames := int(math.Round(tm.Duration / tm.FrameDt))
	every := tm.SampleEvery
	if every < 1 {
		every = 1
	}

	result := &Result{
		Scenario: s.scenario.Name,
		Frames:   make([]Frame, 0, frames/every+1),
		Metrics:  make(map[string]float64),
		Errors:   make([]error, 0),
	}

	log := logger.Named("sim")
	log.Debug("run started",
		zap.String("scenario", s.scenario.Name),
		zap.Int("frames", frames),
		zap.Float64("frame_dt", tm.FrameDt),
	)

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		f := s.Advance(tm.FrameDt)
		result.FramesRun++
		result.EngineSteps += f.EngineSteps

		if i%every == 0 || i == frames-1 {
			result.Frames = append(result.Frames, f)
		}

		if tm.ValidateState && !s.body.IsValid() {
			err := SimError{Time: f.Time, Frame: f.Index, Message: "invalid body state (NaN/Inf)"}
			result.Errors = append(result.Errors, err)
			log.Warn("run aborted", zap.Error(err))
			break
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	log.Debug("run finished",
		zap.String("scenario", s.scenario.Name),
		zap.Int("frames", result.FramesRun),
		zap.Int("engine_steps", result.EngineSteps),
	)
	return result, nil
}

func validateTiming(tm Timing) error {
	if tm.FixedDt <= 0 {
		return fmt.Errorf("fixed dt must be positive, got %f", tm.FixedDt)
	}
	if tm.FrameDt <= 0 {
		return fmt.Errorf("frame dt must be positive, got %f", tm.FrameDt)
	}
	if tm.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", tm.Duration)
	}
	if tm.MaxSubSteps < 1 {
		return fmt.Errorf("max substeps must be at least 1, got %d", tm.MaxSubSteps)
	}
	return nil
}
