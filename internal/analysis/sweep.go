package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/wavesim/internal/sim"
)

// Setters for the scenario parameters a sweep may vary.
var sweepParams = map[string]func(*sim.Scenario, float64){
	"amplitude":   func(s *sim.Scenario, v float64) { s.Waves.Amplitude = v },
	"frequency":   func(s *sim.Scenario, v float64) { s.Waves.Frequency = v },
	"persistence": func(s *sim.Scenario, v float64) { s.Waves.Persistence = v },
	"speed":       func(s *sim.Scenario, v float64) { s.Waves.Speed = v },
	"buoyancy":    func(s *sim.Scenario, v float64) { s.Boat.Buoyancy = v },
	"mass":        func(s *sim.Scenario, v float64) { s.Body.Mass = v },
}

// SweepParams lists the parameters Sweep accepts.
func SweepParams() []string {
	names := make([]string, 0, len(sweepParams))
	for name := range sweepParams {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetParam sets the named sweep parameter on sc.
func SetParam(sc *sim.Scenario, name string, v float64) error {
	set, ok := sweepParams[name]
	if !ok {
		return fmt.Errorf("unknown sweep parameter %q", name)
	}
	set(sc, v)
	return nil
}

type SweepPoint struct {
	Param   float64
	Metrics map[string]float64
}

// Sweep runs base once per value of param spread evenly over [lo, hi] and
// collects the metrics of each run. Runs execute concurrently.
func Sweep(ctx context.Context, base sim.Scenario, param string, lo, hi float64, steps int, newMetrics func() []sim.Metric) ([]SweepPoint, error) {
	if _, ok := sweepParams[param]; !ok {
		return nil, fmt.Errorf("unknown sweep parameter %q", param)
	}
	if steps < 2 {
		steps = 2
	}
	step := (hi - lo) / float64(steps-1)

	values := make([]float64, steps)
	scenarios := make([]sim.Scenario, steps)
	for i := range scenarios {
		values[i] = lo + float64(i)*step
		sc := base
		sc.Name = fmt.Sprintf("%s_%s_%d", base.Name, param, i)
		_ = SetParam(&sc, param, values[i])
		scenarios[i] = sc
	}

	results, err := sim.RunAll(ctx, scenarios, newMetrics)
	if err != nil {
		return nil, err
	}

	points := make([]SweepPoint, steps)
	for i, r := range results {
		points[i] = SweepPoint{Param: values[i], Metrics: r.Metrics}
	}
	return points, nil
}
