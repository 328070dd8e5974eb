package optim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/sim"
)

// GridSearch tries every combination of candidate values and keeps the one
// that minimises a metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Search runs base once per combination, all combinations concurrently.
// newMetrics must produce a metric named metricName. Runs that recorded
// errors never win; ties go to the combination listed first.
func (g *GridSearch) Search(
	ctx context.Context,
	base sim.Scenario,
	newMetrics func() []sim.Metric,
	metricName string,
) (map[string]float64, float64, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, fmt.Errorf("%d parameters but %d ranges", len(g.paramNames), len(g.ranges))
	}

	combos := g.combinations()
	scenarios := make([]sim.Scenario, len(combos))
	for i, combo := range combos {
		sc := base
		for j, name := range g.paramNames {
			if err := analysis.SetParam(&sc, name, combo[j]); err != nil {
				return nil, 0, err
			}
		}
		scenarios[i] = sc
	}

	results, err := sim.RunAll(ctx, scenarios, newMetrics)
	if err != nil {
		return nil, 0, err
	}

	best, bestIdx := math.Inf(1), -1
	for i, r := range results {
		v, ok := r.Metrics[metricName]
		if !ok || len(r.Errors) > 0 || !(v < best) {
			continue
		}
		best, bestIdx = v, i
	}
	if bestIdx < 0 {
		return nil, 0, fmt.Errorf("no run produced metric %q", metricName)
	}

	params := make(map[string]float64, len(g.paramNames))
	for j, name := range g.paramNames {
		params[name] = combos[bestIdx][j]
	}
	return params, best, nil
}

// combinations lists the cartesian product of the ranges, first parameter
// varying slowest.
func (g *GridSearch) combinations() [][]float64 {
	combos := [][]float64{{}}
	for _, r := range g.ranges {
		next := make([][]float64, 0, len(combos)*len(r))
		for _, c := range combos {
			for _, v := range r {
				combo := make([]float64, len(c), len(c)+1)
				copy(combo, c)
				next = append(next, append(combo, v))
			}
		}
		combos = next
	}
	return combos
}
