package sim

import (
	"context"
	"sync"
)

// RunAll runs independent scenarios concurrently. Each scenario gets its own
// simulator and a fresh set of metrics from newMetrics, which may be nil.
// Results keep the order of scenarios.
func RunAll(ctx context.Context, scenarios []Scenario, newMetrics func() []Metric) ([]*Result, error) {
	results := make([]*Result, len(scenarios))
	errs := make([]error, len(scenarios))

	var wg sync.WaitGroup
	for i := range scenarios {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s := New(scenarios[idx])
			if newMetrics != nil {
				for _, m := range newMetrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
