package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/optim"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/waves"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list preset sea states",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tAMPLITUDE\tFREQUENCY\tSPEED\tDURATION\tAUTOPILOT\tSCRIPT")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.3f\t%.2f\t%.2f\t%.0fs\t%v\t%d\n",
					name,
					p.Waves.Amplitude,
					p.Waves.Frequency,
					p.Waves.Speed,
					p.Sim.Duration,
					p.Autopilot.Enabled,
					len(p.Script),
				)
			}
			return w.Flush()
		},
	}
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "benchmark the field evaluator and the frame loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := cfg.Waves.Parameters
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "OCTAVES\tSAMPLES\tTIME\tSAMPLES/SEC")
			for _, octaves := range []int{1, 4, 8, 16} {
				q := p
				q.Iterations = octaves
				const n = 200000
				start := time.Now()
				sink := 0.0
				for i := 0; i < n; i++ {
					sink += waves.Elevation(float64(i%500)*0.1, float64(i/500)*0.1, 1.5, q)
				}
				elapsed := time.Since(start)
				_ = sink
				fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\n", octaves, n, elapsed.Round(time.Microsecond), n/elapsed.Seconds())
			}
			fmt.Fprintln(w)

			fmt.Fprintln(w, "DURATION\tFRAMES\tTIME\tFRAMES/SEC")
			for _, dur := range []float64{5, 20, 60} {
				sc := cfg.Scenario()
				sc.Timing.Duration = dur
				sc.Timing.SampleEvery = 60
				start := time.Now()
				res, err := sim.New(sc).Run(context.Background())
				if err != nil {
					return err
				}
				elapsed := time.Since(start)
				fmt.Fprintf(w, "%.0fs\t%d\t%v\t%.0f\n", dur, res.FramesRun, elapsed.Round(time.Microsecond), float64(res.FramesRun)/elapsed.Seconds())
			}
			return w.Flush()
		},
	}
}

func newSweepCmd() *cobra.Command {
	var (
		lo, hi float64
		steps  int
		metric string
	)

	cmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "re-run the scenario across a parameter range and plot one metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := cfg.Scenario()
			corners := len(sc.Boat.Corners)
			points, err := analysis.Sweep(context.Background(), sc, args[0], lo, hi, steps, func() []sim.Metric {
				return metrics.Default(corners)
			})
			if err != nil {
				return fmt.Errorf("%w (choose from %v)", err, analysis.SweepParams())
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\n", args[0], metric)
			data := make([]float64, len(points))
			for i, pt := range points {
				v, ok := pt.Metrics[metric]
				if !ok {
					return fmt.Errorf("unknown metric %q", metric)
				}
				data[i] = v
				fmt.Fprintf(w, "%.4f\t%.4f\n", pt.Param, v)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			fmt.Println(asciigraph.Plot(data,
				asciigraph.Height(10),
				asciigraph.Width(60),
				asciigraph.Caption(fmt.Sprintf("%s vs %s", metric, args[0])),
			))
			return nil
		},
	}
	cmd.Flags().Float64Var(&lo, "from", 0, "first value")
	cmd.Flags().Float64Var(&hi, "to", 0.5, "last value")
	cmd.Flags().IntVar(&steps, "steps", 8, "number of runs")
	cmd.Flags().StringVar(&metric, "metric", "heave_range", "metric to report")
	return cmd
}

func newDivergenceCmd() *cobra.Command {
	var perturb, dur float64

	cmd := &cobra.Command{
		Use:   "divergence",
		Short: "estimate how fast two nearby starts drift apart",
		RunE: func(cmd *cobra.Command, args []string) error {
			lambda := analysis.Divergence(cfg.Scenario(), perturb, dur)
			fmt.Printf("divergence rate: %.4f /s\n", lambda)
			if lambda > 0 {
				fmt.Println("nearby starts separate")
			} else {
				fmt.Println("nearby starts stay together")
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&perturb, "perturb", 1e-3, "initial offset along x in metres")
	cmd.Flags().Float64Var(&dur, "for", 20, "seconds to simulate")
	return cmd
}

func newTuneCmd() *cobra.Command {
	var (
		params []string
		values []string
		metric string
	)

	cmd := &cobra.Command{
		Use:     "tune",
		Short:   "grid-search scenario parameters to minimise a metric",
		Example: `  wavesim tune --param buoyancy --values 20,40,60 --param mass --values 5,10 --metric max_tilt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(params) != len(values) {
				return fmt.Errorf("need one --values list per --param")
			}
			ranges := make([][]float64, len(values))
			for i, list := range values {
				r, err := parseFloats(list)
				if err != nil {
					return fmt.Errorf("--values %q: %w", list, err)
				}
				ranges[i] = r
			}

			sc := cfg.Scenario()
			corners := len(sc.Boat.Corners)
			best, val, err := optim.NewGridSearch(params, ranges).Search(context.Background(), sc, func() []sim.Metric {
				return metrics.Default(corners)
			}, metric)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PARAM\tBEST")
			for _, name := range params {
				fmt.Fprintf(w, "%s\t%.4f\n", name, best[name])
			}
			fmt.Fprintf(w, "%s\t%.4f\n", metric, val)
			return w.Flush()
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "parameter to search (repeatable)")
	cmd.Flags().StringArrayVar(&values, "values", nil, "comma-separated candidates for the matching --param")
	cmd.Flags().StringVar(&metric, "metric", "max_tilt", "metric to minimise")
	return cmd
}

func parseFloats(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
