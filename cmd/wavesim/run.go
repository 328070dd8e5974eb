package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/wavesim/internal/logger"
	"github.com/san-kum/wavesim/internal/metrics"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/storage"
	"github.com/san-kum/wavesim/internal/tui"
)

func newRunCmd() *cobra.Command {
	var noSave, asJSON bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(noSave, asJSON)
		},
	}
	cmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds (overrides config)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the run as JSON instead of a summary")
	return cmd
}

func runSimulation(noSave, asJSON bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sc := cfg.Scenario()
	s := sim.New(sc)
	for _, m := range metrics.Default(len(sc.Boat.Corners)) {
		s.AddMetric(m)
	}

	start := time.Now()
	result, err := s.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Log.Info("run complete",
		zap.String("scenario", sc.Name),
		zap.Int("frames", result.FramesRun),
		zap.Duration("elapsed", elapsed),
	)

	if asJSON {
		return storage.ExportJSON(os.Stdout, sc, result)
	}

	fmt.Printf("scenario: %s\n", sc.Name)
	fmt.Printf("frames: %d (%d engine steps) in %v\n", result.FramesRun, result.EngineSteps, elapsed.Round(time.Millisecond))
	if n := len(result.Frames); n > 0 {
		last := result.Frames[n-1]
		fmt.Printf("final position: %.3f %.3f %.3f\n", last.Position.X(), last.Position.Y(), last.Position.Z())
	}
	for _, e := range result.Errors {
		fmt.Printf("error: %v\n", e)
	}
	fmt.Println()
	if err := printMetrics(result.Metrics); err != nil {
		return err
	}

	if noSave {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sc, result)
	if err != nil {
		return err
	}
	fmt.Printf("\nsaved: %s\n", runID)
	return nil
}

func printMetrics(m map[string]float64) error {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4f\n", name, m[name])
	}
	return w.Flush()
}

func newLiveCmd() *cobra.Command {
	opts := tui.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "live",
		Short: "steer the boat interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sim.New(cfg.Scenario())
			logger.Log.Info("live view started", zap.String("scenario", cfg.Name))
			return tui.Run(s, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "colour theme")
	cmd.Flags().DurationVar(&opts.Hold, "hold", opts.Hold, "how long a key counts as held after its last repeat")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "world units per terminal column")
	return cmd
}
