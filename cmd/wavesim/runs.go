package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavesim/internal/analysis"
	"github.com/san-kum/wavesim/internal/export"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/storage"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(dataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tAMPLITUDE\tFRAMES\tAUTOPILOT")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.3f\t%d\t%v\n",
					run.ID,
					run.Scenario,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					run.Duration,
					run.Waves.Amplitude,
					run.FramesRun,
					run.Autopilot,
				)
			}
			return w.Flush()
		},
	}
}

func loadRun(runID string) (*storage.RunMetadata, []sim.Frame, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}
	if len(frames) == 0 {
		return nil, nil, fmt.Errorf("run %s has no frames", runID)
	}
	return meta, frames, nil
}

func newPlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot heave, tilt, heading and speed of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, frames, err := loadRun(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("run: %s\n", meta.ID)
			fmt.Printf("scenario: %s\n", meta.Scenario)
			fmt.Printf("samples: %d\n\n", len(frames))

			series := []struct {
				caption string
				value   func(sim.Frame) float64
			}{
				{"heave (m above water)", sim.Frame.Heave},
				{"tilt (deg)", func(f sim.Frame) float64 { return f.Tilt * 180 / math.Pi }},
				{"heading (deg)", func(f sim.Frame) float64 { return f.Heading * 180 / math.Pi }},
				{"speed (m/s)", func(f sim.Frame) float64 { return f.Velocity.Len() }},
			}
			for _, s := range series {
				data := make([]float64, len(frames))
				for i, f := range frames {
					data[i] = s.value(f)
				}
				fmt.Println(asciigraph.Plot(data,
					asciigraph.Height(10),
					asciigraph.Width(80),
					asciigraph.Caption(s.caption),
				))
				fmt.Println()
			}
			return nil
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "heave spectrum and wave period of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, frames, err := loadRun(args[0])
			if err != nil {
				return err
			}
			if len(frames) < 2 {
				return fmt.Errorf("need at least two frames")
			}

			dt := frames[1].Time - frames[0].Time
			heave := analysis.Heave(frames)
			times := make([]float64, len(frames))
			for i, f := range frames {
				times[i] = f.Time
			}

			fmt.Printf("frequency analysis: %s\n", meta.ID)
			fmt.Printf("scenario: %s\n\n", meta.Scenario)

			bins := analysis.Spectrum(heave, dt)
			plotData := make([]float64, 0, len(bins)/4)
			for _, b := range bins[:min(len(bins), max(2, len(bins)/4))] {
				plotData = append(plotData, b.Power)
			}
			fmt.Println(asciigraph.Plot(plotData,
				asciigraph.Height(15),
				asciigraph.Width(80),
				asciigraph.Caption("heave power spectrum"),
			))
			fmt.Println()

			if freq, ok := analysis.DominantFrequency(heave, dt); ok {
				fmt.Printf("dominant frequency: %.3f hz\n", freq)
				fmt.Printf("period: %.3f s\n", 1.0/freq)
			} else {
				fmt.Println("dominant frequency: none (flat series)")
			}
			if p := analysis.MeanPeriod(heave, times); p > 0 {
				fmt.Printf("mean up-crossing period: %.3f s\n", p)
			}
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [run_id]",
		Short: "print a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, frames, err := loadRun(args[0])
			if err != nil {
				return err
			}
			sc := sim.Scenario{Name: meta.Scenario, Waves: meta.Waves}
			sc.Timing.FrameDt = meta.FrameDt
			sc.Timing.Duration = meta.Duration
			return storage.ExportJSON(os.Stdout, sc, &sim.Result{
				Scenario:    meta.Scenario,
				Frames:      frames,
				Metrics:     meta.Metrics,
				FramesRun:   meta.FramesRun,
				EngineSteps: meta.EngineSteps,
			})
		},
	}
}

func newPortraitCmd() *cobra.Command {
	var kind, svg string

	cmd := &cobra.Command{
		Use:   "portrait [run_id]",
		Short: "draw the track or heave phase portrait of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, frames, err := loadRun(args[0])
			if err != nil {
				return err
			}

			var p *analysis.Portrait
			switch kind {
			case "track":
				p = analysis.TrackPortrait(frames)
			case "heave":
				p = analysis.HeavePortrait(frames)
			default:
				return fmt.Errorf("unknown portrait %q (track, heave)", kind)
			}
			if svg != "" {
				return os.WriteFile(svg, []byte(export.PortraitToSVG(p, 800, 600, "#ffd700")), 0644)
			}
			fmt.Printf("%s vs %s\n", p.YLabel, p.XLabel)
			fmt.Print(analysis.PortraitToASCII(p, 70, 24))
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "track", "track or heave")
	cmd.Flags().StringVar(&svg, "svg", "", "write an svg file instead of drawing in the terminal")
	return cmd
}
