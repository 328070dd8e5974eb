package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/wavesim/internal/export"
	"github.com/san-kum/wavesim/internal/logger"
	"github.com/san-kum/wavesim/internal/waves"
)

func newSampleCmd() *cobra.Command {
	var (
		size     float64
		segments int
		at       float64
		out      string
		svg      string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "evaluate the wave field on a plane mesh and write x,z,t,elevation CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			hm := waves.NewHeightmap(cfg.Waves.Parameters, size, segments, at)

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := waves.WriteSamples(w, hm.Samples()); err != nil {
				return err
			}
			if svg != "" {
				if err := os.WriteFile(svg, []byte(export.HeightmapToSVG(hm, 6)), 0644); err != nil {
					return err
				}
			}

			lo, hi := hm.MinMax()
			logger.Log.Info("heightmap written",
				zap.Int("vertices", len(hm.Heights)),
				zap.Float64("min", lo),
				zap.Float64("max", hi),
			)
			return nil
		},
	}
	cmd.Flags().Float64Var(&size, "size", 10, "plane width and depth")
	cmd.Flags().IntVar(&segments, "segments", 64, "quads per side")
	cmd.Flags().Float64Var(&at, "t", 0, "time to sample at")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&svg, "svg", "", "also render the heightmap to this svg file")
	return cmd
}

func newParityCmd() *cobra.Command {
	var tol float64

	cmd := &cobra.Command{
		Use:   "parity [samples.csv]",
		Short: "check renderer displacement samples against the CPU field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			samples, err := waves.ReadSamples(f)
			if err != nil {
				return err
			}

			rep := waves.Compare(cfg.Waves.Parameters, samples, tol)
			fmt.Printf("samples: %d\n", rep.Count)
			fmt.Printf("mismatches: %d (tolerance %g)\n", rep.Mismatches, tol)
			fmt.Printf("max abs error: %g\n", rep.MaxAbsError)
			if !rep.OK() {
				fmt.Printf("worst: x=%g z=%g t=%g got %g want %g\n",
					rep.Worst.X, rep.Worst.Z, rep.Worst.T, rep.Worst.Elevation, rep.Expected)
				return fmt.Errorf("%d of %d samples out of tolerance", rep.Mismatches, rep.Count)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", 1e-6, "absolute tolerance")
	return cmd
}
