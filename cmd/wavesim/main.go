package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-kum/wavesim/internal/config"
	"github.com/san-kum/wavesim/internal/logger"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string
	logFile    string
	duration   float64

	cfg *config.Config
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "wavesim",
		Short:         "procedural waves and a boat that floats on them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			cfg = c
			return initLogging(cmd, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".wavesim", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file")

	rootCmd.AddCommand(
		newRunCmd(),
		newLiveCmd(),
		newListCmd(),
		newPlotCmd(),
		newAnalyzeCmd(),
		newExportCmd(),
		newPortraitCmd(),
		newSampleCmd(),
		newParityCmd(),
		newPresetsCmd(),
		newBenchCmd(),
		newSweepCmd(),
		newDivergenceCmd(),
		newTuneCmd(),
	)

	err := rootCmd.Execute()
	if err != nil {
		logger.Log.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves --config and --preset. A config file wins over a
// preset, and both fall back to the defaults.
func loadConfig() (*config.Config, error) {
	var c *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		c = loaded
	case preset != "":
		c = config.GetPreset(preset)
		if c == nil {
			return nil, fmt.Errorf("unknown preset %q (try: wavesim presets)", preset)
		}
	default:
		c = config.DefaultConfig()
	}

	if duration > 0 {
		c.Sim.Duration = duration
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// initLogging applies the config's logging section unless the flags
// override it. The live view owns the terminal, so it logs to file only.
func initLogging(cmd *cobra.Command, cfg *config.Config) error {
	level := cfg.Logging.Level
	if cmd.Flags().Changed("log-level") || level == "" {
		level = logLevel
	}
	file := firstNonEmpty(logFile, cfg.Logging.File)

	if cmd.Name() == "live" {
		var fc logger.FileConfig
		if file != "" {
			fc = logger.DefaultFileConfig(file)
		}
		return logger.InitWith(level, fc, nil)
	}
	return logger.Init(level, file)
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
