package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thuemorse/config"
	"github.com/katalvlaran/thuemorse/internal/logging"
)

// defaultConfigPath is read when --config is not given; absence is fine.
const defaultConfigPath = "thuemorse.yaml"

// newRootCmd assembles the command tree. Building it per call keeps flag
// state out of package globals.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "thuemorse",
		Short:         "Explore the fixed-length windows of the Thue-Morse sequence",
		Long:          `thuemorse catalogues the distinct K-bit windows of the Thue-Morse sequence as a labeled alphabet and relates the symbols by sliding and by the doubling morphism 0→01, 1→10.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", defaultConfigPath, "YAML config file")
	root.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	root.PersistentFlags().Int("k", config.DefaultK, "window length in bits")

	root.AddCommand(newAlphabetCmd(), newRenderCmd(), newGraphCmd(), newVersionCmd())

	return root
}

// loadSettings merges the config file with explicitly set flags and builds
// the logger. Flags win over file values.
func loadSettings(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("k") {
		cfg.K, _ = flags.GetInt("k")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if f := flags.Lookup("render"); f != nil && f.Changed {
		cfg.RenderLength, _ = flags.GetInt("render")
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Format, _ = flags.GetString("format")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	log := logging.NewWithWriter(cmd.ErrOrStderr(), level)

	return cfg, log, nil
}
