package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logger zerolog.Logger
	cfg    *Config

	flagLogLevel string
	flagEnv      string
)

var rootCmd = &cobra.Command{
	Use:   "dayscheduler",
	Short: "Fit tasks into the free time of a day",
	Long:  "dayscheduler reads the events and tasks of one day and places the tasks into the gaps between events, inside work hours.",

	SilenceUsage: true,

	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error), overrides DAYSCHEDULER_LOG_LEVEL")
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "Environment (development, production), overrides DAYSCHEDULER_ENV")
}

func setup(cmd *cobra.Command, _ []string) error {
	var errLoad error

	cfg, errLoad = loadConfig()
	if errLoad != nil {
		return fmt.Errorf("load config: %w", errLoad)
	}

	if len(flagEnv) > 0 {
		cfg.Environment = flagEnv
	}

	if len(flagLogLevel) > 0 {
		cfg.LogLevel = flagLogLevel
	}

	level, errLevel := cfg.level()
	if errLevel != nil {
		return fmt.Errorf("log level: %w", errLevel)
	}

	logger = setupLogging(cmd.ErrOrStderr(), level)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
