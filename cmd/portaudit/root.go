package main

import (
	"context"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/neotools/portaudit/cmd/portaudit/opts"
	"github.com/neotools/portaudit/pkg/config"
	"github.com/neotools/portaudit/pkg/ui"
)

var (
	// Flags
	configFile string
	strict     bool
	debug      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies.
// The --config flag wins over PORTAUDIT_CONFIG; neither set means the
// baked-in defaults.
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	userLogger := ui.NewUserLogger(ctx)

	path := configFile
	if path == "" {
		path = os.Getenv("PORTAUDIT_CONFIG")
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(ctx, path)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if strict || envBool("PORTAUDIT_STRICT") {
		cfg.Strict = true
	}

	return &opts.RootOpts{
		Config:     cfg,
		UserLogger: userLogger,
	}, nil
}

// envBool reads a boolean environment variable; unset or malformed
// values count as false.
func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (YAML or HCL)")
	cmd.PersistentFlags().BoolVar(&strict, "strict", false, "warn about source files without a path marker")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
