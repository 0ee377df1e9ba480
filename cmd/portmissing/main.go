// Command portmissing is the fixed-path audit variant: with no flags
// it audits the baked-in tree locations by file name alone and prints
// the top-ranked missing entries per category.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"

	"github.com/neotools/portaudit/pkg/audit"
	"github.com/neotools/portaudit/pkg/config"
	"github.com/neotools/portaudit/pkg/report"
	"github.com/neotools/portaudit/pkg/scan"
)

var (
	configFile = flag.String("config", "", "Config file overriding the baked-in paths")
	debug      = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	logLevel := zerolog.InfoLevel
	if *debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	cfg := config.Default()
	if *configFile != "" {
		loaded, err := config.Load(ctx, *configFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("loading config file")
		}
		cfg = loaded
	}

	scanner := scan.New(osfs.New("/"), scan.WithIgnorePatterns(cfg.IgnorePatterns))
	auditor := audit.New(cfg, scanner)

	result, err := auditor.RunNames(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("running audit")
	}

	w := report.NewWriter(os.Stdout)
	if err := w.WriteTopN(result, cfg, cfg.TopN); err != nil {
		logger.Fatal().Err(err).Msg("writing report")
	}
}
