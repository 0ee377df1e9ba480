// Command portcompare is the configurable audit variant: it takes the
// tree roots as positional arguments and prints the full report.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"

	"github.com/neotools/portaudit/pkg/audit"
	"github.com/neotools/portaudit/pkg/config"
	"github.com/neotools/portaudit/pkg/report"
	"github.com/neotools/portaudit/pkg/scan"
)

const usage = "Usage: portcompare <source_dir> <translated_include_dir> <translated_src_dir> [translated_test_dir]"

var (
	strict = flag.Bool("strict", false, "Warn about source files without a path marker")
	debug  = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()
	os.Exit(run(flag.Args(), os.Stdout, *strict, *debug))
}

// run executes one audit pass over the trees named by args and writes
// the report to stdout, returning the process exit status. The usage
// line is the only output when too few arguments are given.
func run(args []string, stdout io.Writer, strict, debug bool) int {
	if len(args) < 3 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
	}
	logger := zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	// The scanner filesystem is rooted at /, so relative arguments are
	// resolved against the working directory first.
	dirs := make([]string, len(args))
	for i, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			logger.Error().Err(err).Str("path", arg).Msg("resolving path")
			return 1
		}
		dirs[i] = abs
	}

	cfg := config.Default()
	cfg.SourceDir = dirs[0]
	cfg.IncludeDir = dirs[1]
	cfg.SrcDir = dirs[2]
	cfg.TestDir = ""
	if len(dirs) > 3 {
		cfg.TestDir = dirs[3]
	}
	cfg.Strict = strict

	scanner := scan.New(osfs.New("/"), scan.WithIgnorePatterns(cfg.IgnorePatterns))
	auditor := audit.New(cfg, scanner)

	result, err := auditor.Run(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("running audit")
		return 1
	}

	w := report.NewWriter(stdout)
	if err := w.WriteFull(result, cfg); err != nil {
		logger.Error().Err(err).Msg("writing report")
		return 1
	}

	return 0
}
