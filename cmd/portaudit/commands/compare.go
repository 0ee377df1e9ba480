package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/neotools/portaudit/cmd/portaudit/opts"
	"github.com/neotools/portaudit/pkg/audit"
	"github.com/neotools/portaudit/pkg/report"
	"github.com/neotools/portaudit/pkg/scan"
)

// OptsFunc builds the shared options after cobra has parsed flags
type OptsFunc func(ctx context.Context) (*opts.RootOpts, error)

// NewCompareCmd creates a new compare command
func NewCompareCmd(newOpts OptsFunc) *cobra.Command {
	var colorize bool

	cmd := &cobra.Command{
		Use:   "compare <source_dir> <include_dir> <src_dir> [test_dir]",
		Short: "Compare a source tree against its translated trees",
		Long: `Compare walks the source tree, derives the expected translated name
of every file, and prints each source file whose name cannot be found
in the translated header or source trees.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o, err := newOpts(ctx)
			if err != nil {
				return err
			}
			cfg := o.Config

			if cfg.SourceDir, err = filepath.Abs(args[0]); err != nil {
				return errors.Errorf("resolving source dir: %w", err)
			}
			if cfg.IncludeDir, err = filepath.Abs(args[1]); err != nil {
				return errors.Errorf("resolving include dir: %w", err)
			}
			if cfg.SrcDir, err = filepath.Abs(args[2]); err != nil {
				return errors.Errorf("resolving src dir: %w", err)
			}
			cfg.TestDir = ""
			if len(args) > 3 {
				if cfg.TestDir, err = filepath.Abs(args[3]); err != nil {
					return errors.Errorf("resolving test dir: %w", err)
				}
			}

			o.UserLogger.LogRunStart(cfg.SourceDir, cfg.IncludeDir, cfg.SrcDir)

			scanner := scan.New(osfs.New("/"), scan.WithIgnorePatterns(cfg.IgnorePatterns))
			auditor := audit.New(cfg, scanner)

			result, err := auditor.Run(ctx)
			if err != nil {
				return errors.Errorf("running audit: %w", err)
			}

			if cfg.Strict {
				for _, skipped := range result.Skipped {
					o.UserLogger.LogSkippedFile(skipped)
				}
			}

			w := report.NewWriter(os.Stdout, report.WithColor(colorize))
			if err := w.WriteFull(result, cfg); err != nil {
				return errors.Errorf("writing report: %w", err)
			}

			o.UserLogger.LogSummary(len(result.MissingHeaders), len(result.MissingSources))
			return nil
		},
	}

	cmd.Flags().BoolVar(&colorize, "color", false, "colorize report headings")

	return cmd
}
