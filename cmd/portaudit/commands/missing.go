package commands

import (
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/neotools/portaudit/pkg/audit"
	"github.com/neotools/portaudit/pkg/report"
	"github.com/neotools/portaudit/pkg/scan"
)

// NewMissingCmd creates a new missing command
func NewMissingCmd(newOpts OptsFunc) *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "missing",
		Short: "Rank the missing translated files for the configured trees",
		Long: `Missing audits the trees named in the configuration (or the baked-in
defaults) by file name alone, without deriving directories, and prints
the top-ranked missing headers and sources with a total-count summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o, err := newOpts(ctx)
			if err != nil {
				return err
			}
			cfg := o.Config
			if topN > 0 {
				cfg.TopN = topN
			}

			o.UserLogger.LogRunStart(cfg.SourceDir, cfg.IncludeDir, cfg.SrcDir)

			scanner := scan.New(osfs.New("/"), scan.WithIgnorePatterns(cfg.IgnorePatterns))
			auditor := audit.New(cfg, scanner)

			result, err := auditor.RunNames(ctx)
			if err != nil {
				return errors.Errorf("running audit: %w", err)
			}

			w := report.NewWriter(os.Stdout)
			if err := w.WriteTopN(result, cfg, cfg.TopN); err != nil {
				return errors.Errorf("writing report: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&topN, "top", 0, "entries to list per category (default from config)")

	return cmd
}
