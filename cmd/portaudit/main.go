package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/neotools/portaudit/cmd/portaudit/commands"
	"github.com/neotools/portaudit/pkg/ui"
)

func main() {
	// A .env in the working directory may carry PORTAUDIT_CONFIG and
	// PORTAUDIT_STRICT; absence is not an error
	_ = godotenv.Load()

	ctx := log.Logger.WithContext(context.Background())
	userLogger := ui.NewUserLogger(ctx)

	rootCmd := &cobra.Command{
		Use:   "portaudit",
		Short: "Audit a translated source tree for missing counterparts",
		Long: `portaudit compares a tree of source files against the header and
source trees of its translation, reporting every source file whose
expected translated name cannot be found.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags are only bound once cobra has parsed them
			setupLogging()
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewCompareCmd(newRootOpts),
		commands.NewMissingCmd(newRootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
