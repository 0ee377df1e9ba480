// Package ui provides user-facing console feedback for the cobra CLI,
// layered on top of the structured zerolog output.
package ui

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 UserLogger provides user-friendly feedback about an audit run
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
}

// NewUserLogger creates a new user logger
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// LogRunStart announces which trees are about to be compared
func (u *UserLogger) LogRunStart(sourceDir, includeDir, srcDir string) {
	msg := fmt.Sprintf("Auditing %s against %s and %s", sourceDir, includeDir, srcDir)
	pterm.Info.WithPrefix(pterm.Prefix{Text: "🔍"}).Println(msg)
	u.log.Info().Msg(msg)
}

// LogSkippedFile reports a source file that carries no path marker
func (u *UserLogger) LogSkippedFile(path string) {
	msg := fmt.Sprintf("Skipped %s (no path marker)", filepath.Base(path))
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⏭️"}).Println(msg)
	u.log.Warn().Str("path", path).Msg("skipped source file")
}

// LogValidation logs validation results
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
	u.log.Warn().Msg(description)
}

// LogSummary reports the outcome of an audit run
func (u *UserLogger) LogSummary(missingHeaders, missingSources int) {
	msg := fmt.Sprintf("%d missing headers, %d missing sources", missingHeaders, missingSources)
	if missingHeaders == 0 && missingSources == 0 {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println("Translation is complete: " + msg)
	} else {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "📦"}).Println(msg)
	}
	u.log.Info().Int("missing_headers", missingHeaders).Int("missing_sources", missingSources).Msg("audit summary")
}
