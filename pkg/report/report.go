// Package report renders audit results as line-oriented text.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"gitlab.com/tozd/go/errors"

	"github.com/neotools/portaudit/pkg/audit"
	"github.com/neotools/portaudit/pkg/config"
)

// Writer formats audit reports. Output is plain text; section headings
// are colorized only when enabled.
type Writer struct {
	out     io.Writer
	color   bool
	heading *color.Color
}

// Option configures a Writer.
type Option func(*Writer)

// WithColor enables colorized section headings.
func WithColor(enabled bool) Option {
	return func(w *Writer) {
		w.color = enabled
	}
}

// NewWriter creates a report Writer targeting out.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{
		out:     out,
		heading: color.New(color.Bold),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteFull prints per-category totals followed by every missing entry
// with its expected translated path.
func (w *Writer) WriteFull(r *audit.Report, cfg *config.Config) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Total source files: %d\n", r.SourceCount)
	fmt.Fprintf(&b, "Total translated headers: %d\n", r.HeaderCount)
	fmt.Fprintf(&b, "Total translated sources: %d\n", r.SrcCount)
	fmt.Fprintf(&b, "Total translated tests: %d\n", r.TestCount)

	b.WriteString("\n")
	b.WriteString(w.headingf("Missing headers:"))
	b.WriteString("\n")
	for _, m := range r.MissingHeaders {
		fmt.Fprintf(&b, "  %s -> %s/%s%s\n", m.SourcePath, m.Dir, m.Name, cfg.HeaderExt)
	}

	b.WriteString("\n")
	b.WriteString(w.headingf("Missing sources:"))
	b.WriteString("\n")
	for _, m := range r.MissingSources {
		fmt.Fprintf(&b, "  %s -> %s/%s%s\n", m.SourcePath, m.Dir, m.Name, cfg.SrcExt)
	}

	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return errors.Errorf("writing report: %w", err)
	}
	return nil
}

// WriteTopN prints the first n missing entries per category with
// 1-based ranks, then a total-count summary line.
func (w *Writer) WriteTopN(r *audit.Report, cfg *config.Config, n int) error {
	var b strings.Builder

	b.WriteString(w.headingf("Top %d Missing Headers:", n))
	b.WriteString("\n")
	for i, m := range truncate(r.MissingHeaders, n) {
		fmt.Fprintf(&b, "%d. %s -> %s%s\n", i+1, filepath.Base(m.SourcePath), m.Name, cfg.HeaderExt)
	}

	b.WriteString("\n")
	b.WriteString(w.headingf("Top %d Missing Sources:", n))
	b.WriteString("\n")
	for i, m := range truncate(r.MissingSources, n) {
		fmt.Fprintf(&b, "%d. %s -> %s%s\n", i+1, filepath.Base(m.SourcePath), m.Name, cfg.SrcExt)
	}

	fmt.Fprintf(&b, "\nTotal: %d missing headers, %d missing sources\n",
		len(r.MissingHeaders), len(r.MissingSources))

	if _, err := io.WriteString(w.out, b.String()); err != nil {
		return errors.Errorf("writing report: %w", err)
	}
	return nil
}

func (w *Writer) headingf(format string, args ...any) string {
	if w.color {
		return w.heading.Sprintf(format, args...)
	}
	return fmt.Sprintf(format, args...)
}

func truncate(entries []audit.Missing, n int) []audit.Missing {
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}
