// Package audit cross-references a source tree against its translated
// trees and reports which source files have no translated counterpart.
package audit

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/neotools/portaudit/pkg/config"
	"github.com/neotools/portaudit/pkg/mapping"
	"github.com/neotools/portaudit/pkg/scan"
)

// Missing is a source file with no matching translated file.
type Missing struct {
	SourcePath string // path of the source file as scanned
	Dir        string // expected directory relative to the translated root
	Name       string // canonical snake_case name, no extension
}

// Report is the outcome of one audit pass. Counts are taken from the
// raw scans, before any marker filtering.
type Report struct {
	SourceCount int
	HeaderCount int
	SrcCount    int
	TestCount   int

	MissingHeaders []Missing
	MissingSources []Missing

	// Skipped holds source paths that carry no recognizable marker.
	// They appear in neither missing list.
	Skipped []string
}

// Auditor runs scan-then-compare passes over the configured trees.
type Auditor struct {
	cfg     *config.Config
	scanner *scan.Scanner
	mapper  *mapping.Mapper
}

// New creates an Auditor for the given configuration.
func New(cfg *config.Config, scanner *scan.Scanner) *Auditor {
	return &Auditor{
		cfg:     cfg,
		scanner: scanner,
		mapper:  mapping.New(cfg.Markers),
	}
}

// Run performs the directory-aware audit: every source file that maps
// through a marker is checked against the translated header and source
// trees. A candidate matches when the canonical name occurs anywhere in
// its lowercased base name, so translated files carrying extra prefixes
// or suffixes still count as present. Short canonical names can
// over-match for the same reason.
func (a *Auditor) Run(ctx context.Context) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	sources, headers, srcs, tests, err := a.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{
		SourceCount: len(sources),
		HeaderCount: len(headers),
		SrcCount:    len(srcs),
		TestCount:   len(tests),
	}

	for _, src := range sources {
		mapped, ok := a.mapper.Map(src)
		// A file directly under a marker has no derivable target
		// directory; it is skipped like a marker-less path.
		if !ok || mapped.Dir == "" {
			report.Skipped = append(report.Skipped, src)
			if a.cfg.Strict {
				logger.Warn().Str("path", src).Msg("no path marker, excluding from audit")
			}
			continue
		}

		if !anyBaseContains(headers, mapped.Name) {
			report.MissingHeaders = append(report.MissingHeaders, Missing{
				SourcePath: src,
				Dir:        mapped.Dir,
				Name:       mapped.Name,
			})
		}
		if !anyBaseContains(srcs, mapped.Name) {
			report.MissingSources = append(report.MissingSources, Missing{
				SourcePath: src,
				Dir:        mapped.Dir,
				Name:       mapped.Name,
			})
		}
	}

	logger.Debug().
		Int("missing_headers", len(report.MissingHeaders)).
		Int("missing_sources", len(report.MissingSources)).
		Int("skipped", len(report.Skipped)).
		Msg("audit complete")

	return report, nil
}

// RunNames performs the name-list audit used by the fixed-path
// variant: every source file is canonicalized regardless of markers,
// and compared against the raw stems of the translated files.
func (a *Auditor) RunNames(ctx context.Context) (*Report, error) {
	sources, headers, srcs, tests, err := a.scanAll(ctx)
	if err != nil {
		return nil, err
	}

	headerStems := stems(headers)
	srcStems := stems(srcs)

	report := &Report{
		SourceCount: len(sources),
		HeaderCount: len(headers),
		SrcCount:    len(srcs),
		TestCount:   len(tests),
	}

	for _, src := range sources {
		name := mapping.Canonical(src)

		if !anyContains(headerStems, name) {
			report.MissingHeaders = append(report.MissingHeaders, Missing{
				SourcePath: src,
				Name:       name,
			})
		}
		if !anyContains(srcStems, name) {
			report.MissingSources = append(report.MissingSources, Missing{
				SourcePath: src,
				Name:       name,
			})
		}
	}

	return report, nil
}

// scanAll lists the source tree and the two or three translated trees.
func (a *Auditor) scanAll(ctx context.Context) (sources, headers, srcs, tests []string, err error) {
	sources, err = a.scanner.Scan(ctx, a.cfg.SourceDir, a.cfg.SourceExt)
	if err != nil {
		return nil, nil, nil, nil, errors.Errorf("listing source files: %w", err)
	}

	headers, err = a.scanner.Scan(ctx, a.cfg.IncludeDir, a.cfg.HeaderExt)
	if err != nil {
		return nil, nil, nil, nil, errors.Errorf("listing translated headers: %w", err)
	}

	srcs, err = a.scanner.Scan(ctx, a.cfg.SrcDir, a.cfg.SrcExt)
	if err != nil {
		return nil, nil, nil, nil, errors.Errorf("listing translated sources: %w", err)
	}

	if a.cfg.TestDir != "" {
		tests, err = a.scanner.Scan(ctx, a.cfg.TestDir, a.cfg.TestExt)
		if err != nil {
			return nil, nil, nil, nil, errors.Errorf("listing translated tests: %w", err)
		}
	}

	return sources, headers, srcs, tests, nil
}

// anyBaseContains reports whether any candidate's lowercased base name
// contains name as a substring.
func anyBaseContains(candidates []string, name string) bool {
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(filepath.Base(c)), name) {
			return true
		}
	}
	return false
}

// anyContains reports whether any stem contains name as a substring.
// Stems keep their original casing, so an uppercase translated file
// name never matches a canonical name.
func anyContains(candidateStems []string, name string) bool {
	for _, s := range candidateStems {
		if strings.Contains(s, name) {
			return true
		}
	}
	return false
}

func stems(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = mapping.Stem(p)
	}
	return out
}
