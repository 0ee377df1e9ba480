// Package scan walks directory trees and collects files by extension.
package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Scanner lists files under a root directory. The filesystem is
// abstracted behind billy so tests can run against an in-memory tree.
type Scanner struct {
	fs     billy.Filesystem
	ignore []string
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithIgnorePatterns sets doublestar globs matched against each file's
// root-relative path; matching files are excluded from results.
func WithIgnorePatterns(patterns []string) Option {
	return func(s *Scanner) {
		s.ignore = patterns
	}
}

// New creates a Scanner over the given filesystem.
func New(fsys billy.Filesystem, opts ...Option) *Scanner {
	s := &Scanner{fs: fsys}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns every file under root whose name ends with ext, in
// traversal order. The root must exist and be readable; any traversal
// failure propagates.
func (s *Scanner) Scan(ctx context.Context, root, ext string) ([]string, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("root", root).Str("ext", ext).Msg("scanning directory")

	var files []string
	walkErr := util.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(info.Name(), ext) {
			return nil
		}

		ignored, err := s.isIgnored(root, path)
		if err != nil {
			return err
		}
		if ignored {
			logger.Debug().Str("path", path).Msg("ignoring file")
			return nil
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, errors.Errorf("scanning %s: %w", root, walkErr)
	}

	logger.Debug().Str("root", root).Int("count", len(files)).Msg("scan complete")
	return files, nil
}

// isIgnored matches the root-relative path against the ignore globs.
func (s *Scanner) isIgnored(root, path string) (bool, error) {
	if len(s.ignore) == 0 {
		return false, nil
	}

	rel := strings.TrimPrefix(path, root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	rel = filepath.ToSlash(rel)

	for _, pattern := range s.ignore {
		ok, err := doublestar.Match(pattern, rel)
		if err != nil {
			return false, errors.Errorf("matching pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
