// Package mapping derives the expected translated location of a source
// file from its path.
package mapping

import (
	"path/filepath"
	"strings"

	"github.com/neotools/portaudit/pkg/casing"
)

// Mapped is the translated-tree location a source file is expected to
// occupy: the directory relative to the tree root and the canonical
// snake_case name, without extension.
type Mapped struct {
	Dir  string
	Name string
}

// Mapper maps source paths to expected translated names. Markers are
// path fragments that anchor the root-relative portion of a source
// path; they are tried in order.
type Mapper struct {
	Markers []string
}

// New creates a Mapper with the given marker fragments.
func New(markers []string) *Mapper {
	return &Mapper{Markers: markers}
}

// Canonical returns the canonical snake_case name for a source path:
// the base name with its extension stripped, converted by the casing
// rules.
func Canonical(path string) string {
	return casing.ToSnake(Stem(path))
}

// Stem returns the base name of a path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Map resolves a source path to its expected translated location. The
// second return is false when no marker occurs in the path; such files
// carry no derivable location and must be skipped by the caller.
func (m *Mapper) Map(path string) (Mapped, bool) {
	for _, marker := range m.Markers {
		idx := strings.Index(path, marker)
		if idx < 0 {
			continue
		}

		subpath := path[idx+len(marker):]
		dir := filepath.Dir(subpath)
		if dir == "." {
			dir = ""
		}

		return Mapped{Dir: dir, Name: Canonical(path)}, true
	}
	return Mapped{}, false
}
