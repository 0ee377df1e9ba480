// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is the list of available parsers
var parsers []Parser

// Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config describes one audit run: where the source tree and the
// translated trees live, which extensions to collect, and how source
// paths map onto expected translated names.
type Config struct {
	SourceDir  string `json:"source_dir"  yaml:"source_dir"`
	IncludeDir string `json:"include_dir" yaml:"include_dir"`
	SrcDir     string `json:"src_dir"     yaml:"src_dir"`
	TestDir    string `json:"test_dir,omitempty" yaml:"test_dir,omitempty"`

	SourceExt string `json:"source_ext" yaml:"source_ext"`
	HeaderExt string `json:"header_ext" yaml:"header_ext"`
	SrcExt    string `json:"src_ext"    yaml:"src_ext"`
	TestExt   string `json:"test_ext,omitempty" yaml:"test_ext,omitempty"`

	// Markers locate the root-relative portion of a source path.
	// Checked in order; a path containing none of them is skipped.
	Markers []string `json:"markers,omitempty" yaml:"markers,omitempty"`

	// IgnorePatterns are doublestar globs matched against the
	// root-relative path of every scanned file.
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`

	// Strict surfaces marker-less source paths as warnings instead of
	// dropping them silently.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`

	// TopN bounds the ranked report of the missing variant.
	TopN int `json:"top_n,omitempty" yaml:"top_n,omitempty"`
}

// Default returns the baked-in configuration of the fixed-path
// variant: a Swift tree audited against its C++ port. Everything here
// can be overridden by a config file.
func Default() *Config {
	return &Config{
		SourceDir:  "/opt/ports/NeoSwift/Sources/NeoSwift",
		IncludeDir: "/opt/ports/NeoCpp/include/neocpp",
		SrcDir:     "/opt/ports/NeoCpp/src",
		SourceExt:  ".swift",
		HeaderExt:  ".hpp",
		SrcExt:     ".cpp",
		TestExt:    ".cpp",
		Markers:    []string{"/Sources/NeoSwift/", "/Tests/"},
		TopN:       10,
	}
}

// Load loads the configuration from a file.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Str("source_dir", cfg.SourceDir).
		Str("include_dir", cfg.IncludeDir).
		Str("src_dir", cfg.SrcDir).
		Msg("configuration loaded")

	return cfg, nil
}

// Validate checks the configuration and fills in defaults for fields a
// config file may omit.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return errors.New("source_dir is required")
	}
	if c.IncludeDir == "" {
		return errors.New("include_dir is required")
	}
	if c.SrcDir == "" {
		return errors.New("src_dir is required")
	}

	def := Default()
	if c.SourceExt == "" {
		c.SourceExt = def.SourceExt
	}
	if c.HeaderExt == "" {
		c.HeaderExt = def.HeaderExt
	}
	if c.SrcExt == "" {
		c.SrcExt = def.SrcExt
	}
	if c.TestExt == "" {
		c.TestExt = def.TestExt
	}
	if len(c.Markers) == 0 {
		c.Markers = def.Markers
	}
	if c.TopN <= 0 {
		c.TopN = def.TopN
	}

	return nil
}
