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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	type hclConfig struct {
		SourceDir  string `hcl:"source_dir"`
		IncludeDir string `hcl:"include_dir"`
		SrcDir     string `hcl:"src_dir"`
		TestDir    string `hcl:"test_dir,optional"`

		SourceExt string `hcl:"source_ext,optional"`
		HeaderExt string `hcl:"header_ext,optional"`
		SrcExt    string `hcl:"src_ext,optional"`
		TestExt   string `hcl:"test_ext,optional"`

		Markers        []string `hcl:"markers,optional"`
		IgnorePatterns []string `hcl:"ignore_patterns,optional"`
		Strict         bool     `hcl:"strict,optional"`
		TopN           int      `hcl:"top_n,optional"`
	}

	var raw hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &Config{
		SourceDir:      raw.SourceDir,
		IncludeDir:     raw.IncludeDir,
		SrcDir:         raw.SrcDir,
		TestDir:        raw.TestDir,
		SourceExt:      raw.SourceExt,
		HeaderExt:      raw.HeaderExt,
		SrcExt:         raw.SrcExt,
		TestExt:        raw.TestExt,
		Markers:        raw.Markers,
		IgnorePatterns: raw.IgnorePatterns,
		Strict:         raw.Strict,
		TopN:           raw.TopN,
	}, nil
}
