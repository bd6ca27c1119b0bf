// Copyright 2025 The Spicekit Authors.
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

// Package checker validates files of SPICE numeric literals. It resolves
// every literal it finds and reports the ones that fail, with their line
// number and error classification. It checks value literals only; it is
// not a netlist parser.
package checker

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/afero"

	"github.com/spicekit/spicenum/go/spicenum"
)

// Finding reports one literal that failed to resolve.
type Finding struct {
	Line    int    `json:"line" yaml:"line"`
	Literal string `json:"literal" yaml:"literal"`
	Kind    string `json:"kind" yaml:"kind"`
	Error   string `json:"error" yaml:"error"`
}

// Result summarizes one pass over a values file.
type Result struct {
	Path     string    `json:"path" yaml:"path"`
	Checked  int       `json:"checked" yaml:"checked"`
	Invalid  int       `json:"invalid" yaml:"invalid"`
	Findings []Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// Checker resolves literals from files on the given filesystem.
type Checker struct {
	fs     afero.Fs
	logger *slog.Logger
}

// New creates a Checker reading through fs. A nil logger falls back to
// the process default.
func New(fs afero.Fs, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{fs: fs, logger: logger}
}

// CheckFile resolves every literal in the file at path. Blank lines and
// lines starting with '*' (the SPICE comment convention) are skipped;
// every whitespace-separated field on the remaining lines is resolved.
func (c *Checker) CheckFile(path string) (*Result, error) {
	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	res := &Result{Path: path}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		for _, field := range strings.Fields(line) {
			res.Checked++
			if _, err := spicenum.Resolve(field); err != nil {
				kind, _ := spicenum.KindOf(err)
				res.Invalid++
				res.Findings = append(res.Findings, Finding{
					Line:    lineNo,
					Literal: field,
					Kind:    kind.String(),
					Error:   err.Error(),
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	c.logger.Debug("checked values file",
		"path", path,
		"literals", res.Checked,
		"invalid", res.Invalid,
	)
	return res, nil
}
