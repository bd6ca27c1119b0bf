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

package command

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spicekit/spicenum/go/spicenum"
)

// ResolvedLiteral is one successfully resolved literal in a parse report.
type ResolvedLiteral struct {
	Raw   string  `json:"raw" yaml:"raw"`
	Value float64 `json:"value" yaml:"value"`
}

// FailedLiteral is one literal that failed to resolve.
type FailedLiteral struct {
	Raw   string `json:"raw" yaml:"raw"`
	Kind  string `json:"kind" yaml:"kind"`
	Error string `json:"error" yaml:"error"`
}

// ParseReport is the structured output of the parse command.
type ParseReport struct {
	Resolved []ResolvedLiteral `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Failed   []FailedLiteral   `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// AddParseCommand adds the parse subcommand to the root command.
func AddParseCommand(root *cobra.Command, sc *SpicenumCommand) {
	cmd := &cobra.Command{
		Use:   "parse [literal]...",
		Short: "Resolve numeric literals to their values",
		Long: `Resolve each literal argument and print its value. With no
arguments, literals are read from stdin, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sc.runParse(cmd, args)
		},
	}

	root.AddCommand(cmd)
}

func (sc *SpicenumCommand) runParse(cmd *cobra.Command, args []string) error {
	literals := args
	if len(literals) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if s := strings.TrimSpace(scanner.Text()); s != "" {
				literals = append(literals, s)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	report := &ParseReport{}
	for _, lit := range literals {
		n, err := spicenum.Resolve(lit)
		if err != nil {
			kind, _ := spicenum.KindOf(err)
			report.Failed = append(report.Failed, FailedLiteral{
				Raw:   lit,
				Kind:  kind.String(),
				Error: err.Error(),
			})
			continue
		}
		report.Resolved = append(report.Resolved, ResolvedLiteral{Raw: n.Raw, Value: n.Value})
	}

	err := writeOutput(cmd.OutOrStdout(), sc.format.Get(), report, func(w io.Writer) error {
		for _, r := range report.Resolved {
			if _, err := fmt.Fprintf(w, "%s = %g\n", r.Raw, r.Value); err != nil {
				return err
			}
		}
		for _, f := range report.Failed {
			if _, err := fmt.Fprintf(w, "%s: %s\n", f.Raw, f.Error); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(report.Failed) > 0 {
		return fmt.Errorf("%d of %d literals failed to resolve", len(report.Failed), len(literals))
	}
	return nil
}
