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
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/spicekit/spicenum/go/tools/logutil"
	"github.com/spicekit/spicenum/go/viperutil"
)

// SpicenumCommand holds the configuration shared by spicenum subcommands.
type SpicenumCommand struct {
	reg    *viperutil.Registry
	vc     *viperutil.ViperConfig
	logger *logutil.Logger
	format *viperutil.Value[string]
}

// GetRootCommand creates and returns the root command for spicenum with
// all subcommands.
func GetRootCommand() *cobra.Command {
	reg := viperutil.NewRegistry()
	sc := &SpicenumCommand{
		reg:    reg,
		vc:     viperutil.NewViperConfig(reg),
		logger: logutil.NewLogger(reg),
	}
	sc.format = viperutil.Configure(reg, "output.format", viperutil.Options[string]{
		Default:  "text",
		EnvVars:  []string{"SPICENUM_FORMAT"},
		FlagName: "format",
	})

	root := &cobra.Command{
		Use:   "spicenum",
		Short: "Resolve and validate SPICE numeric literals",
		Long: `Spicenum resolves numeric literals in SPICE engineering notation,
including unit-magnitude suffixes ("1.23k", "7343Meg", "-4E-08"), to
their float values.

Configuration:
  Spicenum searches for a config file named 'spicenum' with a supported
  extension (.yaml, .yml, .json, .toml) in the current directory, or in
  the directories given by --config-path. Environment variables use the
  SPICENUM_ prefix.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Silence usage for application errors, but allow it for flag
			// errors; this runs after flag parsing.
			cmd.SilenceUsage = true

			if err := sc.vc.LoadConfig(sc.reg); err != nil {
				return err
			}

			sc.logger.SetupLogging()
			return nil
		},
	}

	pf := root.PersistentFlags()
	sc.vc.RegisterFlags(pf)
	sc.logger.RegisterFlags(pf)
	pf.String("format", sc.format.Default(), "Output format (text, json, yaml).")
	viperutil.BindFlags(pf, sc.format)

	AddParseCommand(root, sc)
	AddCheckCommand(root, sc)

	return root
}

// writeOutput renders v in the configured format. The text callback
// handles the human-readable default; json and yaml encode v directly.
func writeOutput(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		return yaml.NewEncoder(w).Encode(v)
	case "text", "":
		return text(w)
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", format)
	}
}
