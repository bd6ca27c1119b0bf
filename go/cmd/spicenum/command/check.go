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
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/spicekit/spicenum/go/checker"
)

// AddCheckCommand adds the check subcommand to the root command.
func AddCheckCommand(root *cobra.Command, sc *SpicenumCommand) {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate the numeric literals in values files",
		Long: `Resolve every literal in the given files and report the ones that
fail. Blank lines and lines starting with '*' are skipped. With --watch,
a single file is re-checked on every write until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sc.runCheck(cmd, args)
		},
	}

	cmd.Flags().Bool("watch", false, "Re-check the file on every write until interrupted.")
	cmd.Flags().Duration("debounce", 250*time.Millisecond, "Quiet interval before a watched file is re-checked.")

	root.AddCommand(cmd)
}

func (sc *SpicenumCommand) runCheck(cmd *cobra.Command, args []string) error {
	c := checker.New(afero.NewOsFs(), sc.logger.GetLogger())
	out := cmd.OutOrStdout()
	format := sc.format.Get()

	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}

	if watch {
		if len(args) != 1 {
			return fmt.Errorf("--watch takes exactly one file, got %d", len(args))
		}
		debounce, err := cmd.Flags().GetDuration("debounce")
		if err != nil {
			return err
		}

		results, err := c.Watch(cmd.Context(), args[0], debounce)
		if err != nil {
			return err
		}
		for res := range results {
			if err := writeResult(out, format, res); err != nil {
				return err
			}
		}
		return nil
	}

	invalid := 0
	for _, path := range args {
		res, err := c.CheckFile(path)
		if err != nil {
			return err
		}
		invalid += res.Invalid
		if err := writeResult(out, format, res); err != nil {
			return err
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid literals", invalid)
	}
	return nil
}

func writeResult(out io.Writer, format string, res *checker.Result) error {
	return writeOutput(out, format, res, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "%s: %d literals, %d invalid\n", res.Path, res.Checked, res.Invalid); err != nil {
			return err
		}
		for _, f := range res.Findings {
			if _, err := fmt.Fprintf(w, "  line %d: %s: %s\n", f.Line, f.Literal, f.Error); err != nil {
				return err
			}
		}
		return nil
	})
}
