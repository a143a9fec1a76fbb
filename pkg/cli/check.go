// Copyright (c) 2026, the verkit authors.  All rights reserved.
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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/verkit/verkit/pkg/version"
)

var inputFlag = &cli.StringFlag{
	Name:    "input",
	Aliases: []string{"i"},
	Usage:   "Path to a file with one version per line (blank lines and #-comments ignored)",
}

var failOnErrorFlag = &cli.BoolFlag{
	Name:  "fail-on-error",
	Usage: "Exit with non-zero status if any version is non-compliant",
}

// checkVersions runs check concurrently over inputs, preserving input
// order in the returned reports.
func checkVersions(ctx context.Context, inputs []string, check func(*version.Version) *version.Report) ([]*version.Report, error) {
	reports := make([]*version.Report, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := version.Parse(input)
			if err != nil {
				return fmt.Errorf("version %q: %w", input, err)
			}
			reports[i] = check(v)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func writeReports(ctx context.Context, cmd *cli.Command, reports []*version.Report) error {
	// A single report serializes bare, a batch as a list.
	if len(reports) == 1 {
		return writeResult(ctx, cmd, reports[0])
	}
	return writeResult(ctx, cmd, reports)
}

func countNonCompliant(reports []*version.Report) int {
	n := 0
	for _, r := range reports {
		if !r.Compliant {
			n++
		}
	}
	return n
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Check versions against the standard grammar",
		ArgsUsage:             "[VERSION...]",
		Description: `Check one or more versions for standard compliance and print the reports.

In strict mode the branch, label, and hotfix extensions are flagged: a
present label or hotfix is an error, a present branch is reported at info
severity only.

# Examples

Check a single version:
  verkit check v1.2.3

Strict check, fail for CI when non-compliant:
  verkit check --strict --fail-on-error v1.2.3

Bulk check a file of versions:
  verkit check --strict --input versions.txt --format json --output reports.json`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Treat the branch, label, and hotfix extensions as deviations",
			},
			inputFlag,
			failOnErrorFlag,
			outputFlag,
			formatFlag,
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogging(cmd)

			inputs, err := versionArgs(cmd)
			if err != nil {
				return err
			}

			strict := cmd.Bool("strict")
			reports, err := checkVersions(ctx, inputs, func(v *version.Version) *version.Report {
				return v.CheckStandard(strict)
			})
			if err != nil {
				return err
			}

			if err := writeReports(ctx, cmd, reports); err != nil {
				return err
			}

			failed := countNonCompliant(reports)
			slog.Info("check completed",
				"versions", len(reports),
				"nonCompliant", failed,
				"strict", strict)

			if cmd.Bool(failOnErrorFlag.Name) && failed > 0 {
				return fmt.Errorf("%d of %d version(s) non-compliant", failed, len(reports))
			}
			return nil
		},
	}
}
