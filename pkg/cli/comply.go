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

	"github.com/urfave/cli/v3"

	"github.com/verkit/verkit/pkg/version"
)

func complyCmd() *cli.Command {
	return &cli.Command{
		Name:                  "comply",
		EnableShellCompletion: true,
		Usage:                 "Check versions against a policy file",
		ArgsUsage:             "[VERSION...]",
		Description: `Check one or more versions against a custom policy and print the reports.

A policy governs five fields: branch, label, hotfix, prerelease, and
build. Each setting is required, optional, forbidden, or a list of allowed
values (string literals, numbers for hotfix, or {pattern: ...} entries; an
empty-string literal matches "field absent").

# Policy file

  branch: required
  label: forbidden
  hotfix:
    - 1
    - 2
  prerelease:
    - alpha
    - pattern: ^beta\..+$

# Examples

  verkit comply --policy policy.yaml "main 1.2.3"
  verkit comply --policy policy.yaml --input versions.txt --fail-on-error`,
		Flags: []cli.Flag{
			policyFlag,
			inputFlag,
			failOnErrorFlag,
			outputFlag,
			formatFlag,
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogging(cmd)

			if cmd.String(policyFlag.Name) == "" {
				return fmt.Errorf("--policy is required")
			}
			p, err := loadPolicy(cmd)
			if err != nil {
				return err
			}

			inputs, err := versionArgs(cmd)
			if err != nil {
				return err
			}

			reports := make([]*version.Report, len(inputs))
			for i, input := range inputs {
				v, err := version.Parse(input, version.WithPolicy(p))
				if err != nil {
					return fmt.Errorf("version %q: %w", input, err)
				}
				reports[i] = v.CheckPolicy()
			}

			if err := writeReports(ctx, cmd, reports); err != nil {
				return err
			}

			failed := countNonCompliant(reports)
			slog.Info("policy check completed",
				"versions", len(reports),
				"nonCompliant", failed)

			if cmd.Bool(failOnErrorFlag.Name) && failed > 0 {
				return fmt.Errorf("%d of %d version(s) violate the policy", failed, len(reports))
			}
			return nil
		},
	}
}
