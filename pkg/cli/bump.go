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

	"github.com/urfave/cli/v3"

	"github.com/verkit/verkit/pkg/version"
)

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Increment a version tier",
		ArgsUsage:             "TIER VERSION",
		Description: `Increment the given tier of a version and print the result.

TIER is one of: major, minor, patch, hotfix. Bumping a tier resets the
numeric tiers below it and clears the hotfix, prerelease, and build
segments; bumping hotfix keeps the triple and clears only prerelease and
build. Branch and label are preserved.

# Examples

  verkit bump patch v1.2.3             # v1.2.4
  verkit bump major "release 1.2.3.4"  # release 2.0.0
  verkit bump hotfix 1.2.3             # 1.2.3.1`,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogging(cmd)

			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected a tier and a version argument (quote versions containing spaces)")
			}

			tier := cmd.Args().Get(0)
			v, err := version.Parse(cmd.Args().Get(1))
			if err != nil {
				return err
			}

			var next *version.Version
			switch tier {
			case "major":
				next = v.IncrementMajor()
			case "minor":
				next = v.IncrementMinor()
			case "patch":
				next = v.IncrementPatch()
			case "hotfix":
				next = v.IncrementHotfix()
			default:
				return fmt.Errorf("unknown tier %q (expected major, minor, patch, or hotfix)", tier)
			}

			fmt.Fprintln(cmd.Writer, next.String())
			return nil
		},
	}
}
