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

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions by precedence",
		ArgsUsage:             "VERSION VERSION",
		Description: `Compare two versions and print -1, 0, or 1.

Precedence orders by branch, then major, minor, patch, and hotfix, with an
absent hotfix equal to 0. Prerelease and build metadata never affect the
result.

# Examples

  verkit compare 1.2.3 1.2.4
  verkit compare "release 1.0.0" "main 1.0.0"
  verkit compare 1.2.3-rc.1 1.2.3   # prints 0`,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogging(cmd)

			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected exactly two version arguments (quote versions containing spaces)")
			}

			a, err := version.Parse(cmd.Args().Get(0))
			if err != nil {
				return fmt.Errorf("first version: %w", err)
			}
			b, err := version.Parse(cmd.Args().Get(1))
			if err != nil {
				return fmt.Errorf("second version: %w", err)
			}

			fmt.Fprintln(cmd.Writer, version.Compare(a, b))
			return nil
		},
	}
}
