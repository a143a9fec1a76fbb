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

	"github.com/verkit/verkit/pkg/source"
	"github.com/verkit/verkit/pkg/version"
)

var imageFlag = &cli.StringFlag{
	Name:  "image",
	Usage: "Container image reference whose tag carries the version",
}

var filenameFlag = &cli.StringFlag{
	Name:  "filename",
	Usage: "Artifact file name with an embedded version",
}

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse a version string into its structured form",
		ArgsUsage:             "[VERSION]",
		Description: `Parse a version string and print the structured snapshot.

The snapshot lists every field plus the policy in force, and can be fed
back to tools that accept snapshots. Instead of a version argument, the
version can be pulled from a container image tag (--image) or from an
artifact file name (--filename).

# Examples

Parse to YAML on stdout:
  verkit parse "release v1.2.3.4-rc.1+007"

Parse to a JSON file:
  verkit parse 1.2.3 --format json --output version.json

Attach a policy so the snapshot carries it:
  verkit parse 1.2.3 --policy policy.yaml

Pull the version from an image tag or a file name:
  verkit parse --image ghcr.io/acme/app:v1.2.3
  verkit parse --filename app_v1.2.3-rc.1.tar.gz`,
		Flags: []cli.Flag{
			imageFlag,
			filenameFlag,
			policyFlag,
			outputFlag,
			formatFlag,
			logLevelFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogging(cmd)

			input := cmd.Args().First()
			image := cmd.String(imageFlag.Name)
			filename := cmd.String(filenameFlag.Name)

			supplied := 0
			for _, s := range []string{input, image, filename} {
				if s != "" {
					supplied++
				}
			}
			if supplied == 0 {
				return fmt.Errorf("no version supplied (pass VERSION, --image, or --filename)")
			}
			if supplied > 1 {
				return fmt.Errorf("VERSION, --image, and --filename are mutually exclusive")
			}
			if cmd.Args().Len() > 1 {
				return fmt.Errorf("expected exactly one version argument (quote versions containing spaces)")
			}

			p, err := loadPolicy(cmd)
			if err != nil {
				return err
			}

			var v *version.Version
			switch {
			case image != "":
				v, err = source.FromImageRef(image, version.WithPolicy(p))
			case filename != "":
				v, err = source.FromFilename(filename, version.WithPolicy(p))
			default:
				v, err = version.Parse(input, version.WithPolicy(p))
			}
			if err != nil {
				return err
			}

			return writeResult(ctx, cmd, v.Snapshot())
		},
	}
}
