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
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

const (
	name           = "verkit"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	buildVersion = versionDefault
	commit       = "unknown"
	date         = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "extended semantic version toolkit",
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", buildVersion, commit, date),
		EnableShellCompletion: true,
		Description: `Parse, compare, bump, and check extended semantic versions.

The grammar accepts an optional branch qualifier, an optional v/ver/version
label, a major.minor.patch triple, an optional fourth hotfix tier, and the
usual SemVer prerelease and build suffixes:

  1.2.3
  v1.2.3
  release 2.0.0.5-beta.1+build.007`,
		Commands: []*cli.Command{
			parseCmd(),
			compareCmd(),
			bumpCmd(),
			checkCmd(),
			complyCmd(),
		},
	}
}

// Execute runs the CLI. This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
