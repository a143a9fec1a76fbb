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
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/verkit/verkit/pkg/logging"
	"github.com/verkit/verkit/pkg/policy"
	"github.com/verkit/verkit/pkg/serializer"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Value:   string(serializer.FormatYAML),
	Usage:   fmt.Sprintf("Output format: %s", strings.Join(serializer.SupportedFormats(), ", ")),
}

var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Value:   "info",
	Sources: cli.EnvVars(logging.LevelEnvVar),
	Usage:   "Log level (debug, info, warn, error)",
}

var policyFlag = &cli.StringFlag{
	Name:    "policy",
	Aliases: []string{"p"},
	Usage:   "Path to a JSON or YAML policy file",
}

// initLogging configures the default structured logger from the command's
// log-level flag. Called at the top of every command action.
func initLogging(cmd *cli.Command) {
	logging.SetDefaultStructuredLoggerWithLevel(name, buildVersion, cmd.String(logLevelFlag.Name))
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String(formatFlag.Name))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %s)",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// writeResult serializes v to the command's output destination in the
// configured format.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	w := serializer.NewFileWriterOrStdout(format, cmd.String(outputFlag.Name))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close writer", "error", err)
		}
	}()

	if err := w.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	return nil
}

// loadPolicy reads the policy file named by the --policy flag, or returns
// the process default policy when the flag is unset.
func loadPolicy(cmd *cli.Command) (policy.Policy, error) {
	path := cmd.String(policyFlag.Name)
	if path == "" {
		return policy.Default(), nil
	}

	p, err := serializer.FromFile[policy.Policy](path)
	if err != nil {
		return policy.Policy{}, fmt.Errorf("failed to load policy from %q: %w", path, err)
	}

	slog.Debug("loaded policy", "path", path)
	return *p, nil
}

// readVersionList reads one version string per line, skipping blank lines
// and #-comments.
func readVersionList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return lines, nil
}

// versionArgs returns the command's positional arguments, or the contents
// of the --input file when it is set. Exactly one of the two sources must
// be supplied.
func versionArgs(cmd *cli.Command) ([]string, error) {
	args := cmd.Args().Slice()
	input := cmd.String("input")

	switch {
	case input != "" && len(args) > 0:
		return nil, fmt.Errorf("supply version arguments or --input, not both")
	case input != "":
		lines, err := readVersionList(input)
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			return nil, fmt.Errorf("input file %q contains no versions", input)
		}
		return lines, nil
	case len(args) > 0:
		return args, nil
	default:
		return nil, fmt.Errorf("no version supplied")
	}
}
