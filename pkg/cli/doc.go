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

// Package cli implements the command-line interface for the verkit tool.
//
// # Overview
//
// The verkit CLI exposes the version library on the command line: parsing
// version strings into structured snapshots, comparing precedence, bumping
// version tiers, and running standard and policy compliance checks. It is
// designed for release tooling and CI pipelines.
//
// # Commands
//
// parse - Parse a version string into its structured form:
//
//	verkit parse "release v1.2.3.4-rc.1+007" [--output FILE] [--format yaml|json|table]
//
// compare - Compare two versions by precedence:
//
//	verkit compare 1.2.3 1.2.4
//
// Prints -1, 0, or 1 and exits non-zero on malformed input.
//
// bump - Increment a version tier:
//
//	verkit bump patch v1.2.3
//	verkit bump major "release 1.2.3.4-rc.1"
//
// Prints the incremented version; tiers below the bumped one reset.
//
// check - Check versions against the standard grammar:
//
//	verkit check --strict v1.2.3
//	verkit check --input versions.txt --fail-on-error
//
// With --input, checks one version per line concurrently and reports all
// of them. --fail-on-error exits non-zero when any version is
// non-compliant, for CI gates.
//
// comply - Check versions against a policy file:
//
//	verkit comply --policy policy.yaml "main 1.2.3"
//
// # Global Flags
//
//	--output, -o     Output file path (default: stdout)
//	--format, -f     Output format: yaml, json, table (default: yaml)
//	--log-level      Log level: debug, info, warn, error (default: info)
package cli
