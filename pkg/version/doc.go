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

// Package version parses, validates, compares, and renders extended
// semantic versions.
//
// # Overview
//
// The grammar extends SemVer 2.0.0 with three optional tiers:
//
//	[branch ][label]major.minor.patch[.hotfix][-prerelease][+build]
//
// Branch is a free-form qualifier before the version ("release 1.2.3"),
// label is a version marker attached to the numeric triple (v, ver, or
// version, case-insensitive: "v1.2.3"), and hotfix is a fourth numeric
// tier below patch ("1.2.3.4"). Prerelease and build follow SemVer.
//
// Control flow: raw string -> grammar match -> raw fields -> structural
// validation -> immutable Version. A Version can only hold fields that
// passed validation; every derived value is re-validated on the way out.
//
// # Core Types
//
// Version: the immutable value type
//
//	v, err := version.Parse("release v1.2.3.4-rc.1+build.5")
//	v.Branch()      // "release"
//	v.Major()       // int64(1)
//	v.Hotfix()      // (4, true)
//	v.String()      // "release v1.2.3.4-rc.1+build.5"
//
// Fields: the structured input to New, validated with per-field tags.
//
// Report: the outcome of a compliance check, with per-field messages at
// error, warning, or info severity and a severity summary.
//
// Snapshot: the serializable form of a Version, including the captured
// policy, for round-tripping through JSON or YAML.
//
// # Mutations
//
// Change operations return a new validated value and never mutate the
// receiver:
//
//	next, err := v.ChangePrerelease("rc.2")
//
// Increment operations implement the usual reset laws: bumping a tier
// resets the tiers below it and clears hotfix, prerelease, and build
// (IncrementHotfix keeps the triple and bumps only the hotfix tier).
//
// # Compliance
//
// CheckStandard evaluates the fields against canonical SemVer: in strict
// mode a present label or hotfix is an error and a present branch is
// reported at info severity only. CheckPolicy evaluates the policy
// captured at construction (see pkg/policy). Non-compliance is a result,
// not an error; a report is compliant iff it carries no error message.
//
// # Precedence
//
// Compare orders by branch (collated, not byte order), then major, minor,
// patch, and hotfix, with an absent hotfix equal to 0. Prerelease and
// build never affect precedence, unlike strict SemVer.
//
// # Observability
//
// The package exports Prometheus metrics:
//   - verkit_parse_total{outcome}: parse attempts by outcome
//   - verkit_compliance_checks_total{check,compliant}: compliance checks
package version
