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

// Package policy defines per-field rules that govern custom version
// compliance.
//
// # Overview
//
// A Policy carries one setting for each of the five governed version fields:
// Branch, Label, Hotfix, Prerelease, and Build. Each setting is one of:
//
//   - optional (the zero value): the field always passes
//   - required: the field must be present and, for string fields, non-blank
//   - forbidden: the field must be absent
//   - allow-list: the field must match at least one rule in the list
//
// Allow-list rules are tagged variants. String-governed fields use StringRule
// (a literal or a compiled pattern); the numeric Hotfix field uses HotfixRule
// (a number or a pattern matched against the decimal form). The zero value of
// either rule type matches an absent field, mirroring the empty-string
// literal convention.
//
// # Serialization
//
// Settings round-trip through YAML and JSON. A mode renders as a scalar
// ("required", "optional", "forbidden"); an allow-list renders as a sequence
// whose entries are literals (scalars) or {pattern: "..."} mappings:
//
//	prerelease:
//	  - alpha
//	  - pattern: ^beta\..+$
//	hotfix: forbidden
//	branch: required
//
// # Process-wide defaults
//
// SetDefault installs the policy captured by subsequently constructed
// versions that do not supply their own. Defaults are read without
// synchronization: establish them before any concurrent version construction
// begins. Already-constructed values are never affected retroactively.
package policy
