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

package version

import (
	"regexp"
	"strings"

	"github.com/verkit/verkit/pkg/errors"
)

// Per-field sub-patterns composed into the full extraction pattern.
// Each is anchored and testable on its own through the valid* helpers.
const (
	// branchSub matches a free-text qualifier: one or more words joined by
	// single spaces. The branch is always followed by a space in the full
	// grammar.
	branchSub = `\S+(?: \S+)*`

	// labelSub matches the release-type label, case-insensitive. Longest
	// alternative first so "version" is not cut short at "v".
	labelSub = `(?i:version|ver|v)`

	// numberSub matches the numeric components (major, minor, patch, hotfix).
	numberSub = `\d+`

	// segmentSub matches a dot-separated run of alphanumeric-or-hyphen
	// tokens. Prerelease and build segments are captured with this loose
	// shape; per-token rules are enforced during structural validation so a
	// single bad token is reported as a field violation, not a non-match.
	segmentSub = `[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*`

	// prereleaseTokenSub is the per-token rule for prerelease segments:
	// no token may start with a literal zero.
	prereleaseTokenSub = `[1-9a-zA-Z-][0-9a-zA-Z-]*`

	// buildTokenSub is the per-token rule for build metadata; leading
	// zeros are allowed.
	buildTokenSub = `[0-9a-zA-Z-]+`
)

// versionPattern is the full anchored grammar:
//
//	[branch ]?[label ]?MAJOR.MINOR.PATCH[.HOTFIX]?[-PRERELEASE]?[+BUILD]?
//
// Partial matches are never accepted.
var versionPattern = regexp.MustCompile(
	`^` +
		`(?:(?P<branch>` + branchSub + `) )?` +
		`(?:(?P<label>` + labelSub + `) ?)?` +
		`(?P<major>` + numberSub + `)\.(?P<minor>` + numberSub + `)\.(?P<patch>` + numberSub + `)` +
		`(?:\.(?P<hotfix>` + numberSub + `))?` +
		`(?:-(?P<prerelease>` + segmentSub + `))?` +
		`(?:\+(?P<build>` + segmentSub + `))?` +
		`$`)

var (
	labelRE           = regexp.MustCompile(`^` + labelSub + `$`)
	branchRE          = regexp.MustCompile(`^` + branchSub + `$`)
	prereleaseTokenRE = regexp.MustCompile(`^` + prereleaseTokenSub + `$`)
	buildTokenRE      = regexp.MustCompile(`^` + buildTokenSub + `$`)
)

// RawFields holds the untyped capture results of a grammar match. Absent
// optional fields are empty strings; numeric fields are digit strings.
type RawFields struct {
	Branch     string
	Label      string
	Major      string
	Minor      string
	Patch      string
	Hotfix     string
	Prerelease string
	Build      string
}

// Extract tokenizes input against the full version grammar. Input that does
// not match the whole pattern yields a GrammarMismatch error and no partial
// result.
func Extract(input string) (RawFields, error) {
	m := versionPattern.FindStringSubmatch(input)
	if m == nil {
		return RawFields{}, errors.NewWithContext(
			errors.ErrCodeGrammarMismatch,
			"input does not match the version grammar",
			map[string]any{"input": input})
	}

	raw := RawFields{
		Branch:     m[versionPattern.SubexpIndex("branch")],
		Label:      m[versionPattern.SubexpIndex("label")],
		Major:      m[versionPattern.SubexpIndex("major")],
		Minor:      m[versionPattern.SubexpIndex("minor")],
		Patch:      m[versionPattern.SubexpIndex("patch")],
		Hotfix:     m[versionPattern.SubexpIndex("hotfix")],
		Prerelease: m[versionPattern.SubexpIndex("prerelease")],
		Build:      m[versionPattern.SubexpIndex("build")],
	}

	// The branch capture is greedy, so a trailing label token ends up inside
	// it when the label was written with a separating space ("v 1.2.3",
	// "release version 1.2.3"). Re-classify it: the grammar reserves label
	// tokens for the label position.
	if raw.Label == "" && raw.Branch != "" {
		if idx := strings.LastIndexByte(raw.Branch, ' '); idx >= 0 {
			if last := raw.Branch[idx+1:]; labelRE.MatchString(last) {
				raw.Label = last
				raw.Branch = raw.Branch[:idx]
			}
		} else if labelRE.MatchString(raw.Branch) {
			raw.Label = raw.Branch
			raw.Branch = ""
		}
	}

	return raw, nil
}

// validLabel reports whether s is a recognized release-type label. The empty
// string is accepted and treated as "label absent".
func validLabel(s string) bool {
	return s == "" || labelRE.MatchString(s)
}

// validBranch reports whether s has the branch shape: one or more non-empty
// words joined by single spaces.
func validBranch(s string) bool {
	return branchRE.MatchString(s)
}

// branchEndsInLabel reports whether the final word of s is a label token.
// Such a branch only renders round-trip safe when an explicit label follows
// it; without one, re-parsing would re-classify the word as the label.
func branchEndsInLabel(s string) bool {
	if s == "" {
		return false
	}
	last := s
	if idx := strings.LastIndexByte(s, ' '); idx >= 0 {
		last = s[idx+1:]
	}
	return labelRE.MatchString(last)
}

// validPrerelease reports whether every dot-separated token of s satisfies
// the prerelease token rule. A single violating token invalidates the whole
// segment.
func validPrerelease(s string) bool {
	for _, tok := range strings.Split(s, ".") {
		if !prereleaseTokenRE.MatchString(tok) {
			return false
		}
	}
	return true
}

// validBuild reports whether every dot-separated token of s satisfies the
// build token rule.
func validBuild(s string) bool {
	for _, tok := range strings.Split(s, ".") {
		if !buildTokenRE.MatchString(tok) {
			return false
		}
	}
	return true
}
