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
	"fmt"
	"strconv"
	"strings"

	"github.com/verkit/verkit/pkg/errors"
	"github.com/verkit/verkit/pkg/policy"
)

// Version is an immutable version value: validated fields plus the policy
// captured at construction time. Field-changing operations return a new
// Version; an existing value is never mutated.
type Version struct {
	fields Fields
	policy policy.Policy
}

// Option is a functional option for version construction.
type Option func(*buildConfig)

type buildConfig struct {
	policy    policy.Policy
	hasPolicy bool
}

// WithPolicy attaches an explicit policy to the constructed version instead
// of the process-wide default.
func WithPolicy(p policy.Policy) Option {
	return func(c *buildConfig) {
		c.policy = p
		c.hasPolicy = true
	}
}

// Parse tokenizes and validates input, producing an immutable Version.
// Input that does not match the grammar yields a GRAMMAR_MISMATCH error;
// input that matches but carries structurally invalid fields yields a
// FIELD_VALIDATION error listing every violated field.
func Parse(input string, opts ...Option) (*Version, error) {
	raw, err := Extract(input)
	if err != nil {
		observeParse(parseOutcomeGrammarMismatch)
		return nil, err
	}

	f, violations := fieldsFromRaw(raw)

	// Run the structural rules even when numeric conversion already failed,
	// so one error carries every violated field of the input.
	structural, err := f.violations()
	if err != nil {
		observeParse(parseOutcomeFieldValidation)
		return nil, err
	}
	for name, reason := range structural {
		violations[name] = reason
	}
	if len(violations) > 0 {
		observeParse(parseOutcomeFieldValidation)
		return nil, errors.NewWithContext(
			errors.ErrCodeFieldValidation, "invalid version fields", violations)
	}

	v, err := New(f, opts...)
	if err != nil {
		observeParse(parseOutcomeFieldValidation)
		return nil, err
	}
	observeParse(parseOutcomeOK)
	return v, nil
}

// MustParse parses input and panics if parsing fails. Only use this for
// hardcoded strings or in tests; for runtime data always use Parse and
// handle errors explicitly.
func MustParse(input string, opts ...Option) *Version {
	v, err := Parse(input, opts...)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// New constructs a Version from structured fields after validating them.
// The policy is captured now: the explicit one when WithPolicy is given,
// otherwise the current process-wide default. Later changes to the default
// never affect the returned value.
func New(f Fields, opts ...Option) (*Version, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasPolicy {
		cfg.policy = policy.Default()
	}

	return &Version{fields: f.clone(), policy: cfg.policy}, nil
}

// Must panics when err is non-nil and returns v otherwise. Handy for
// chaining field-change operations on inputs known to be valid:
//
//	next := version.Must(v.ChangePrerelease("rc.1"))
func Must(v *Version, err error) *Version {
	if err != nil {
		panic(fmt.Sprintf("version.Must: %v", err))
	}
	return v
}

// Branch returns the branch qualifier, or "" when absent.
func (v *Version) Branch() string { return v.fields.Branch }

// Label returns the release-type label, or "" when absent.
func (v *Version) Label() string { return v.fields.Label }

// Major returns the major component.
func (v *Version) Major() int64 { return v.fields.Major }

// Minor returns the minor component.
func (v *Version) Minor() int64 { return v.fields.Minor }

// Patch returns the patch component.
func (v *Version) Patch() int64 { return v.fields.Patch }

// Hotfix returns the hotfix tier and whether it is present.
func (v *Version) Hotfix() (int64, bool) {
	if v.fields.Hotfix == nil {
		return 0, false
	}
	return *v.fields.Hotfix, true
}

// Prerelease returns the prerelease segment, or "" when absent.
func (v *Version) Prerelease() string { return v.fields.Prerelease }

// Build returns the build-metadata segment, or "" when absent.
func (v *Version) Build() string { return v.fields.Build }

// Policy returns the policy captured at construction.
func (v *Version) Policy() policy.Policy { return v.policy }

// Fields returns a copy of the validated fields.
func (v *Version) Fields() Fields { return v.fields.clone() }

// Equal reports whether two versions carry identical fields and equivalent
// policies.
func (v *Version) Equal(o *Version) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.fields.equal(o.fields) && v.policy.Equal(o.policy)
}

// String renders the canonical form:
//
//	[branch ][label]major.minor.patch[.hotfix][-prerelease][+build]
//
// The branch is followed by a single space; the label is attached directly
// to the numeric triple. Parsing the rendered string reproduces the same
// fields.
func (v *Version) String() string {
	var b strings.Builder
	if v.fields.Branch != "" {
		b.WriteString(v.fields.Branch)
		b.WriteByte(' ')
	}
	if v.fields.Label != "" {
		b.WriteString(v.fields.Label)
	}
	b.WriteString(strconv.FormatInt(v.fields.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatInt(v.fields.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatInt(v.fields.Patch, 10))
	if v.fields.Hotfix != nil {
		b.WriteByte('.')
		b.WriteString(strconv.FormatInt(*v.fields.Hotfix, 10))
	}
	if v.fields.Prerelease != "" {
		b.WriteByte('-')
		b.WriteString(v.fields.Prerelease)
	}
	if v.fields.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.fields.Build)
	}
	return b.String()
}

// derive validates changed fields and builds the next value with the same
// captured policy. Every change operation funnels through here so no
// produced instance can leave the grammar.
func (v *Version) derive(f Fields) (*Version, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Version{fields: f.clone(), policy: v.policy}, nil
}

// ChangeBranch returns a copy with the branch replaced; "" removes it.
func (v *Version) ChangeBranch(branch string) (*Version, error) {
	f := v.fields.clone()
	f.Branch = branch
	return v.derive(f)
}

// ChangeLabel returns a copy with the label replaced; "" removes it.
func (v *Version) ChangeLabel(label string) (*Version, error) {
	f := v.fields.clone()
	f.Label = label
	return v.derive(f)
}

// ChangeMajor returns a copy with the major component replaced.
func (v *Version) ChangeMajor(major int64) (*Version, error) {
	f := v.fields.clone()
	f.Major = major
	return v.derive(f)
}

// ChangeMinor returns a copy with the minor component replaced.
func (v *Version) ChangeMinor(minor int64) (*Version, error) {
	f := v.fields.clone()
	f.Minor = minor
	return v.derive(f)
}

// ChangePatch returns a copy with the patch component replaced.
func (v *Version) ChangePatch(patch int64) (*Version, error) {
	f := v.fields.clone()
	f.Patch = patch
	return v.derive(f)
}

// ChangeHotfix returns a copy with the hotfix tier set to hotfix.
func (v *Version) ChangeHotfix(hotfix int64) (*Version, error) {
	f := v.fields.clone()
	f.Hotfix = &hotfix
	return v.derive(f)
}

// ClearHotfix returns a copy without a hotfix tier.
func (v *Version) ClearHotfix() (*Version, error) {
	f := v.fields.clone()
	f.Hotfix = nil
	return v.derive(f)
}

// ChangePrerelease returns a copy with the prerelease segment replaced;
// "" removes it.
func (v *Version) ChangePrerelease(prerelease string) (*Version, error) {
	f := v.fields.clone()
	f.Prerelease = prerelease
	return v.derive(f)
}

// ChangeBuild returns a copy with the build segment replaced; "" removes it.
func (v *Version) ChangeBuild(build string) (*Version, error) {
	f := v.fields.clone()
	f.Build = build
	return v.derive(f)
}

// IncrementMajor returns a copy with major+1, minor and patch reset to 0,
// and hotfix, prerelease, and build cleared.
func (v *Version) IncrementMajor() *Version {
	f := v.fields.clone()
	f.Major++
	f.Minor = 0
	f.Patch = 0
	clearQualifiers(&f)
	return v.mustDerive(f)
}

// IncrementMinor returns a copy with minor+1, patch reset to 0, and hotfix,
// prerelease, and build cleared.
func (v *Version) IncrementMinor() *Version {
	f := v.fields.clone()
	f.Minor++
	f.Patch = 0
	clearQualifiers(&f)
	return v.mustDerive(f)
}

// IncrementPatch returns a copy with patch+1 and hotfix, prerelease, and
// build cleared.
func (v *Version) IncrementPatch() *Version {
	f := v.fields.clone()
	f.Patch++
	clearQualifiers(&f)
	return v.mustDerive(f)
}

// IncrementHotfix returns a copy with the hotfix tier set to (current or
// 0)+1 and prerelease and build cleared. Major, minor, and patch are
// untouched: the hotfix is the least-significant numeric tier.
func (v *Version) IncrementHotfix() *Version {
	f := v.fields.clone()
	var next int64 = 1
	if f.Hotfix != nil {
		next = *f.Hotfix + 1
	}
	f.Hotfix = &next
	f.Prerelease = ""
	f.Build = ""
	return v.mustDerive(f)
}

func clearQualifiers(f *Fields) {
	f.Hotfix = nil
	f.Prerelease = ""
	f.Build = ""
}

// mustDerive backs the increment operations, which cannot produce invalid
// fields short of overflowing the exact integer range. Overflow is a
// programmer error and panics.
func (v *Version) mustDerive(f Fields) *Version {
	next, err := v.derive(f)
	if err != nil {
		panic(fmt.Sprintf("version increment left the grammar: %v", err))
	}
	return next
}
