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
	"strings"

	"github.com/verkit/verkit/pkg/header"
	"github.com/verkit/verkit/pkg/policy"
)

// APIVersion is the schema version stamped on serialized verkit resources.
const APIVersion = "verkit.dev/v1alpha1"

// Severity classifies a compliance message.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Field names a version component in compliance messages.
type Field string

const (
	FieldBranch     Field = "branch"
	FieldLabel      Field = "label"
	FieldMajor      Field = "major"
	FieldMinor      Field = "minor"
	FieldPatch      Field = "patch"
	FieldHotfix     Field = "hotfix"
	FieldPrerelease Field = "prerelease"
	FieldBuild      Field = "build"
)

// Check names identify which compliance evaluation produced a report.
const (
	CheckStandardName = "standard"
	CheckPolicyName   = "policy"
)

// Message is a single per-field compliance finding.
type Message struct {
	Field    Field    `json:"field" yaml:"field"`
	Severity Severity `json:"severity" yaml:"severity"`
	Text     string   `json:"text" yaml:"text"`
}

// Summary tallies report messages by severity.
type Summary struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
	Infos    int `json:"infos" yaml:"infos"`
	Total    int `json:"total" yaml:"total"`
}

// Report is the outcome of a compliance check. Non-compliance is a normal
// result carried as data, never an error: Compliant is false exactly when
// at least one message has error severity.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Subject is the rendered version the check ran against.
	Subject string `json:"subject" yaml:"subject"`

	// Check names the evaluation that produced the report.
	Check string `json:"check" yaml:"check"`

	// Strict records the strictness flag for standard checks.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`

	Compliant bool      `json:"compliant" yaml:"compliant"`
	Messages  []Message `json:"messages,omitempty" yaml:"messages,omitempty"`
	Summary   Summary   `json:"summary" yaml:"summary"`
}

func newReport(v *Version, check string, strict bool, msgs []Message) *Report {
	r := &Report{
		Subject:  v.String(),
		Check:    check,
		Strict:   strict,
		Messages: msgs,
	}
	r.Init(header.KindComplianceReport, APIVersion, "")

	for _, m := range msgs {
		switch m.Severity {
		case SeverityError:
			r.Summary.Errors++
		case SeverityWarning:
			r.Summary.Warnings++
		default:
			r.Summary.Infos++
		}
	}
	r.Summary.Total = len(msgs)
	r.Compliant = r.Summary.Errors == 0

	observeComplianceCheck(check, r.Compliant)
	return r
}

// mustCompliable guards the compliance entry points. Running a check on a
// nil Version is a programming error, not a reportable finding, and aborts
// the caller.
func (v *Version) mustCompliable(check string) {
	if v == nil {
		panic(fmt.Sprintf("compliance check %q invoked on a nil version", check))
	}
}

// CheckStandard evaluates each field against its canonical SemVer rule and
// returns the full report. In non-strict mode the branch, label, and hotfix
// extensions pass as long as they are well-formed. In strict mode a present
// label or hotfix is an error, while a present branch is only reported at
// info severity.
func (v *Version) CheckStandard(strict bool) *Report {
	v.mustCompliable(CheckStandardName)

	var msgs []Message
	add := func(f Field, s Severity, text string) {
		msgs = append(msgs, Message{Field: f, Severity: s, Text: text})
	}

	if v.fields.Branch != "" {
		if !validBranch(v.fields.Branch) {
			add(FieldBranch, SeverityError, "branch is not well-formed")
		} else if strict {
			add(FieldBranch, SeverityInfo, "branch is a nonstandard extension")
		}
	}
	if v.fields.Label != "" {
		if !validLabel(v.fields.Label) {
			add(FieldLabel, SeverityError, "label is not a recognized version marker")
		} else if strict {
			add(FieldLabel, SeverityError, "label is not part of the standard grammar")
		}
	}

	for _, n := range []struct {
		field Field
		value int64
	}{
		{FieldMajor, v.fields.Major},
		{FieldMinor, v.fields.Minor},
		{FieldPatch, v.fields.Patch},
	} {
		if n.value < 0 || n.value > MaxNumeric {
			add(n.field, SeverityError, fmt.Sprintf("%s is outside the exact integer range", n.field))
		}
	}

	if v.fields.Hotfix != nil {
		if *v.fields.Hotfix < 0 || *v.fields.Hotfix > MaxNumeric {
			add(FieldHotfix, SeverityError, "hotfix is outside the exact integer range")
		} else if strict {
			add(FieldHotfix, SeverityError, "hotfix is not part of the standard grammar")
		}
	}

	if v.fields.Prerelease != "" && !validPrerelease(v.fields.Prerelease) {
		add(FieldPrerelease, SeverityError, "prerelease segment is not well-formed")
	}
	if v.fields.Build != "" && !validBuild(v.fields.Build) {
		add(FieldBuild, SeverityError, "build segment is not well-formed")
	}

	return newReport(v, CheckStandardName, strict, msgs)
}

// IsStandardCompliant reports whether the version passes the standard check.
func (v *Version) IsStandardCompliant(strict bool) bool {
	return v.CheckStandard(strict).Compliant
}

// CheckPolicy evaluates the policy captured at construction against the
// five governed fields and returns the full report. Each failing field
// contributes exactly one error message.
func (v *Version) CheckPolicy() *Report {
	v.mustCompliable(CheckPolicyName)

	var msgs []Message
	fail := func(f Field, setting string) {
		msgs = append(msgs, Message{
			Field:    f,
			Severity: SeverityError,
			Text:     fmt.Sprintf("%s does not satisfy the %s policy", f, setting),
		})
	}

	p := v.policy
	if !p.Branch.Check(v.fields.Branch, v.fields.Branch != "") {
		fail(FieldBranch, describeSetting(p.Branch))
	}
	if !p.Label.Check(v.fields.Label, v.fields.Label != "") {
		fail(FieldLabel, describeSetting(p.Label))
	}

	hotfix, present := v.Hotfix()
	if !p.Hotfix.Check(hotfix, present) {
		fail(FieldHotfix, describeHotfixSetting(p.Hotfix))
	}

	if !p.Prerelease.Check(v.fields.Prerelease, v.fields.Prerelease != "") {
		fail(FieldPrerelease, describeSetting(p.Prerelease))
	}
	if !p.Build.Check(v.fields.Build, v.fields.Build != "") {
		fail(FieldBuild, describeSetting(p.Build))
	}

	return newReport(v, CheckPolicyName, false, msgs)
}

// IsCustomCompliant reports whether the version satisfies its policy.
func (v *Version) IsCustomCompliant() bool {
	return v.CheckPolicy().Compliant
}

func describeSetting(s policy.Setting) string {
	if len(s.Allow) > 0 {
		parts := make([]string, 0, len(s.Allow))
		for _, r := range s.Allow {
			parts = append(parts, r.String())
		}
		return "allow [" + strings.Join(parts, ", ") + "]"
	}
	if s.Mode == "" {
		return string(policy.ModeOptional)
	}
	return string(s.Mode)
}

func describeHotfixSetting(s policy.HotfixSetting) string {
	if len(s.Allow) > 0 {
		parts := make([]string, 0, len(s.Allow))
		for _, r := range s.Allow {
			parts = append(parts, r.String())
		}
		return "allow [" + strings.Join(parts, ", ") + "]"
	}
	if s.Mode == "" {
		return string(policy.ModeOptional)
	}
	return string(s.Mode)
}
