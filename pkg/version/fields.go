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
	goerrors "errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verkit/verkit/pkg/errors"
)

// MaxNumeric is the largest value accepted for major, minor, patch, and
// hotfix. Numeric fields are capped at 2^53-1 so snapshots survive JSON
// consumers that read numbers as float64.
const MaxNumeric = int64(9007199254740991)

// Fields is the structured, caller-facing form of a version. Major, minor,
// and patch are required; every other field is optional. An empty string
// means "absent" for the string fields, a nil Hotfix means "no hotfix".
type Fields struct {
	// Branch is a free-text qualifier preceding the rest of the version,
	// typically a VCS branch name. Words are joined by single spaces.
	Branch string `json:"branch,omitempty" yaml:"branch,omitempty" validate:"omitempty,branchtext"`

	// Label is the release-type token: v, ver, or version (any case).
	Label string `json:"label,omitempty" yaml:"label,omitempty" validate:"omitempty,verlabel"`

	Major int64 `json:"major" yaml:"major" validate:"min=0,max=9007199254740991"`
	Minor int64 `json:"minor" yaml:"minor" validate:"min=0,max=9007199254740991"`
	Patch int64 `json:"patch" yaml:"patch" validate:"min=0,max=9007199254740991"`

	// Hotfix is the extension numeric tier below patch.
	Hotfix *int64 `json:"hotfix,omitempty" yaml:"hotfix,omitempty" validate:"omitempty,min=0,max=9007199254740991"`

	// Prerelease is a dot-separated token sequence; no token may start
	// with a zero.
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty" validate:"omitempty,prerelease"`

	// Build is a dot-separated token sequence; leading zeros are allowed.
	Build string `json:"build,omitempty" yaml:"build,omitempty" validate:"omitempty,buildmeta"`
}

// fieldsValidate is the shared validator instance for Fields, with the
// grammar token rules registered as custom validations.
var fieldsValidate = newFieldsValidator()

func newFieldsValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("branchtext", func(fl validator.FieldLevel) bool {
		return validBranch(fl.Field().String())
	})
	_ = v.RegisterValidation("verlabel", func(fl validator.FieldLevel) bool {
		return validLabel(fl.Field().String())
	})
	_ = v.RegisterValidation("prerelease", func(fl validator.FieldLevel) bool {
		return validPrerelease(fl.Field().String())
	})
	_ = v.RegisterValidation("buildmeta", func(fl validator.FieldLevel) bool {
		return validBuild(fl.Field().String())
	})
	// A branch ending in a label token re-parses with that token classified
	// as the label, so it is only allowed when an explicit label follows it.
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(Fields)
		if f.Label == "" && branchEndsInLabel(f.Branch) {
			sl.ReportError(f.Branch, "Branch", "Branch", "branchlabel", "")
		}
	}, Fields{})
	return v
}

// Validate checks the structural rules of every field and reports ALL
// violations in one pass via the error context, keyed by lower-case field
// name.
func (f Fields) Validate() error {
	violations, err := f.violations()
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return errors.NewWithContext(errors.ErrCodeFieldValidation, "invalid version fields", violations)
	}
	return nil
}

// violations runs the structural rules and returns the violated fields as a
// context map, keyed by lower-case field name. An empty map means the fields
// are valid.
func (f Fields) violations() (map[string]any, error) {
	err := fieldsValidate.Struct(f)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !goerrors.As(err, &verrs) {
		return nil, errors.Wrap(errors.ErrCodeInternal, "field validation failed", err)
	}

	violations := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		violations[strings.ToLower(fe.Field())] = violationText(fe)
	}
	return violations, nil
}

// violationText maps a validator tag failure to the human-readable reason
// surfaced in structured errors.
func violationText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "max":
		return "must be a non-negative integer no larger than 9007199254740991"
	case "branchtext":
		return "must be non-empty words joined by single spaces"
	case "branchlabel":
		return "must not end in a label token unless a label is present"
	case "verlabel":
		return `must be "v", "ver", or "version" (case-insensitive)`
	case "prerelease":
		return "every dot-separated token must match [1-9a-zA-Z-][0-9a-zA-Z-]*"
	case "buildmeta":
		return "every dot-separated token must match [0-9a-zA-Z-]+"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// clone returns a deep copy of the fields; the hotfix pointer is never
// shared between versions.
func (f Fields) clone() Fields {
	c := f
	if f.Hotfix != nil {
		h := *f.Hotfix
		c.Hotfix = &h
	}
	return c
}

// equal reports field-for-field equality, including hotfix presence.
func (f Fields) equal(o Fields) bool {
	if f.Branch != o.Branch || f.Label != o.Label ||
		f.Major != o.Major || f.Minor != o.Minor || f.Patch != o.Patch ||
		f.Prerelease != o.Prerelease || f.Build != o.Build {
		return false
	}
	if (f.Hotfix == nil) != (o.Hotfix == nil) {
		return false
	}
	return f.Hotfix == nil || *f.Hotfix == *o.Hotfix
}

// fieldsFromRaw converts grammar capture results to typed Fields,
// accumulating every numeric conversion failure rather than stopping at the
// first. The partially converted fields come back alongside the violation
// map so the caller can run the remaining structural rules on them and
// report every violated field of the input in a single error.
func fieldsFromRaw(raw RawFields) (Fields, map[string]any) {
	f := Fields{
		Branch:     raw.Branch,
		Label:      raw.Label,
		Prerelease: raw.Prerelease,
		Build:      raw.Build,
	}

	violations := make(map[string]any)

	parse := func(name, s string) int64 {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n > MaxNumeric {
			violations[name] = "must be a non-negative integer no larger than 9007199254740991"
			return 0
		}
		return n
	}

	f.Major = parse("major", raw.Major)
	f.Minor = parse("minor", raw.Minor)
	f.Patch = parse("patch", raw.Patch)
	if raw.Hotfix != "" {
		h := parse("hotfix", raw.Hotfix)
		f.Hotfix = &h
	}

	return f, violations
}
