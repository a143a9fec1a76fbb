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

package policy

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// StringRule is one entry of an allow-list for a string-governed field
// (Branch, Label, Prerelease, Build). A rule is either a literal or a
// compiled pattern. The zero value is the empty literal, which matches an
// absent field.
type StringRule struct {
	literal string
	pattern *regexp.Regexp
}

// Literal returns a rule that matches a present field whose value equals s.
// Literal("") matches an absent field.
func Literal(s string) StringRule {
	return StringRule{literal: s}
}

// Pattern returns a rule that matches a present field whose value matches re.
func Pattern(re *regexp.Regexp) StringRule {
	return StringRule{pattern: re}
}

// MustPattern compiles expr and returns a pattern rule, panicking on an
// invalid expression. Intended for package-level rule tables and tests.
func MustPattern(expr string) StringRule {
	return StringRule{pattern: regexp.MustCompile(expr)}
}

// Matches reports whether the rule accepts the field state. The value is
// meaningful only when present is true.
func (r StringRule) Matches(value string, present bool) bool {
	if r.pattern != nil {
		return present && r.pattern.MatchString(value)
	}
	if r.literal == "" {
		return !present
	}
	return present && value == r.literal
}

// Equal reports whether two rules are the same literal or the same pattern
// source.
func (r StringRule) Equal(o StringRule) bool {
	if (r.pattern == nil) != (o.pattern == nil) {
		return false
	}
	if r.pattern != nil {
		return r.pattern.String() == o.pattern.String()
	}
	return r.literal == o.literal
}

// String renders the rule for log and error messages.
func (r StringRule) String() string {
	if r.pattern != nil {
		return fmt.Sprintf("pattern(%s)", r.pattern.String())
	}
	return strconv.Quote(r.literal)
}

// patternEnvelope is the serialized form of a pattern rule.
type patternEnvelope struct {
	Pattern string `json:"pattern" yaml:"pattern"`
}

// MarshalJSON renders a literal as a JSON string and a pattern as
// {"pattern": "..."}.
func (r StringRule) MarshalJSON() ([]byte, error) {
	if r.pattern != nil {
		return json.Marshal(patternEnvelope{Pattern: r.pattern.String()})
	}
	return json.Marshal(r.literal)
}

// UnmarshalJSON accepts a JSON string (literal) or a {"pattern": "..."}
// object.
func (r *StringRule) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Literal(s)
		return nil
	}

	var env patternEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("rule must be a string literal or a pattern object: %w", err)
	}
	re, err := regexp.Compile(env.Pattern)
	if err != nil {
		return fmt.Errorf("invalid rule pattern %q: %w", env.Pattern, err)
	}
	*r = Pattern(re)
	return nil
}

// MarshalYAML renders a literal as a scalar and a pattern as a
// {pattern: "..."} mapping.
func (r StringRule) MarshalYAML() (any, error) {
	if r.pattern != nil {
		return patternEnvelope{Pattern: r.pattern.String()}, nil
	}
	return r.literal, nil
}

// UnmarshalYAML accepts a scalar (literal) or a {pattern: "..."} mapping.
func (r *StringRule) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*r = Literal(s)
		return nil
	}

	var env patternEnvelope
	if err := value.Decode(&env); err != nil {
		return fmt.Errorf("rule must be a scalar literal or a pattern mapping: %w", err)
	}
	re, err := regexp.Compile(env.Pattern)
	if err != nil {
		return fmt.Errorf("invalid rule pattern %q: %w", env.Pattern, err)
	}
	*r = Pattern(re)
	return nil
}

// HotfixRule is one entry of an allow-list for the numeric Hotfix field.
// A rule is either an exact number or a pattern matched against the decimal
// string form of the hotfix. The zero value matches an absent hotfix.
type HotfixRule struct {
	number  *int64
	pattern *regexp.Regexp
}

// Number returns a rule that matches a present hotfix equal to n.
func Number(n int64) HotfixRule {
	return HotfixRule{number: &n}
}

// NumberPattern returns a rule that matches a present hotfix whose decimal
// form matches re.
func NumberPattern(re *regexp.Regexp) HotfixRule {
	return HotfixRule{pattern: re}
}

// AbsentHotfix returns the rule that matches an absent hotfix. It is the
// zero value, named for readability in allow-lists.
func AbsentHotfix() HotfixRule {
	return HotfixRule{}
}

// Matches reports whether the rule accepts the hotfix state. The value is
// meaningful only when present is true.
func (r HotfixRule) Matches(hotfix int64, present bool) bool {
	if r.pattern != nil {
		return present && r.pattern.MatchString(strconv.FormatInt(hotfix, 10))
	}
	if r.number != nil {
		return present && hotfix == *r.number
	}
	return !present
}

// Equal reports whether two rules accept the same hotfix states.
func (r HotfixRule) Equal(o HotfixRule) bool {
	if (r.pattern == nil) != (o.pattern == nil) {
		return false
	}
	if r.pattern != nil {
		return r.pattern.String() == o.pattern.String()
	}
	if (r.number == nil) != (o.number == nil) {
		return false
	}
	if r.number != nil {
		return *r.number == *o.number
	}
	return true
}

// String renders the rule for log and error messages.
func (r HotfixRule) String() string {
	switch {
	case r.pattern != nil:
		return fmt.Sprintf("pattern(%s)", r.pattern.String())
	case r.number != nil:
		return strconv.FormatInt(*r.number, 10)
	default:
		return `""`
	}
}

// MarshalJSON renders a number rule as a JSON number, a pattern rule as
// {"pattern": "..."}, and the absent-sentinel as the empty string.
func (r HotfixRule) MarshalJSON() ([]byte, error) {
	switch {
	case r.pattern != nil:
		return json.Marshal(patternEnvelope{Pattern: r.pattern.String()})
	case r.number != nil:
		return json.Marshal(*r.number)
	default:
		return json.Marshal("")
	}
}

// UnmarshalJSON accepts a JSON number, the empty string (absent sentinel),
// or a {"pattern": "..."} object.
func (r *HotfixRule) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Number(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "" {
			return fmt.Errorf("hotfix rule string must be empty (matches absent), got %q", s)
		}
		*r = AbsentHotfix()
		return nil
	}

	var env patternEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("hotfix rule must be a number, empty string, or pattern object: %w", err)
	}
	re, err := regexp.Compile(env.Pattern)
	if err != nil {
		return fmt.Errorf("invalid hotfix rule pattern %q: %w", env.Pattern, err)
	}
	*r = NumberPattern(re)
	return nil
}

// MarshalYAML renders the same shapes as MarshalJSON.
func (r HotfixRule) MarshalYAML() (any, error) {
	switch {
	case r.pattern != nil:
		return patternEnvelope{Pattern: r.pattern.String()}, nil
	case r.number != nil:
		return *r.number, nil
	default:
		return "", nil
	}
}

// UnmarshalYAML accepts a number scalar, the empty string, or a
// {pattern: "..."} mapping.
func (r *HotfixRule) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var n int64
		if err := value.Decode(&n); err == nil {
			*r = Number(n)
			return nil
		}
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		if s != "" {
			return fmt.Errorf("hotfix rule scalar must be a number or empty string, got %q", s)
		}
		*r = AbsentHotfix()
		return nil
	}

	var env patternEnvelope
	if err := value.Decode(&env); err != nil {
		return fmt.Errorf("hotfix rule must be a scalar or a pattern mapping: %w", err)
	}
	re, err := regexp.Compile(env.Pattern)
	if err != nil {
		return fmt.Errorf("invalid hotfix rule pattern %q: %w", env.Pattern, err)
	}
	*r = NumberPattern(re)
	return nil
}
