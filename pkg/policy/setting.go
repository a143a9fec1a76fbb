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
	"strings"

	"gopkg.in/yaml.v3"
)

// Mode selects how a governed field is checked.
type Mode string

const (
	// ModeOptional always passes. An empty Mode is treated as optional.
	ModeOptional Mode = "optional"

	// ModeRequired fails when the field is absent or blank.
	ModeRequired Mode = "required"

	// ModeForbidden fails when the field is present at all.
	ModeForbidden Mode = "forbidden"

	// ModeAllow passes when the field state matches at least one rule of
	// the allow-list.
	ModeAllow Mode = "allow"
)

// Setting governs one string-typed field (Branch, Label, Prerelease, Build).
// The zero value is optional.
type Setting struct {
	Mode  Mode
	Allow []StringRule
}

// Required returns the required setting.
func Required() Setting { return Setting{Mode: ModeRequired} }

// Forbidden returns the forbidden setting.
func Forbidden() Setting { return Setting{Mode: ModeForbidden} }

// Optional returns the optional setting (same as the zero value).
func Optional() Setting { return Setting{Mode: ModeOptional} }

// AllowList returns an allow-list setting with the given rules.
func AllowList(rules ...StringRule) Setting {
	return Setting{Mode: ModeAllow, Allow: rules}
}

// IsZero reports whether the setting is the zero value. Used by encoding
// omitzero handling.
func (s Setting) IsZero() bool {
	return s.Mode == "" && len(s.Allow) == 0
}

// Check evaluates the setting against a field state. The value is meaningful
// only when present is true.
func (s Setting) Check(value string, present bool) bool {
	switch s.effectiveMode() {
	case ModeRequired:
		return present && strings.TrimSpace(value) != ""
	case ModeForbidden:
		return !present
	case ModeAllow:
		for _, r := range s.Allow {
			if r.Matches(value, present) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Equal reports whether two settings enforce the same rule set.
func (s Setting) Equal(o Setting) bool {
	if s.effectiveMode() != o.effectiveMode() {
		return false
	}
	if len(s.Allow) != len(o.Allow) {
		return false
	}
	for i := range s.Allow {
		if !s.Allow[i].Equal(o.Allow[i]) {
			return false
		}
	}
	return true
}

func (s Setting) effectiveMode() Mode {
	if s.Mode == "" {
		if len(s.Allow) > 0 {
			return ModeAllow
		}
		return ModeOptional
	}
	return s.Mode
}

// MarshalJSON renders a mode as a string and an allow-list as an array.
func (s Setting) MarshalJSON() ([]byte, error) {
	if s.effectiveMode() == ModeAllow {
		return json.Marshal(s.Allow)
	}
	return json.Marshal(string(s.effectiveMode()))
}

// UnmarshalJSON accepts a mode string or an array of rules.
func (s *Setting) UnmarshalJSON(data []byte) error {
	var mode string
	if err := json.Unmarshal(data, &mode); err == nil {
		m, err := parseMode(mode)
		if err != nil {
			return err
		}
		*s = Setting{Mode: m}
		return nil
	}

	var rules []StringRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("setting must be a mode string or a rule list: %w", err)
	}
	*s = Setting{Mode: ModeAllow, Allow: rules}
	return nil
}

// MarshalYAML renders a mode as a scalar and an allow-list as a sequence.
func (s Setting) MarshalYAML() (any, error) {
	if s.effectiveMode() == ModeAllow {
		return s.Allow, nil
	}
	return string(s.effectiveMode()), nil
}

// UnmarshalYAML accepts a mode scalar or a sequence of rules.
func (s *Setting) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var mode string
		if err := value.Decode(&mode); err != nil {
			return err
		}
		m, err := parseMode(mode)
		if err != nil {
			return err
		}
		*s = Setting{Mode: m}
		return nil
	}

	var rules []StringRule
	if err := value.Decode(&rules); err != nil {
		return fmt.Errorf("setting must be a mode scalar or a rule sequence: %w", err)
	}
	*s = Setting{Mode: ModeAllow, Allow: rules}
	return nil
}

// HotfixSetting governs the numeric Hotfix field. The zero value is optional.
type HotfixSetting struct {
	Mode  Mode
	Allow []HotfixRule
}

// RequiredHotfix returns the required hotfix setting.
func RequiredHotfix() HotfixSetting { return HotfixSetting{Mode: ModeRequired} }

// ForbiddenHotfix returns the forbidden hotfix setting.
func ForbiddenHotfix() HotfixSetting { return HotfixSetting{Mode: ModeForbidden} }

// OptionalHotfix returns the optional hotfix setting (same as the zero value).
func OptionalHotfix() HotfixSetting { return HotfixSetting{Mode: ModeOptional} }

// AllowHotfix returns an allow-list hotfix setting with the given rules.
func AllowHotfix(rules ...HotfixRule) HotfixSetting {
	return HotfixSetting{Mode: ModeAllow, Allow: rules}
}

// IsZero reports whether the setting is the zero value.
func (s HotfixSetting) IsZero() bool {
	return s.Mode == "" && len(s.Allow) == 0
}

// Check evaluates the setting against a hotfix state. The value is meaningful
// only when present is true.
func (s HotfixSetting) Check(hotfix int64, present bool) bool {
	switch s.effectiveMode() {
	case ModeRequired:
		return present
	case ModeForbidden:
		return !present
	case ModeAllow:
		for _, r := range s.Allow {
			if r.Matches(hotfix, present) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Equal reports whether two settings enforce the same rule set.
func (s HotfixSetting) Equal(o HotfixSetting) bool {
	if s.effectiveMode() != o.effectiveMode() {
		return false
	}
	if len(s.Allow) != len(o.Allow) {
		return false
	}
	for i := range s.Allow {
		if !s.Allow[i].Equal(o.Allow[i]) {
			return false
		}
	}
	return true
}

func (s HotfixSetting) effectiveMode() Mode {
	if s.Mode == "" {
		if len(s.Allow) > 0 {
			return ModeAllow
		}
		return ModeOptional
	}
	return s.Mode
}

// MarshalJSON renders a mode as a string and an allow-list as an array.
func (s HotfixSetting) MarshalJSON() ([]byte, error) {
	if s.effectiveMode() == ModeAllow {
		return json.Marshal(s.Allow)
	}
	return json.Marshal(string(s.effectiveMode()))
}

// UnmarshalJSON accepts a mode string or an array of rules.
func (s *HotfixSetting) UnmarshalJSON(data []byte) error {
	var mode string
	if err := json.Unmarshal(data, &mode); err == nil {
		m, err := parseMode(mode)
		if err != nil {
			return err
		}
		*s = HotfixSetting{Mode: m}
		return nil
	}

	var rules []HotfixRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("hotfix setting must be a mode string or a rule list: %w", err)
	}
	*s = HotfixSetting{Mode: ModeAllow, Allow: rules}
	return nil
}

// MarshalYAML renders a mode as a scalar and an allow-list as a sequence.
func (s HotfixSetting) MarshalYAML() (any, error) {
	if s.effectiveMode() == ModeAllow {
		return s.Allow, nil
	}
	return string(s.effectiveMode()), nil
}

// UnmarshalYAML accepts a mode scalar or a sequence of rules.
func (s *HotfixSetting) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var mode string
		if err := value.Decode(&mode); err != nil {
			return err
		}
		m, err := parseMode(mode)
		if err != nil {
			return err
		}
		*s = HotfixSetting{Mode: m}
		return nil
	}

	var rules []HotfixRule
	if err := value.Decode(&rules); err != nil {
		return fmt.Errorf("hotfix setting must be a mode scalar or a rule sequence: %w", err)
	}
	*s = HotfixSetting{Mode: ModeAllow, Allow: rules}
	return nil
}

func parseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeOptional, "":
		return ModeOptional, nil
	case ModeRequired:
		return ModeRequired, nil
	case ModeForbidden:
		return ModeForbidden, nil
	default:
		return "", fmt.Errorf("unknown policy mode %q (want required, optional, or forbidden)", s)
	}
}
