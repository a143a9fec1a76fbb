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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStringRuleMatches(t *testing.T) {
	tests := []struct {
		name    string
		rule    StringRule
		value   string
		present bool
		want    bool
	}{
		{name: "literal match", rule: Literal("alpha"), value: "alpha", present: true, want: true},
		{name: "literal mismatch", rule: Literal("alpha"), value: "beta", present: true, want: false},
		{name: "literal never matches absent", rule: Literal("alpha"), present: false, want: false},
		{name: "empty literal matches absent", rule: Literal(""), present: false, want: true},
		{name: "empty literal rejects present", rule: Literal(""), value: "alpha", present: true, want: false},
		{name: "zero value matches absent", rule: StringRule{}, present: false, want: true},
		{name: "pattern match", rule: MustPattern(`^beta\..+$`), value: "beta.1", present: true, want: true},
		{name: "pattern mismatch", rule: MustPattern(`^beta\..+$`), value: "rc.1", present: true, want: false},
		{name: "pattern never matches absent", rule: MustPattern(`.*`), present: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Matches(tt.value, tt.present))
		})
	}
}

func TestHotfixRuleMatches(t *testing.T) {
	tests := []struct {
		name    string
		rule    HotfixRule
		hotfix  int64
		present bool
		want    bool
	}{
		{name: "number match", rule: Number(5), hotfix: 5, present: true, want: true},
		{name: "number mismatch", rule: Number(5), hotfix: 6, present: true, want: false},
		{name: "number never matches absent", rule: Number(0), present: false, want: false},
		{name: "pattern matches decimal form", rule: NumberPattern(mustRe(t, `^[0-9]$`)), hotfix: 7, present: true, want: true},
		{name: "pattern mismatch", rule: NumberPattern(mustRe(t, `^[0-9]$`)), hotfix: 42, present: true, want: false},
		{name: "absent sentinel matches absent", rule: AbsentHotfix(), present: false, want: true},
		{name: "absent sentinel rejects present", rule: AbsentHotfix(), hotfix: 1, present: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.Matches(tt.hotfix, tt.present))
		})
	}
}

func TestStringRuleJSONRoundTrip(t *testing.T) {
	rules := []StringRule{
		Literal("alpha"),
		Literal(""),
		MustPattern(`^beta\..+$`),
	}

	data, err := json.Marshal(rules)
	require.NoError(t, err)

	var decoded []StringRule
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(rules))
	for i := range rules {
		assert.True(t, rules[i].Equal(decoded[i]), "rule %d: %s != %s", i, rules[i], decoded[i])
	}
}

func TestStringRuleYAMLRoundTrip(t *testing.T) {
	rules := []StringRule{
		Literal("alpha"),
		MustPattern(`^beta\..+$`),
	}

	data, err := yaml.Marshal(rules)
	require.NoError(t, err)

	var decoded []StringRule
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(rules))
	for i := range rules {
		assert.True(t, rules[i].Equal(decoded[i]), "rule %d: %s != %s", i, rules[i], decoded[i])
	}
}

func TestHotfixRuleJSONRoundTrip(t *testing.T) {
	rules := []HotfixRule{
		Number(5),
		AbsentHotfix(),
		NumberPattern(mustRe(t, `^[0-9]+$`)),
	}

	data, err := json.Marshal(rules)
	require.NoError(t, err)

	var decoded []HotfixRule
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(rules))
	for i := range rules {
		assert.True(t, rules[i].Equal(decoded[i]), "rule %d: %s != %s", i, rules[i], decoded[i])
	}
}

func TestStringRuleUnmarshalRejectsBadPattern(t *testing.T) {
	var r StringRule
	err := json.Unmarshal([]byte(`{"pattern":"["}`), &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rule pattern")
}

func TestHotfixRuleUnmarshalRejectsNonEmptyString(t *testing.T) {
	var r HotfixRule
	err := json.Unmarshal([]byte(`"beta"`), &r)
	require.Error(t, err)
}
