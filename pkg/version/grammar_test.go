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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verkit/verkit/pkg/errors"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RawFields
	}{
		{
			name:  "bare triple",
			input: "1.2.3",
			want:  RawFields{Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "attached label",
			input: "v1.2.3",
			want:  RawFields{Label: "v", Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "spaced label",
			input: "v 1.2.3",
			want:  RawFields{Label: "v", Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "long label",
			input: "Version 1.2.3",
			want:  RawFields{Label: "Version", Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "branch and label",
			input: "release v1.2.3",
			want:  RawFields{Branch: "release", Label: "v", Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "branch label reclassified from greedy capture",
			input: "release version 1.2.3",
			want:  RawFields{Branch: "release", Label: "version", Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "multi word branch",
			input: "feature login flow 1.2.3",
			want:  RawFields{Branch: "feature login flow", Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "hotfix tier",
			input: "1.2.3.4",
			want:  RawFields{Major: "1", Minor: "2", Patch: "3", Hotfix: "4"},
		},
		{
			name:  "everything",
			input: "release 2.0.0.5-beta.1+build.007",
			want: RawFields{
				Branch: "release", Major: "2", Minor: "0", Patch: "0",
				Hotfix: "5", Prerelease: "beta.1", Build: "build.007",
			},
		},
		{
			name:  "prerelease only",
			input: "1.0.0-rc.1",
			want:  RawFields{Major: "1", Minor: "0", Patch: "0", Prerelease: "rc.1"},
		},
		{
			name:  "build only",
			input: "1.0.0+20130313144700",
			want:  RawFields{Major: "1", Minor: "0", Patch: "0", Build: "20130313144700"},
		},
		{
			name:  "hyphenated tokens",
			input: "1.0.0-x-y-z.-+exp.sha-5114f85",
			want:  RawFields{Major: "1", Minor: "0", Patch: "0", Prerelease: "x-y-z.-", Build: "exp.sha-5114f85"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing patch", "1.2"},
		{"major only", "1"},
		{"five numeric tiers", "1.2.3.4.5"},
		{"trailing garbage", "1.2.3 "},
		{"leading space", " 1.2.3"},
		{"empty prerelease", "1.2.3-"},
		{"empty build", "1.2.3+"},
		{"underscore in prerelease", "1.2.3-rc_1"},
		{"non numeric patch", "1.2.x"},
		{"double space in branch", "release  1.2.3"},
		{"no version at all", "release"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.input)
			require.Error(t, err)

			var serr *errors.StructuredError
			require.True(t, goerrors.As(err, &serr))
			assert.Equal(t, errors.ErrCodeGrammarMismatch, serr.Code)
			assert.Equal(t, tt.input, serr.Context["input"])
		})
	}
}

func TestValidBranch(t *testing.T) {
	tests := []struct {
		branch string
		want   bool
	}{
		{"release", true},
		{"feature login flow", true},
		{"hot-fix/2024", true},
		{"", false},
		{"two  spaces", false},
		{"trailing ", false},
		{"v", true},
		{"release ver", true},
		{"versioned", true},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			assert.Equal(t, tt.want, validBranch(tt.branch))
		})
	}
}

func TestBranchEndsInLabel(t *testing.T) {
	tests := []struct {
		branch string
		want   bool
	}{
		{"", false},
		{"release", false},
		{"versioned", false},
		{"v", true},
		{"release ver", true},
		{"release VERSION", true},
		{"feature login flow", false},
	}

	for _, tt := range tests {
		t.Run(tt.branch, func(t *testing.T) {
			assert.Equal(t, tt.want, branchEndsInLabel(tt.branch))
		})
	}
}

func TestValidLabel(t *testing.T) {
	for _, label := range []string{"", "v", "V", "ver", "Ver", "version", "VERSION"} {
		assert.True(t, validLabel(label), "label %q", label)
	}
	for _, label := range []string{"vv", "vers", "release", "v1"} {
		assert.False(t, validLabel(label), "label %q", label)
	}
}

func TestValidPrerelease(t *testing.T) {
	tests := []struct {
		segment string
		want    bool
	}{
		{"alpha", true},
		{"beta.1", true},
		{"rc.1.2", true},
		{"x-y-z.-", true},
		{"0leading", false},
		{"beta.01", false},
		{"beta..1", false},
		{"beta.", false},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			assert.Equal(t, tt.want, validPrerelease(tt.segment))
		})
	}
}

func TestValidBuild(t *testing.T) {
	// Build tokens, unlike prerelease tokens, permit leading zeros.
	assert.True(t, validBuild("007"))
	assert.True(t, validBuild("build.007"))
	assert.True(t, validBuild("exp.sha-5114f85"))
	assert.False(t, validBuild("build..007"))
	assert.False(t, validBuild("build.")) // trailing empty token
	assert.False(t, validBuild("meta_data"))
}
