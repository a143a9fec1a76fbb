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

package serializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verkit/verkit/pkg/policy"
	"github.com/verkit/verkit/pkg/version"
)

const policyYAML = `
branch: required
label: forbidden
hotfix:
  - 1
  - 2
prerelease:
  - alpha
  - pattern: ^beta\..+$
`

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"policy.json", FormatJSON},
		{"policy.yaml", FormatYAML},
		{"POLICY.YML", FormatYAML},
		{"report.table", FormatTable},
		{"report.txt", FormatTable},
		{"unknown.toml", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestNewReaderRejects(t *testing.T) {
	_, err := NewReader(Format("bogus"), strings.NewReader(""))
	assert.Error(t, err)

	_, err = NewReader(FormatTable, strings.NewReader(""))
	assert.Error(t, err, "table format is write-only")
}

func TestReaderDeserializePolicy(t *testing.T) {
	r, err := NewReader(FormatYAML, strings.NewReader(policyYAML))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	var p policy.Policy
	require.NoError(t, r.Deserialize(&p))

	assert.Equal(t, policy.ModeRequired, p.Branch.Mode)
	assert.Equal(t, policy.ModeForbidden, p.Label.Mode)
	assert.Len(t, p.Hotfix.Allow, 2)
	assert.Len(t, p.Prerelease.Allow, 2)

	// The parsed policy actually governs versions.
	v := version.MustParse("main 1.0.0.1-beta.7", version.WithPolicy(p))
	assert.True(t, v.IsCustomCompliant())
}

func TestReaderDeserializeSnapshotJSON(t *testing.T) {
	in := `{"kind":"VersionSnapshot","major":1,"minor":2,"patch":3,"prerelease":"rc.1"}`

	r, err := NewReader(FormatJSON, strings.NewReader(in))
	require.NoError(t, err)

	var s version.Snapshot
	require.NoError(t, r.Deserialize(&s))

	v, err := version.FromSnapshot(&s)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3-rc.1", v.String())
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(policyYAML), 0o600))

	p, err := FromFile[policy.Policy](path)
	require.NoError(t, err)
	assert.Equal(t, policy.ModeRequired, p.Branch.Mode)
}

func TestFromFileErrors(t *testing.T) {
	_, err := FromFile[policy.Policy](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = FromFile[policy.Policy](path)
	assert.Error(t, err)
}

func TestReaderCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte(policyYAML), 0o600))

	r, err := NewFileReaderAuto(path)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	var nilReader *Reader
	assert.NoError(t, nilReader.Close())
}
