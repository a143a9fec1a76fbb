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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/verkit/verkit/pkg/header"
	"github.com/verkit/verkit/pkg/policy"
)

func TestSnapshotRoundTrip(t *testing.T) {
	p := policy.Policy{
		Branch:     policy.Required(),
		Prerelease: policy.AllowList(policy.Literal("alpha"), policy.MustPattern(`^beta\..+$`)),
	}
	v := MustParse("release v1.2.3.4-beta.1+007", WithPolicy(p))

	got, err := FromSnapshot(v.Snapshot())
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestSnapshotHeader(t *testing.T) {
	s := MustParse("1.0.0").Snapshot()
	assert.Equal(t, header.KindVersionSnapshot, s.Kind)
	assert.Equal(t, APIVersion, s.APIVersion)
	assert.NotEmpty(t, s.Metadata["id"])
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	p := policy.Policy{Hotfix: policy.AllowHotfix(policy.Number(1), policy.AbsentHotfix())}
	v := MustParse("release 2.0.0.1-rc.1", WithPolicy(p))

	data, err := json.Marshal(v.Snapshot())
	require.NoError(t, err)

	var s Snapshot
	require.NoError(t, json.Unmarshal(data, &s))

	got, err := FromSnapshot(&s)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestSnapshotYAMLRoundTrip(t *testing.T) {
	v := MustParse("main 1.2.3-rc.1", WithPolicy(policy.Policy{Branch: policy.Required()}))

	data, err := yaml.Marshal(v.Snapshot())
	require.NoError(t, err)

	var s Snapshot
	require.NoError(t, yaml.Unmarshal(data, &s))

	got, err := FromSnapshot(&s)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestSnapshotOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(MustParse("1.0.0").Snapshot())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.NotContains(t, m, "branch")
	assert.NotContains(t, m, "hotfix")
	assert.NotContains(t, m, "policy", "a zero policy is omitted entirely")
	assert.Contains(t, m, "major")
}

func TestFromSnapshotValidates(t *testing.T) {
	_, err := FromSnapshot(&Snapshot{Major: -1})
	assert.Error(t, err)
}

// A snapshot's policy is adopted even when zero; the process default is
// never consulted on the way back in.
func TestFromSnapshotIgnoresDefaultPolicy(t *testing.T) {
	t.Cleanup(func() { policy.SetDefault(policy.Policy{}) })

	v := MustParse("1.0.0", WithPolicy(policy.Policy{}))
	policy.SetDefault(policy.Policy{Branch: policy.Required()})

	got, err := FromSnapshot(v.Snapshot())
	require.NoError(t, err)
	assert.True(t, got.Policy().IsZero())
}
