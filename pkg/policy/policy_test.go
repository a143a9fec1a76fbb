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
)

func TestPolicyEqual(t *testing.T) {
	a := Policy{
		Branch:     Required(),
		Prerelease: AllowList(Literal("alpha"), MustPattern(`^beta\..+$`)),
		Hotfix:     ForbiddenHotfix(),
	}
	b := Policy{
		Branch:     Required(),
		Prerelease: AllowList(Literal("alpha"), MustPattern(`^beta\..+$`)),
		Hotfix:     ForbiddenHotfix(),
	}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b.Prerelease = AllowList(Literal("alpha"))
	assert.False(t, a.Equal(b))
}

func TestPolicyEqualTreatsZeroAsOptional(t *testing.T) {
	var zero Policy
	explicit := Policy{
		Branch:     Optional(),
		Label:      Optional(),
		Hotfix:     OptionalHotfix(),
		Prerelease: Optional(),
		Build:      Optional(),
	}
	assert.True(t, zero.Equal(explicit))
}

func TestPolicyJSONRoundTrip(t *testing.T) {
	p := Policy{
		Branch:     Required(),
		Label:      Forbidden(),
		Hotfix:     AllowHotfix(AbsentHotfix(), Number(5)),
		Prerelease: AllowList(Literal("alpha"), MustPattern(`^beta\..+$`)),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded Policy
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, p.Equal(decoded), "policy did not round-trip: %s", data)
}

func TestDefaults(t *testing.T) {
	original := Default()
	t.Cleanup(func() { SetDefault(original) })

	p := Policy{Branch: Required()}
	SetDefault(p)
	assert.True(t, Default().Equal(p))

	SetDefault(Policy{})
	assert.True(t, Default().IsZero())
}
