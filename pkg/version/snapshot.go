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
	"github.com/verkit/verkit/pkg/header"
	"github.com/verkit/verkit/pkg/policy"
)

// Snapshot is the serializable form of a Version: every field plus the
// captured policy, wrapped in the standard resource header. Snapshots
// round-trip: FromSnapshot(v.Snapshot()) yields a version equal to v.
type Snapshot struct {
	header.Header `json:",inline" yaml:",inline"`

	Branch     string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Label      string `json:"label,omitempty" yaml:"label,omitempty"`
	Major      int64  `json:"major" yaml:"major"`
	Minor      int64  `json:"minor" yaml:"minor"`
	Patch      int64  `json:"patch" yaml:"patch"`
	Hotfix     *int64 `json:"hotfix,omitempty" yaml:"hotfix,omitempty"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build      string `json:"build,omitempty" yaml:"build,omitempty"`

	Policy policy.Policy `json:"policy,omitzero" yaml:"policy,omitempty"`
}

// Snapshot captures the version and its policy for serialization.
func (v *Version) Snapshot() *Snapshot {
	f := v.fields.clone()
	s := &Snapshot{
		Branch:     f.Branch,
		Label:      f.Label,
		Major:      f.Major,
		Minor:      f.Minor,
		Patch:      f.Patch,
		Hotfix:     f.Hotfix,
		Prerelease: f.Prerelease,
		Build:      f.Build,
		Policy:     v.policy,
	}
	s.Init(header.KindVersionSnapshot, APIVersion, "")
	return s
}

// FromSnapshot reconstructs a Version from a snapshot, re-validating the
// fields. The snapshot's policy is always adopted, even when it is zero:
// a snapshot records the policy that was in force, not a request to pick
// up the current default.
func FromSnapshot(s *Snapshot) (*Version, error) {
	f := Fields{
		Branch:     s.Branch,
		Label:      s.Label,
		Major:      s.Major,
		Minor:      s.Minor,
		Patch:      s.Patch,
		Hotfix:     s.Hotfix,
		Prerelease: s.Prerelease,
		Build:      s.Build,
	}
	return New(f, WithPolicy(s.Policy))
}
