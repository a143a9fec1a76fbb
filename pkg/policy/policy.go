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

// Policy carries one setting per governed version field. The zero value
// leaves every field optional.
//
// Policies are treated as immutable once attached to a version value: do not
// mutate the Allow slices of a Policy after handing it to SetDefault or to a
// version constructor.
type Policy struct {
	// Branch governs the optional branch qualifier.
	Branch Setting `json:"branch,omitzero" yaml:"branch,omitempty"`

	// Label governs the optional release-type label (v/ver/version).
	Label Setting `json:"label,omitzero" yaml:"label,omitempty"`

	// Hotfix governs the optional numeric hotfix tier.
	Hotfix HotfixSetting `json:"hotfix,omitzero" yaml:"hotfix,omitempty"`

	// Prerelease governs the optional prerelease segment.
	Prerelease Setting `json:"prerelease,omitzero" yaml:"prerelease,omitempty"`

	// Build governs the optional build-metadata segment.
	Build Setting `json:"build,omitzero" yaml:"build,omitempty"`
}

// Equal reports whether two policies enforce the same rules for every
// governed field.
func (p Policy) Equal(o Policy) bool {
	return p.Branch.Equal(o.Branch) &&
		p.Label.Equal(o.Label) &&
		p.Hotfix.Equal(o.Hotfix) &&
		p.Prerelease.Equal(o.Prerelease) &&
		p.Build.Equal(o.Build)
}

// IsZero reports whether the policy is the zero value (every field optional).
func (p Policy) IsZero() bool {
	return p.Branch.IsZero() &&
		p.Label.IsZero() &&
		p.Hotfix.IsZero() &&
		p.Prerelease.IsZero() &&
		p.Build.IsZero()
}
