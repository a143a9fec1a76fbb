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

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{name: "version snapshot", kind: KindVersionSnapshot, want: true},
		{name: "compliance report", kind: KindComplianceReport, want: true},
		{name: "policy", kind: KindPolicy, want: true},
		{name: "unknown", kind: Kind("Recipe"), want: false},
		{name: "empty", kind: Kind(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind(KindPolicy),
		WithAPIVersion("verkit.dev/v1alpha1"),
		WithMetadata("source", "policy.yaml"),
	)

	assert.Equal(t, KindPolicy, h.Kind)
	assert.Equal(t, "verkit.dev/v1alpha1", h.APIVersion)
	assert.Equal(t, "policy.yaml", h.Metadata["source"])
}

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindComplianceReport, "verkit.dev/v1alpha1", "v1.2.0")

	assert.Equal(t, KindComplianceReport, h.Kind)
	assert.Equal(t, "verkit.dev/v1alpha1", h.APIVersion)
	require.NotNil(t, h.Metadata)
	assert.NotEmpty(t, h.Metadata["id"])
	assert.NotEmpty(t, h.Metadata["timestamp"])
	assert.Equal(t, "v1.2.0", h.Metadata["version"])

	// ids are unique per Init
	var h2 Header
	h2.Init(KindComplianceReport, "verkit.dev/v1alpha1", "")
	assert.NotEqual(t, h.Metadata["id"], h2.Metadata["id"])
	_, hasVersion := h2.Metadata["version"]
	assert.False(t, hasVersion)
}
