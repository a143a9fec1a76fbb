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

// Package header provides the common resource header embedded in serialized
// verkit artifacts (version snapshots, compliance reports, policies).
//
// The header follows Kubernetes-style resource conventions: a Kind
// identifying the resource type, an APIVersion identifying the schema, and a
// free-form Metadata map. Init stamps each resource with a unique id and
// creation timestamp so serialized artifacts are traceable.
package header
