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

// Package source extracts version values from common artifact carriers.
//
// # Overview
//
// Versions rarely arrive as bare strings: they are embedded in container
// image tags, OCI annotations, and artifact file names. This package pulls
// the version string out of the carrier and hands it to pkg/version for
// parsing, so every extraction path yields the same validated value type.
//
//	v, err := source.FromImageRef("ghcr.io/acme/app:v1.2.3")
//	v, err := source.FromAnnotations(manifest.Annotations)
//	v, err := source.FromFilename("app_v1.2.3-rc.1.tar.gz")
//
// A carrier without a version (an untagged image reference, a manifest
// missing the version annotation, a file name with no recognizable version)
// yields a NOT_FOUND error; a carrier whose version string is malformed
// yields the parse error unchanged.
package source
