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

// Package serializer encodes and decodes verkit resources in multiple formats.
//
// # Overview
//
// Snapshots, compliance reports, and policies all travel through this
// package on their way to files, stdout, or back in from configuration.
// Three formats are supported:
//
// JSON:
//   - Machine-parseable, indented
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable, suitable for policy files under version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened key/value rows for terminal viewing
//   - Write-only (no deserialization support)
//
// # Usage
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.(serializer.Closer).Close()
//	if err := w.Serialize(ctx, v.Snapshot()); err != nil {
//	    return err
//	}
//
// Reading, with format detection from the file extension:
//
//	p, err := serializer.FromFile[policy.Policy]("policy.yaml")
//
// # Resource Management
//
// File-backed writers and readers hold an open handle until Close is
// called. Close is idempotent and a no-op for stdout or in-memory sources.
package serializer
