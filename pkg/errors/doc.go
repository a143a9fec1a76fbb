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

// Package errors provides structured error types for better observability
// and programmatic error handling across the library.
//
// Parsing and construction failures are classified with an ErrorCode so that
// callers can distinguish a grammar mismatch (input never matched the version
// pattern) from a field validation failure (the pattern matched but one or
// more fields were structurally invalid). Compliance-check outcomes are never
// represented as errors; they are returned as data by the version package.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeFieldValidation,
//	    "invalid version fields",
//	    cause,
//	    map[string]interface{}{
//	        "prerelease": "token must match [1-9a-zA-Z-][0-9a-zA-Z-]*",
//	    },
//	)
package errors
