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

// defaultPolicy is the process-wide fallback captured by version values that
// are constructed without an explicit policy.
var defaultPolicy Policy

// SetDefault replaces the process-wide default policy.
//
// Access is intentionally unsynchronized: establish defaults before any
// concurrent version construction begins. Values constructed earlier keep the
// policy they captured; changing the default never affects them.
func SetDefault(p Policy) {
	defaultPolicy = p
}

// Default returns the current process-wide default policy.
func Default() Policy {
	return defaultPolicy
}
