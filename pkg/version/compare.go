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
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// branchCollator orders branch qualifiers with linguistic collation rather
// than byte order, so "Release" and "release" sort adjacently. Collators
// are not safe for concurrent use, hence the mutex.
var (
	branchCollatorMu sync.Mutex
	branchCollator   = collate.New(language.Und, collate.Loose)
)

func compareBranch(a, b string) int {
	if a == b {
		return 0
	}
	branchCollatorMu.Lock()
	defer branchCollatorMu.Unlock()
	return branchCollator.CompareString(a, b)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare orders two versions by precedence: branch first, then major,
// minor, patch, and hotfix, with an absent hotfix equal to 0. Prerelease
// and build play no part, so versions that differ only in those tiers
// compare equal. Returns -1, 0, or 1.
func Compare(a, b *Version) int {
	if c := compareBranch(a.fields.Branch, b.fields.Branch); c != 0 {
		return c
	}
	if c := compareInt64(a.fields.Major, b.fields.Major); c != 0 {
		return c
	}
	if c := compareInt64(a.fields.Minor, b.fields.Minor); c != 0 {
		return c
	}
	if c := compareInt64(a.fields.Patch, b.fields.Patch); c != 0 {
		return c
	}
	return compareInt64(hotfixOrZero(a), hotfixOrZero(b))
}

func hotfixOrZero(v *Version) int64 {
	if v.fields.Hotfix == nil {
		return 0
	}
	return *v.fields.Hotfix
}

// Compare orders v against o by precedence. See the package-level Compare.
func (v *Version) Compare(o *Version) int {
	return Compare(v, o)
}

// Less reports whether v precedes o.
func (v *Version) Less(o *Version) bool {
	return Compare(v, o) < 0
}

// EqualPrecedence reports whether v and o occupy the same precedence
// position. This is weaker than Equal: prerelease, build, label, and
// policy differences are invisible to it.
func (v *Version) EqualPrecedence(o *Version) bool {
	return Compare(v, o) == 0
}
