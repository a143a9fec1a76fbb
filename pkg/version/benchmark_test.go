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
	"testing"
)

func BenchmarkParse(b *testing.B) {
	tests := []string{
		"1.2.3",
		"v1.2.3",
		"release 1.2.3",
		"1.2.3.4",
		"release 2.0.0.5-beta.1+build.007",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = Parse(input)
	}
}

func BenchmarkParseTriple(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("1.2.3")
	}
}

func BenchmarkParseFull(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("release v1.2.3.4-rc.1+build.007")
	}
}

func BenchmarkRender(b *testing.B) {
	v := MustParse("release v1.2.3.4-rc.1+build.007")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkCompare(b *testing.B) {
	x := MustParse("release 1.2.3.4")
	y := MustParse("release 1.2.4")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(x, y)
	}
}

func BenchmarkCheckStandard(b *testing.B) {
	v := MustParse("release v1.2.3.4")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.CheckStandard(true)
	}
}
