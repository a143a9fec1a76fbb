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

package source

import (
	"path"
	"strings"

	"github.com/distribution/reference"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/verkit/verkit/pkg/errors"
	"github.com/verkit/verkit/pkg/version"
)

// FromImageRef extracts the version from a container image reference tag.
// The reference is normalized the way container runtimes do, so short names
// like "acme/app:v1.2.3" work. An untagged or digest-only reference yields
// a NOT_FOUND error.
func FromImageRef(ref string, opts ...version.Option) (*version.Version, error) {
	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return nil, errors.WrapWithContext(
			errors.ErrCodeInvalidArgument, "invalid image reference", err,
			map[string]any{"ref": ref})
	}

	tagged, ok := named.(reference.Tagged)
	if !ok {
		return nil, errors.NewWithContext(
			errors.ErrCodeNotFound, "image reference carries no tag",
			map[string]any{"ref": ref})
	}

	return version.Parse(tagged.Tag(), opts...)
}

// FromAnnotations extracts the version from OCI image annotations, using
// the standard org.opencontainers.image.version key.
func FromAnnotations(annotations map[string]string, opts ...version.Option) (*version.Version, error) {
	raw, ok := annotations[ocispec.AnnotationVersion]
	if !ok || raw == "" {
		return nil, errors.NewWithContext(
			errors.ErrCodeNotFound, "version annotation not present",
			map[string]any{"key": ocispec.AnnotationVersion})
	}
	return version.Parse(raw, opts...)
}

// archive extensions stripped before scanning a file name. Numeric
// extensions are kept: ".3" in "app-1.2.3" is part of the version.
func stripExtensions(base string) string {
	for {
		ext := path.Ext(base)
		if ext == "" || !alphabetic(ext[1:]) {
			return base
		}
		base = strings.TrimSuffix(base, ext)
	}
}

func alphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// FromFilename extracts the version embedded in an artifact file name, e.g.
// "app_v1.2.3-rc.1.tar.gz" or "release/app-2.0.0.zip". The directory and
// archive extensions are stripped, then candidate substrings are parsed
// from most to least specific. A name with no parseable version yields a
// NOT_FOUND error.
func FromFilename(name string, opts ...version.Option) (*version.Version, error) {
	base := stripExtensions(path.Base(name))

	if v, err := version.Parse(base, opts...); err == nil {
		return v, nil
	}

	// Underscore-separated names: try tokens right to left, the version is
	// conventionally last.
	tokens := strings.Split(base, "_")
	for i := len(tokens) - 1; i >= 0; i-- {
		if v, err := version.Parse(tokens[i], opts...); err == nil {
			return v, nil
		}
	}

	// Fall back to the first digit run that starts a parseable version,
	// pulling in a directly attached label ("app-v1.2.3").
	for i := 0; i < len(base); i++ {
		if base[i] < '0' || base[i] > '9' {
			continue
		}
		if i > 0 && base[i-1] >= '0' && base[i-1] <= '9' {
			continue
		}
		for _, start := range []int{labelStart(base, i), i} {
			if start < 0 {
				continue
			}
			if v, err := version.Parse(base[start:], opts...); err == nil {
				return v, nil
			}
		}
	}

	return nil, errors.NewWithContext(
		errors.ErrCodeNotFound, "no version found in file name",
		map[string]any{"name": name})
}

// labelStart returns the start of a version label directly preceding the
// digit at position i, or -1 when there is none.
func labelStart(s string, i int) int {
	for _, label := range []string{"version", "ver", "v"} {
		start := i - len(label)
		if start >= 0 && strings.EqualFold(s[start:i], label) {
			return start
		}
	}
	return -1
}
