/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"fmt"
	"net/http"
	"strings"

	"dirpx.dev/exception/apis"
	"dirpx.dev/exception/category"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance: no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP, business code & gRPC).
//  2. Apply user-provided options (defaults, overrides, neutral modes).
//  3. Validate categories and values.
//  4. Freeze all maps into immutable copies (fresh allocations).
//
// Errors returned from this function indicate unknown categories, overrides
// on categories that are not configurable, or out-of-range values.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultCode {
		b.codeDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) Validate.
	checks := []struct {
		what     string
		m        map[category.Category]int
		override bool
		values   func(string, map[category.Category]int) error
	}{
		{"http default", b.httpDefaults, false, validateHTTP},
		{"code default", b.codeDefaults, false, nil},
		{"grpc default", b.grpcDefaults, false, validateGRPC},
		{"http override", b.httpOverride, true, validateHTTP},
		{"code override", b.codeOverride, true, nil},
		{"grpc override", b.grpcOverride, true, validateGRPC},
	}
	for _, ch := range checks {
		if err := validateKeys(ch.what, ch.m, ch.override); err != nil {
			return nil, fmt.Errorf("mapper: %w", err)
		}
		if ch.values == nil {
			continue
		}
		if err := ch.values(ch.what, ch.m); err != nil {
			return nil, fmt.Errorf("mapper: %w", err)
		}
	}

	// (4) Freeze everything into a read-only snapshot.
	m := &mapper{
		httpDefault:  freezeInts(b.httpDefaults),
		codeDefault:  freezeInts(b.codeDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeInts(b.httpOverride),
		codeOverride: freezeInts(b.codeOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),

		httpNeutral: b.httpNeutral,
		codeNeutral: b.codeNeutral,

		fallbackHTTP: b.fallbackHTTP,
		fallbackCode: b.fallbackCode,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-category
// defaults, configured overrides and the neutral modes. Lookups are map reads
// and safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a category.
	httpDefault map[category.Category]int

	// codeDefault holds the base business code for a category.
	codeDefault map[category.Category]int

	// grpcDefault holds the base gRPC status for a category.
	grpcDefault map[category.Category]codes.Code

	// httpOverride holds configured HTTP statuses ("status_code").
	httpOverride map[category.Category]int

	// codeOverride holds configured business codes ("error_code").
	codeOverride map[category.Category]int

	// grpcOverride holds explicit gRPC statuses for specific categories.
	grpcOverride map[category.Category]codes.Code

	// httpNeutral forces 200 for every category.
	httpNeutral bool

	// codeNeutral forces 0 for every category.
	codeNeutral bool

	// fallbacks are used for a category with no default at all.
	fallbackHTTP int
	fallbackCode int
	fallbackGRPC codes.Code
}

// Status resolves HTTP status, business code and gRPC code for one matched
// category. The three are resolved independently, so a status_code override
// never touches the business code and vice versa.
func (m *mapper) Status(c category.Category, d apis.Descriptor) apis.Status {
	h, _ := m.resolveHTTP(c, d)
	code, _ := m.resolveCode(c, d)
	g, _ := m.resolveGRPC(c, d)
	return apis.Status{HTTP: h, Code: code, GRPC: g}
}

// Explain produces a textual trace of how the mapper resolved every value
// for a particular category.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (neutral, override, descriptor, default, or fallback).
//
// Example output:
//
//	category="validate"
//	http: source=override -> 422
//	code: source=default -> 400
//	grpc: source=default -> INVALIDARGUMENT(3)
//
// Notes:
//   - source ∈ {neutral | override | descriptor | default | fallback}
//   - the gRPC line ignores neutral mode; RPC errors always carry a real code
func (m *mapper) Explain(c category.Category, d apis.Descriptor) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "category=%q\n", c)

	v, src := m.resolveHTTP(c, d)
	_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", src, v)

	v, src = m.resolveCode(c, d)
	_, _ = fmt.Fprintf(&b, "code: source=%s -> %d\n", src, v)

	g, src := m.resolveGRPC(c, d)
	_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s\n", src, grpcName(g))

	return strings.TrimSuffix(b.String(), "\n")
}

// resolveHTTP returns the HTTP status and the tier that produced it.
//
// Resolution order (highest to lowest):
//  1. neutral mode (200);
//  2. configured override;
//  3. the descriptor's own status, for category.Descriptor;
//  4. per-category default;
//  5. hardcoded ultimate fallback (500).
func (m *mapper) resolveHTTP(c category.Category, d apis.Descriptor) (int, string) {
	if m.httpNeutral {
		return http.StatusOK, "neutral"
	}
	if v, ok := m.httpOverride[c]; ok {
		return v, "override"
	}
	if c == category.Descriptor && d != nil {
		return d.HTTPStatus(), "descriptor"
	}
	if v, ok := m.httpDefault[c]; ok {
		return v, "default"
	}
	return m.fallbackHTTP, "fallback"
}

// resolveCode mirrors resolveHTTP for the business code; neutral is 0.
func (m *mapper) resolveCode(c category.Category, d apis.Descriptor) (int, string) {
	if m.codeNeutral {
		return 0, "neutral"
	}
	if v, ok := m.codeOverride[c]; ok {
		return v, "override"
	}
	if c == category.Descriptor && d != nil {
		return d.BusinessCode(), "descriptor"
	}
	if v, ok := m.codeDefault[c]; ok {
		return v, "default"
	}
	return m.fallbackCode, "fallback"
}

// resolveGRPC resolves the gRPC code. Descriptors only declare an HTTP
// status, so theirs is derived from it.
func (m *mapper) resolveGRPC(c category.Category, d apis.Descriptor) (codes.Code, string) {
	if v, ok := m.grpcOverride[c]; ok {
		return v, "override"
	}
	if c == category.Descriptor && d != nil {
		return grpcFromHTTP(d.HTTPStatus()), "descriptor"
	}
	if v, ok := m.grpcDefault[c]; ok {
		return v, "default"
	}
	return m.fallbackGRPC, "fallback"
}
