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
	"dirpx.dev/exception/category"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given category. Unlike overrides it is allowed for every category.
func WithHTTPDefault(c category.Category, http int) Option {
	return func(b *builder) { b.httpDefaults[c] = http }
}

// WithCodeDefault sets or replaces the library-level default business code
// for the given category.
func WithCodeDefault(c category.Category, code int) Option {
	return func(b *builder) { b.codeDefaults[c] = code }
}

// WithGRPCDefault sets or replaces the library-level default gRPC code
// for the given category.
func WithGRPCDefault(c category.Category, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[c] = grpc }
}

// WithHTTPOverride registers a configured HTTP status for the given category.
// This is the "status_code" mapping. Only configurable categories accept
// overrides; New rejects the rest.
func WithHTTPOverride(c category.Category, http int) Option {
	return func(b *builder) { b.httpOverride[c] = http }
}

// WithCodeOverride registers a configured business code for the given
// category. This is the "error_code" mapping.
func WithCodeOverride(c category.Category, code int) Option {
	return func(b *builder) { b.codeOverride[c] = code }
}

// WithGRPCOverride registers a gRPC code for the given category.
func WithGRPCOverride(c category.Category, grpc int) Option {
	return func(b *builder) { b.grpcOverride[c] = grpc }
}

// WithHTTPNeutral forces every resolved HTTP status to 200, whatever the
// category. It models a "status_code" mapping configured as empty.
func WithHTTPNeutral() Option {
	return func(b *builder) { b.httpNeutral = true }
}

// WithCodeNeutral forces every resolved business code to 0, whatever the
// category. It models an "error_code" mapping configured as empty.
func WithCodeNeutral() Option {
	return func(b *builder) { b.codeNeutral = true }
}
