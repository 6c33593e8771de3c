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
	"net/http"

	"dirpx.dev/exception/category"
	"google.golang.org/grpc/codes"
)

type builder struct {
	// per-category defaults, seeded from the library tables

	httpDefaults map[category.Category]int
	codeDefaults map[category.Category]int
	// grpcDefaults holds gRPC codes as ints; converted to codes.Code in New().
	grpcDefaults map[category.Category]int

	// configured overrides, only allowed for configurable categories

	httpOverride map[category.Category]int
	codeOverride map[category.Category]int
	grpcOverride map[category.Category]int

	// neutral modes: a present-but-empty status_code / error_code mapping
	httpNeutral bool
	codeNeutral bool

	// global fallbacks used when a category has no default at all.
	fallbackHTTP int
	fallbackCode int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		httpDefaults: make(map[category.Category]int, len(defaultHTTP)),
		codeDefaults: make(map[category.Category]int, len(defaultCode)),
		grpcDefaults: make(map[category.Category]int, len(defaultGRPC)),

		// overrides are usually few
		httpOverride: make(map[category.Category]int),
		codeOverride: make(map[category.Category]int),
		grpcOverride: make(map[category.Category]int),

		fallbackHTTP: http.StatusInternalServerError,
		fallbackCode: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
