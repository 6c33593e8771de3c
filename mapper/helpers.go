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
	"strings"

	"dirpx.dev/exception/category"
	"google.golang.org/grpc/codes"
)

// freezeInts makes an immutable copy of a per-category int map.
// Used when finalizing the mapper so later mutations to the builder
// (or caller-owned maps) cannot affect the mapper.
func freezeInts(src map[category.Category]int) map[category.Category]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[category.Category]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPC makes an immutable copy of a per-category map, converting
// builder-style int values into typed gRPC codes.
func freezeGRPC(src map[category.Category]int) map[category.Category]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[category.Category]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// validateKeys checks that every key of m is a known category and, when
// override is set, a configurable one.
func validateKeys(what string, m map[category.Category]int, override bool) error {
	for c := range m {
		if !c.Known() {
			return fmt.Errorf("%s: %w: %q", what, category.ErrCategoryUnknown, c)
		}
		if override && !c.Configurable() {
			return fmt.Errorf("%s: category %q is not configurable", what, c)
		}
	}
	return nil
}

// validateHTTP checks that every value of m is a three-digit HTTP status.
func validateHTTP(what string, m map[category.Category]int) error {
	for c, v := range m {
		if v < 100 || v > 599 {
			return fmt.Errorf("%s: invalid HTTP status %d for %q", what, v, c)
		}
	}
	return nil
}

// validateGRPC checks that every value of m is a canonical gRPC code other
// than OK.
func validateGRPC(what string, m map[category.Category]int) error {
	for c, v := range m {
		if v <= int(codes.OK) || v > int(codes.Unauthenticated) {
			return fmt.Errorf("%s: invalid gRPC code %d for %q", what, v, c)
		}
	}
	return nil
}

// grpcName renders a gRPC code the way Explain prints it, e.g. "NOTFOUND(5)".
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
