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

package apis

import (
	"dirpx.dev/exception/category"
	"google.golang.org/grpc/codes"
)

// Mapper is an immutable, concurrency-safe resolver from a matched category
// to the statuses that end up on the wire.
type Mapper interface {
	// Status resolves the HTTP status, the business code and the gRPC code
	// for c. d is consulted for category.Descriptor and may be nil for every
	// other category.
	Status(c category.Category, d Descriptor) Status

	// Explain returns a human-readable description of which rule produced
	// each value.
	Explain(c category.Category, d Descriptor) string
}

// Status is the resolved triple for a single error.
type Status struct {
	HTTP int        // HTTP response status (net/http compatible).
	Code int        // Business code placed in the response body.
	GRPC codes.Code // gRPC status code used by the gRPC integration.
}
