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

// Package mapper provides deterministic, immutable mappings from a matched
// error category (dirpx.dev/exception/category) to the values that end up on
// the wire: HTTP status, business code and gRPC code.
//
// # Overview
//
// The render routine classifies every error into exactly one category
// ("validate", "jwt_token", "descriptor", "server_error", ...). Package mapper
// turns that category into concrete numbers in a way that is:
//
//   - immutable: a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable: the status_code and error_code configuration replaces
//     defaults per category;
//   - independent: HTTP status and business code never influence each other.
//
// # Resolution model
//
// HTTP status and business code are resolved in the following order:
//
//  1. neutral mode (status 200 / code 0), set when the configured mapping
//     is present but empty;
//  2. configured override for the category;
//  3. the error's own values, for category.Descriptor;
//  4. per-category default;
//  5. global fallback (500 / 500).
//
// The gRPC code skips step 1 and derives descriptor codes from their HTTP
// status.
//
// # Library defaults
//
//	route                      404 / 404
//	validate                   400 / 400
//	jwt_token                  401 / 401
//	jwt_token_expired          401 / 401
//	jwt_refresh_token_expired  402 / 402
//	invalid_argument           415 / 415
//	database                   500 / 500 (not configurable)
//	server_error               500 / 500
//
// # Building a mapper
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(category.Validate, 422),
//	    mapper.WithCodeOverride(category.ServerError, 999),
//	)
//	if err != nil {
//	    // unknown or non-configurable category, bad status, etc.
//	}
//
//	st := m.Status(category.ServerError, nil)
//	// st.HTTP == 500, st.Code == 999, st.GRPC == codes.Internal
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of which tier produced each
// value. It is intended for inspection and logging, not for stable machine
// parsing.
package mapper
