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

package category

// Collaborator categories
//
// Errors produced by libraries the host application uses (router, validator,
// token parser, database driver). They are detected, never produced, by this
// module.
const (
	// Route indicates the router could not match the request (404/405).
	//
	// Can be overridden via the "route" key. Default HTTP 404, code 404.
	Route Category = "route"

	// Validate indicates request input failed struct validation.
	//
	// Can be overridden via the "validate" key. Default HTTP 400, code 400.
	Validate Category = "validate"

	// JWTToken indicates the bearer token is malformed, unsigned, carries a
	// bad signature or otherwise fails verification (anything but expiry).
	//
	// Can be overridden via the "jwt_token" key. Default HTTP 401, code 401.
	JWTToken Category = "jwt_token"

	// JWTTokenExpired indicates the access token is past its exp claim.
	//
	// Can be overridden via the "jwt_token_expired" key. Default HTTP 401, code 401.
	JWTTokenExpired Category = "jwt_token_expired"

	// JWTRefreshTokenExpired indicates the refresh token is expired and the
	// client has to authenticate again.
	//
	// Can be overridden via the "jwt_refresh_token_expired" key.
	// Default HTTP 402, code 402.
	JWTRefreshTokenExpired Category = "jwt_refresh_token_expired"

	// InvalidArgument indicates a programming or configuration error around
	// arguments passed to a library (not user input).
	//
	// Can be overridden via the "invalid_argument" key. Default HTTP 415, code 415.
	InvalidArgument Category = "invalid_argument"

	// Database indicates a failed query or a missing record. Always logged.
	//
	// Fixed at HTTP 500, code 500; only neutral mode changes it.
	Database Category = "database"
)

// Local categories
const (
	// Descriptor indicates the error carries its own presentation
	// (an exception variant). Status and code come from the error itself.
	Descriptor Category = "descriptor"

	// ServerError is the catch-all for anything not classified above.
	// The client only ever sees a generic message.
	//
	// Can be overridden via the "server_error" key. Default HTTP 500, code 500.
	ServerError Category = "server_error"
)

// All lists every category in classification order: earlier entries win when
// an error matches more than one.
var All = []Category{
	Route,
	Validate,
	JWTToken,
	JWTTokenExpired,
	JWTRefreshTokenExpired,
	InvalidArgument,
	Database,
	Descriptor,
	ServerError,
}

// Known reports whether c is one of All.
func (c Category) Known() bool {
	for _, k := range All {
		if k == c {
			return true
		}
	}
	return false
}

// Configurable reports whether c may appear as a key in the status_code and
// error_code override mappings. Database and Descriptor resolve their values
// elsewhere and are not configurable.
func (c Category) Configurable() bool {
	switch c {
	case Route, Validate, JWTToken, JWTTokenExpired, JWTRefreshTokenExpired, InvalidArgument, ServerError:
		return true
	default:
		return false
	}
}
