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

// defaultHTTP defines the built-in HTTP status per category. Descriptor is
// absent on purpose: its status comes from the error itself.
var defaultHTTP = map[category.Category]int{
	category.Route:                  http.StatusNotFound,
	category.Validate:               http.StatusBadRequest,
	category.JWTToken:               http.StatusUnauthorized,
	category.JWTTokenExpired:        http.StatusUnauthorized,
	category.JWTRefreshTokenExpired: http.StatusPaymentRequired, // 402 tells clients to log in again.
	category.InvalidArgument:        http.StatusUnsupportedMediaType,
	category.Database:               http.StatusInternalServerError,
	category.ServerError:            http.StatusInternalServerError,
}

// defaultCode defines the built-in business code per category. It mirrors
// defaultHTTP; the two only diverge through configuration.
var defaultCode = map[category.Category]int{
	category.Route:                  404,
	category.Validate:               400,
	category.JWTToken:               401,
	category.JWTTokenExpired:        401,
	category.JWTRefreshTokenExpired: 402,
	category.InvalidArgument:        415,
	category.Database:               500,
	category.ServerError:            500,
}

// defaultGRPC defines the built-in gRPC code per category.
var defaultGRPC = map[category.Category]codes.Code{
	category.Route:                  codes.Unimplemented, // Unknown method is what gRPC itself answers.
	category.Validate:               codes.InvalidArgument,
	category.JWTToken:               codes.Unauthenticated,
	category.JWTTokenExpired:        codes.Unauthenticated,
	category.JWTRefreshTokenExpired: codes.Unauthenticated,
	category.InvalidArgument:        codes.FailedPrecondition, // Server-side misconfiguration, not client input.
	category.Database:               codes.Internal,
	category.ServerError:            codes.Internal,
}

// grpcFromHTTP derives a gRPC code for descriptor errors, which only declare
// an HTTP status. Unlisted statuses map to codes.Unknown, never codes.OK, so
// an error can not turn into a successful RPC.
func grpcFromHTTP(status int) codes.Code {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound, http.StatusGone:
		return codes.NotFound
	case http.StatusConflict:
		return codes.Aborted
	case http.StatusPreconditionFailed:
		return codes.FailedPrecondition
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case 499: // nginx: client closed request
		return codes.Canceled
	case http.StatusInternalServerError:
		return codes.Internal
	case http.StatusNotImplemented:
		return codes.Unimplemented
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return codes.Unavailable
	case http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	default:
		return codes.Unknown
	}
}
