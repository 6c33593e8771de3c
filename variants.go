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

package exception

import (
	"net/http"

	"dirpx.dev/exception/kind"
)

// Built-in variant kinds. The "exception" prefix alone covers all of them in
// a dont_report list.
var (
	KindBadRequest      = kind.MustParse("exception.bad_request")
	KindUnauthorized    = kind.MustParse("exception.unauthorized")
	KindForbidden       = kind.MustParse("exception.forbidden")
	KindNotFound        = kind.MustParse("exception.not_found")
	KindRouteNotFound   = kind.MustParse("exception.route_not_found")
	KindNotTeamMember   = kind.MustParse("exception.not_team_member")
	KindTooManyRequests = kind.MustParse("exception.too_many_requests")
	KindServerError     = kind.MustParse("exception.server_error")
)

// variant is the default presentation of one built-in kind.
type variant struct {
	kind    kind.Kind
	status  int
	code    int
	message string
	header  map[string]string
	data    map[string]any
}

var (
	badRequest = variant{
		kind:    KindBadRequest,
		status:  http.StatusBadRequest,
		code:    http.StatusBadRequest,
		message: "The request is malformed and cannot be processed",
	}

	unauthorized = variant{
		kind:    KindUnauthorized,
		status:  http.StatusUnauthorized,
		code:    http.StatusUnauthorized,
		message: "Authentication error",
	}

	forbidden = variant{
		kind:    KindForbidden,
		status:  http.StatusForbidden,
		code:    http.StatusForbidden,
		message: "Access to the resource is forbidden",
	}

	notFound = variant{
		kind:    KindNotFound,
		status:  http.StatusNotFound,
		code:    http.StatusNotFound,
		message: "The requested route or resource does not exist",
	}

	routeNotFound = variant{
		kind:    KindRouteNotFound,
		status:  http.StatusNotFound,
		code:    http.StatusNotFound,
		message: "The requested route does not exist",
	}

	notTeamMember = variant{
		kind:    KindNotTeamMember,
		status:  http.StatusForbidden,
		code:    http.StatusForbidden,
		message: "Not a team member",
		data: map[string]any{
			"id":   "woox2024",
			"name": "超级喜欢coding",
		},
	}

	tooManyRequests = variant{
		kind:    KindTooManyRequests,
		status:  http.StatusTooManyRequests,
		code:    http.StatusTooManyRequests,
		message: "Too many requests, please try again later",
		header: map[string]string{
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Credentials": "true",
			"Access-Control-Allow-Headers":     "Authorization,Content-Type,If-Match,If-Modified-Since,If-None-Match,If-Unmodified-Since,X-Requested-With,Origin",
			"Access-Control-Allow-Methods":     "GET,POST,PUT,DELETE,OPTIONS",
			// Maximum requests allowed in the current window.
			"X-Rate-Limit-Limit": "0",
			// Requests left in the current window.
			"X-Rate-Limit-Remaining": "0",
			// Seconds until the window resets.
			"X-Rate-Limit-Reset": "0",
		},
	}

	serverError = variant{
		kind:    KindServerError,
		status:  http.StatusInternalServerError,
		code:    http.StatusInternalServerError,
		message: "Server error",
	}
)

func (v variant) build(msg string, opts []Option) *Error {
	if msg == "" {
		msg = v.message
	}
	return build(3, v.kind, v.status, v.code, msg, v.header, v.data, opts)
}

// NewBadRequest reports a request the server cannot or will not process
// (malformed syntax, invalid parameters). 400 / 400.
func NewBadRequest(msg string, opts ...Option) *Error {
	return badRequest.build(msg, opts)
}

// NewUnauthorized reports missing or failed authentication. 401 / 401.
func NewUnauthorized(msg string, opts ...Option) *Error {
	return unauthorized.build(msg, opts)
}

// NewForbidden reports an authenticated caller lacking permission. 403 / 403.
func NewForbidden(msg string, opts ...Option) *Error {
	return forbidden.build(msg, opts)
}

// NewNotFound reports a missing route or resource. 404 / 404.
func NewNotFound(msg string, opts ...Option) *Error {
	return notFound.build(msg, opts)
}

// NewRouteNotFound reports a missing route. 404 / 404.
func NewRouteNotFound(msg string, opts ...Option) *Error {
	return routeNotFound.build(msg, opts)
}

// NewNotTeamMember reports a caller outside the team that owns the resource.
// 403 / 403, with sample data identifying the team.
func NewNotTeamMember(msg string, opts ...Option) *Error {
	return notTeamMember.build(msg, opts)
}

// NewTooManyRequests reports a rate-limited caller. 429 / 429, with CORS and
// X-Rate-Limit-* headers (all limits zeroed; override them with WithHeader).
func NewTooManyRequests(msg string, opts ...Option) *Error {
	return tooManyRequests.build(msg, opts)
}

// NewServerError reports a failure the application detected itself.
// 500 / 500. Unlike unclassified errors, the message is shown to the client.
func NewServerError(msg string, opts ...Option) *Error {
	return serverError.build(msg, opts)
}
