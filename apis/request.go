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

import "context"

// Request is the view of an inbound request the renderer needs. Transports
// adapt their native request type to it (see httpx and grpcx).
type Request interface {
	// Context returns the request context. Tracing spans and request ids
	// are looked up here.
	Context() context.Context

	// Host returns the host the request was addressed to.
	Host() string

	// Method returns the request method, e.g. "GET".
	Method() string

	// URI returns the request URI including the query string.
	URI() string

	// RealIP returns the best guess of the client address.
	RealIP() string

	// Params returns every request parameter. May return nil.
	Params() map[string]any
}

// RequestInfo is the request metadata merged into every error response.
type RequestInfo struct {
	Domain     string
	Method     string
	RequestURL string
	Timestamp  string
	ClientIP   string
	Params     map[string]any
	RequestID  string
}

// Fields returns the metadata under the keys used in the response data.
// request_id is only present when RequestID is set.
func (ri RequestInfo) Fields() map[string]any {
	params := ri.Params
	if params == nil {
		params = map[string]any{}
	}
	m := map[string]any{
		"domain":        ri.Domain,
		"method":        ri.Method,
		"request_url":   ri.RequestURL,
		"timestamp":     ri.Timestamp,
		"client_ip":     ri.ClientIP,
		"request_param": params,
	}
	if ri.RequestID != "" {
		m["request_id"] = ri.RequestID
	}
	return m
}
