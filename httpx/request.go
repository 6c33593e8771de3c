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

package httpx

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"

	"dirpx.dev/exception/apis"
)

// NewRequest adapts r to apis.Request. Parameters are the query string plus,
// for form posts, the parsed body; a body that can not be parsed contributes
// nothing.
func NewRequest(r *http.Request) apis.Request {
	_ = r.ParseForm()
	return request{r: r}
}

type request struct{ r *http.Request }

func (q request) Context() context.Context { return q.r.Context() }

func (q request) Host() string { return q.r.Host }

func (q request) Method() string { return q.r.Method }

func (q request) URI() string {
	if q.r.RequestURI != "" {
		return q.r.RequestURI
	}
	return q.r.URL.RequestURI()
}

// RealIP checks Client-IP, the first X-Forwarded-For hop and X-Real-IP, in
// that order, then falls back to the peer address.
func (q request) RealIP() string {
	if ip := strings.TrimSpace(q.r.Header.Get("Client-IP")); ip != "" {
		return ip
	}
	if xff := q.r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(q.r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(q.r.RemoteAddr)
	if err != nil {
		return q.r.RemoteAddr
	}
	return host
}

func (q request) Params() map[string]any {
	form := q.r.Form
	if form == nil {
		form = q.r.URL.Query()
	}
	return values(form)
}

// values flattens v: single values become strings, repeated keys keep the
// full list.
func values(v url.Values) map[string]any {
	out := make(map[string]any, len(v))
	for k, vs := range v {
		switch len(vs) {
		case 0:
			out[k] = ""
		case 1:
			out[k] = vs[0]
		default:
			out[k] = append([]string(nil), vs...)
		}
	}
	return out
}
