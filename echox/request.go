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

package echox

import (
	"context"

	"github.com/labstack/echo/v4"

	"dirpx.dev/exception/apis"
)

// NewRequest adapts an echo context to apis.Request. Parameters merge the
// query string, form values and path parameters, later sources winning.
func NewRequest(c echo.Context) apis.Request {
	return request{c: c}
}

type request struct{ c echo.Context }

func (q request) Context() context.Context { return q.c.Request().Context() }

func (q request) Host() string { return q.c.Request().Host }

func (q request) Method() string { return q.c.Request().Method }

func (q request) URI() string {
	r := q.c.Request()
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}

// RealIP defers to echo, which honours the configured IPExtractor.
func (q request) RealIP() string { return q.c.RealIP() }

func (q request) Params() map[string]any {
	out := map[string]any{}
	add := func(k string, vs []string) {
		switch len(vs) {
		case 0:
			out[k] = ""
		case 1:
			out[k] = vs[0]
		default:
			out[k] = append([]string(nil), vs...)
		}
	}
	for k, vs := range q.c.QueryParams() {
		add(k, vs)
	}
	if form, err := q.c.FormParams(); err == nil {
		for k, vs := range form {
			add(k, vs)
		}
	}
	values := q.c.ParamValues()
	for i, name := range q.c.ParamNames() {
		if i < len(values) {
			out[name] = values[i]
		}
	}
	return out
}
