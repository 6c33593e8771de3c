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
	"net/http"

	"dirpx.dev/exception"
	"dirpx.dev/exception/render"
	"dirpx.dev/exception/requestid"
)

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to http.Handler. Returned errors and recovered panics are
// reported and rendered with h, unless fn already wrote a response.
//
// When h is disabled errors fall back to a bare 500 and panics propagate to
// net/http.
func Handle(h *render.Handler, fn HandlerFunc) http.Handler {
	w := Writer{Handler: h}
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		tw := &trackingWriter{ResponseWriter: rw}
		if h.Enabled() {
			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					w.Write(tw, r, exception.FromPanic(v))
				}
			}()
		}
		if err := fn(tw, r); err != nil {
			w.Write(tw, r, err)
		}
	})
}

// Writer turns errors into HTTP responses.
type Writer struct {
	Handler *render.Handler
}

// Write reports err, renders it and writes the result to rw. When rw already
// carries a response the error is still reported and logged, but nothing is
// written.
func (w Writer) Write(rw http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	tw, ok := rw.(*trackingWriter)
	committed := ok && tw.wrote
	if !w.Handler.Enabled() {
		if !committed {
			http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}
	w.Handler.Report(r.Context(), err)
	if committed {
		w.Handler.Resolve(NewRequest(r), err)
		return
	}
	Write(rw, w.Handler.Render(NewRequest(r), err))
}

// Write copies a rendered response to rw. A nil resp writes nothing.
func Write(rw http.ResponseWriter, resp *render.Response) {
	if resp == nil {
		return
	}
	for k, vs := range resp.Header {
		rw.Header()[k] = append([]string(nil), vs...)
	}
	rw.WriteHeader(resp.Status)
	_, _ = rw.Write(resp.Body)
}

// RequestID makes sure every request carries an id. An inbound X-Request-ID
// is kept, otherwise a UUID v4 is generated. The id is stored on the request
// context and echoed in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestid.Header)
		if id == "" {
			id = requestid.New()
		}
		rw.Header().Set(requestid.Header, id)
		next.ServeHTTP(rw, r.WithContext(requestid.NewContext(r.Context(), id)))
	})
}

// trackingWriter records whether the handler started a response.
type trackingWriter struct {
	http.ResponseWriter
	wrote bool
}

func (t *trackingWriter) WriteHeader(code int) {
	t.wrote = true
	t.ResponseWriter.WriteHeader(code)
}

func (t *trackingWriter) Write(b []byte) (int, error) {
	t.wrote = true
	return t.ResponseWriter.Write(b)
}

func (t *trackingWriter) Unwrap() http.ResponseWriter { return t.ResponseWriter }
