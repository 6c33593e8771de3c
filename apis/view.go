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
	"bytes"
	"encoding/json"

	"dirpx.dev/exception/category"
	"dirpx.dev/exception/kind"
)

// Result is everything the render routine resolved for one error. It is
// created per request and discarded once the response is written.
type Result struct {
	// Category is the classification branch that matched.
	Category category.Category

	// Kind is the most specific kind found on the error, or the category
	// name when the error declares none.
	Kind kind.Kind

	// Status holds the resolved HTTP status, business code and gRPC code.
	Status Status

	// Message is what the client sees.
	Message string

	// Internal is detail kept out of the response, for logs only.
	Internal string

	// Header holds descriptor headers plus Trace-Id when tracing is active.
	Header map[string]string

	// Data is request metadata, descriptor data and, in debug mode, the
	// debug fields.
	Data map[string]any

	// TraceID is the hex trace id when the request carried a span.
	TraceID string
}

// BodyFields names the (code, message, data) members of the response body,
// in that order.
type BodyFields [3]string

// DefaultBodyFields is used for any position left empty.
var DefaultBodyFields = BodyFields{"code", "msg", "data"}

// Name returns the field name at position i, falling back to the default.
func (f BodyFields) Name(i int) string {
	if f[i] == "" {
		return DefaultBodyFields[i]
	}
	return f[i]
}

// Body is the JSON document sent to the client.
type Body struct {
	Fields  BodyFields
	Code    int
	Message string
	Data    map[string]any
}

// MarshalJSON writes the three members in positional order under the names
// in Fields.
func (b Body) MarshalJSON() ([]byte, error) {
	values := [3]any{b.Code, b.Message, b.Data}
	if b.Data == nil {
		values[2] = map[string]any{}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(b.Fields.Name(i))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
