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

package render

import (
	"encoding/json"
	"net/http"

	"dirpx.dev/exception/adapter"
	"dirpx.dev/exception/apis"
)

// ContentType is set on every rendered response.
const ContentType = "application/json;charset=utf-8"

// Response is a rendered error, ready to be written by a transport.
type Response struct {
	Status int
	Header http.Header
	Body   []byte

	// Result is what the body was built from.
	Result apis.Result
}

// Render resolves err and serializes it. Headers start with the JSON content
// type; error headers and Trace-Id are applied on top and win on conflict.
// A nil err renders nothing.
func (h *Handler) Render(req apis.Request, err error) *Response {
	if err == nil {
		return nil
	}
	res := h.Resolve(req, err)

	body, mErr := json.Marshal(adapter.ToBody(res, h.fields))
	if mErr != nil {
		// Data holds something JSON can not encode; keep the response
		// well-formed and log what was dropped.
		h.log.Error("exception: response data is not encodable", map[string]any{
			"error":    mErr.Error(),
			"category": string(res.Category),
		})
		res.Data = map[string]any{}
		body, _ = json.Marshal(adapter.ToBody(res, h.fields))
	}

	header := make(http.Header, len(res.Header)+1)
	header.Set("Content-Type", ContentType)
	for k, v := range res.Header {
		header.Set(k, v)
	}

	return &Response{
		Status: res.Status.HTTP,
		Header: header,
		Body:   body,
		Result: res,
	}
}
