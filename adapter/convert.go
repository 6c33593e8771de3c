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

package adapter

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/exception/apis"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToBody converts a resolved Result into the wire body using the configured
// member names.
//
// The body exposes exactly what the Result contains: business code, client
// message and data. Internal detail never reaches it.
func ToBody(res apis.Result, fields apis.BodyFields) apis.Body {
	return apis.Body{
		Fields:  fields,
		Code:    res.Status.Code,
		Message: res.Message,
		Data:    res.Data,
	}
}

// ToStruct converts the wire body into a protobuf Struct, for transports
// that carry the body as a message (gRPC status details).
//
// The body goes through its JSON form so that member names and value
// conversions are identical to the HTTP response.
func ToStruct(b apis.Body) (*structpb.Struct, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("adapter: encode body: %w", err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("adapter: body to struct: %w", err)
	}
	return s, nil
}

// ToLogFields converts a Result into structured log fields.
//
// Unlike ToBody it carries the classification and the internal detail, and
// leaves out the client data.
func ToLogFields(res apis.Result) map[string]any {
	f := map[string]any{
		"category":    string(res.Category),
		"kind":        string(res.Kind),
		"http_status": res.Status.HTTP,
		"code":        res.Status.Code,
		"grpc_code":   res.Status.GRPC.String(),
		"message":     res.Message,
	}
	if res.Internal != "" {
		f["error"] = res.Internal
	}
	if res.TraceID != "" {
		f["trace_id"] = res.TraceID
	}
	return f
}
