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
	"testing"

	"dirpx.dev/exception/apis"
	"dirpx.dev/exception/category"
	"dirpx.dev/exception/kind"
	"google.golang.org/grpc/codes"
)

func sampleResult() apis.Result {
	return apis.Result{
		Category: category.Descriptor,
		Kind:     kind.MustParse("exception.not_team_member"),
		Status:   apis.Status{HTTP: 403, Code: 403, GRPC: codes.PermissionDenied},
		Message:  "not a member",
		Internal: "team 7",
		Data:     map[string]any{"id": "woox2024"},
	}
}

func TestToBody_PositionalNames(t *testing.T) {
	b := ToBody(sampleResult(), apis.BodyFields{"status", "message", "payload"})
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"status":403,"message":"not a member","payload":{"id":"woox2024"}}`
	if string(raw) != want {
		t.Fatalf("got %s\nwant %s", raw, want)
	}
}

func TestToBody_NeverCarriesInternal(t *testing.T) {
	raw, _ := json.Marshal(ToBody(sampleResult(), apis.DefaultBodyFields))
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(m) != 3 {
		t.Fatalf("body must have exactly 3 members, got %v", m)
	}
	for _, v := range m {
		if s, ok := v.(string); ok && s == "team 7" {
			t.Fatal("internal detail leaked")
		}
	}
}

func TestToStruct(t *testing.T) {
	s, err := ToStruct(ToBody(sampleResult(), apis.DefaultBodyFields))
	if err != nil {
		t.Fatalf("ToStruct: %v", err)
	}
	f := s.GetFields()
	if f["code"].GetNumberValue() != 403 {
		t.Fatalf("code: %v", f["code"])
	}
	if f["msg"].GetStringValue() != "not a member" {
		t.Fatalf("msg: %v", f["msg"])
	}
	if f["data"].GetStructValue().GetFields()["id"].GetStringValue() != "woox2024" {
		t.Fatalf("data: %v", f["data"])
	}
}

func TestToStruct_Unencodable(t *testing.T) {
	res := sampleResult()
	res.Data = map[string]any{"ch": make(chan int)}
	if _, err := ToStruct(ToBody(res, apis.DefaultBodyFields)); err == nil {
		t.Fatal("expected encode error")
	}
}

func TestToLogFields(t *testing.T) {
	f := ToLogFields(sampleResult())
	if f["category"] != "descriptor" || f["kind"] != "exception.not_team_member" {
		t.Fatalf("classification missing: %v", f)
	}
	if f["error"] != "team 7" {
		t.Fatalf("internal detail missing: %v", f)
	}
	if f["grpc_code"] != "PermissionDenied" {
		t.Fatalf("grpc code: %v", f["grpc_code"])
	}
	if _, ok := f["trace_id"]; ok {
		t.Fatal("trace_id must be absent without a trace")
	}
	if _, ok := f["id"]; ok {
		t.Fatal("client data must not be logged")
	}
}
