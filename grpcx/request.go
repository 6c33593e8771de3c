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

package grpcx

import (
	"context"
	"encoding/json"
	"net"
	"strings"

	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"dirpx.dev/exception/apis"
)

// Request adapts a unary call to apis.Request.
type Request struct {
	ctx    context.Context
	method string
	msg    any
}

var _ apis.Request = (*Request)(nil)

// NewRequest describes the call to fullMethod carrying msg.
func NewRequest(ctx context.Context, fullMethod string, msg any) *Request {
	return &Request{ctx: ctx, method: fullMethod, msg: msg}
}

func (r *Request) Context() context.Context { return r.ctx }

// Host returns the :authority pseudo-header.
func (r *Request) Host() string { return r.first(":authority") }

// Method is always POST, the HTTP/2 method every gRPC call uses.
func (r *Request) Method() string { return "POST" }

// URI returns the full method name, e.g. "/users.v1.Users/Get".
func (r *Request) URI() string { return r.method }

// RealIP checks the x-forwarded-for and x-real-ip metadata set by proxies,
// then falls back to the peer address.
func (r *Request) RealIP() string {
	if xff := r.first("x-forwarded-for"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.first("x-real-ip")); ip != "" {
		return ip
	}
	p, ok := peer.FromContext(r.ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// Params returns the request message in its protojson form. Messages that
// are not protobuf yield nil.
func (r *Request) Params() map[string]any {
	m, ok := r.msg.(proto.Message)
	if !ok || m == nil {
		return nil
	}
	raw, err := protojson.Marshal(m)
	if err != nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func (r *Request) first(key string) string {
	md, ok := metadata.FromIncomingContext(r.ctx)
	if !ok {
		return ""
	}
	if vs := md.Get(key); len(vs) > 0 {
		return vs[0]
	}
	return ""
}
