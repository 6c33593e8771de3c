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

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/exception"
	"dirpx.dev/exception/adapter"
	"dirpx.dev/exception/category"
	"dirpx.dev/exception/render"
	"dirpx.dev/exception/requestid"
)

const (
	// TraceIDKey is the response header metadata key carrying the trace id.
	TraceIDKey = "trace-id"

	// RequestIDKey is the metadata key the request id travels in.
	RequestIDKey = "x-request-id"
)

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that reports
// and renders handler errors and panics with h.
//
// The returned status carries the resolved gRPC code and client message, and
// the rendered body as a google.protobuf.Struct detail, so gRPC clients see
// the same {code, msg, data} document HTTP clients do.
//
// Errors that already are gRPC statuses and match no other category are
// returned as is. When h is disabled every error is returned as is.
func UnaryServerInterceptor(h *render.Handler) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		if !h.Enabled() {
			return handler(ctx, req)
		}
		ctx = withRequestID(ctx)

		defer func() {
			if v := recover(); v != nil {
				resp, err = nil, toStatus(ctx, h, NewRequest(ctx, info.FullMethod, req), exception.FromPanic(v))
			}
		}()

		resp, err = handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		if st, ok := gstatus.FromError(err); ok && render.Classify(err) == category.ServerError {
			// Not ours.
			return nil, st.Err()
		}
		return nil, toStatus(ctx, h, NewRequest(ctx, info.FullMethod, req), err)
	}
}

func toStatus(ctx context.Context, h *render.Handler, req *Request, err error) error {
	h.Report(ctx, err)
	res := h.Resolve(req, err)

	if res.TraceID != "" {
		_ = grpc.SetHeader(ctx, metadata.Pairs(TraceIDKey, res.TraceID))
	}

	code := res.Status.GRPC
	if code == gcodes.OK {
		code = gcodes.Unknown
	}
	base := gstatus.New(code, res.Message)

	// Try to attach the body as details. If it fails, return base.
	body, bErr := adapter.ToStruct(adapter.ToBody(res, h.Fields()))
	if bErr != nil {
		return base.Err()
	}
	if with, dErr := base.WithDetails(body); dErr == nil {
		return with.Err()
	}
	return base.Err()
}

// withRequestID stores the inbound x-request-id on ctx, generating one when
// the caller sent none, and echoes it in the response header.
func withRequestID(ctx context.Context) context.Context {
	if requestid.FromContext(ctx) != "" {
		return ctx
	}
	id := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vs := md.Get(RequestIDKey); len(vs) > 0 {
			id = vs[0]
		}
	}
	if id == "" {
		id = requestid.New()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDKey, id))
	return requestid.NewContext(ctx, id)
}

// ExtractBody pulls the rendered body out of a gRPC error, if present.
// Useful in tests and client code.
func ExtractBody(err error) (*structpb.Struct, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if s, ok := d.(*structpb.Struct); ok {
			return s, true
		}
	}
	return nil, false
}
