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
	"database/sql"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"dirpx.dev/exception"
	"dirpx.dev/exception/config"
	"dirpx.dev/exception/render"
)

var info = &grpc.UnaryServerInfo{FullMethod: "/users.v1.Users/Get"}

func newHandler(t *testing.T, cfg *config.Config) *render.Handler {
	t.Helper()
	h, err := render.New(cfg, nil)
	require.NoError(t, err)
	return h
}

func failing(err error) grpc.UnaryHandler {
	return func(context.Context, any) (any, error) { return nil, err }
}

func TestInterceptor_Descriptor(t *testing.T) {
	icpt := UnaryServerInterceptor(newHandler(t, nil))
	_, err := icpt(context.Background(), nil, info, failing(exception.NewForbidden("not yours")))

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	require.Equal(t, gcodes.PermissionDenied, st.Code())
	require.Equal(t, "not yours", st.Message())

	body, ok := ExtractBody(err)
	require.True(t, ok)
	f := body.GetFields()
	require.EqualValues(t, 403, f["code"].GetNumberValue())
	require.Equal(t, "not yours", f["msg"].GetStringValue())
	data := f["data"].GetStructValue().GetFields()
	require.Equal(t, "POST /users.v1.Users/Get", data["request_url"].GetStringValue())
	require.NotEmpty(t, data["request_id"].GetStringValue())
}

func TestInterceptor_Categories(t *testing.T) {
	icpt := UnaryServerInterceptor(newHandler(t, nil))
	tests := []struct {
		name string
		err  error
		code gcodes.Code
		msg  string
	}{
		{"database", sql.ErrNoRows, gcodes.Internal, "Db: sql: no rows in result set"},
		{"invalid argument", exception.ErrInvalidArgument, gcodes.FailedPrecondition, render.InvalidArgumentPrefix + "invalid argument"},
		{"server error", errors.New("boom"), gcodes.Internal, render.InternalServerErrorMessage},
		{"rate limited", exception.NewTooManyRequests(""), gcodes.ResourceExhausted, "Too many requests, please try again later"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := icpt(context.Background(), nil, info, failing(tt.err))
			st := gstatus.Convert(err)
			require.Equal(t, tt.code, st.Code())
			if tt.msg != "" {
				require.Equal(t, tt.msg, st.Message())
			}
		})
	}
}

func TestInterceptor_PassThrough(t *testing.T) {
	icpt := UnaryServerInterceptor(newHandler(t, nil))

	resp, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", resp)

	native := gstatus.Error(gcodes.NotFound, "no such user")
	_, err = icpt(context.Background(), nil, info, failing(native))
	require.Equal(t, gcodes.NotFound, gstatus.Code(err))
	_, ok := ExtractBody(err)
	require.False(t, ok)
}

func TestInterceptor_Panic(t *testing.T) {
	icpt := UnaryServerInterceptor(newHandler(t, nil))
	_, err := icpt(context.Background(), nil, info, func(context.Context, any) (any, error) {
		panic("nil map write")
	})
	st := gstatus.Convert(err)
	require.Equal(t, gcodes.Internal, st.Code())
	require.Equal(t, render.InternalServerErrorMessage, st.Message())
}

func TestInterceptor_Disabled(t *testing.T) {
	cfg := config.Default()
	cfg.Enable = false
	icpt := UnaryServerInterceptor(newHandler(t, cfg))

	in := exception.NewForbidden("")
	_, err := icpt(context.Background(), nil, info, failing(in))
	require.Same(t, in, err)
}

func TestExtractBody_NotStatus(t *testing.T) {
	_, ok := ExtractBody(nil)
	require.False(t, ok)
	_, ok = ExtractBody(errors.New("plain"))
	require.False(t, ok)
}

func TestRequest(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		":authority", "users.internal:443",
		"x-forwarded-for", "198.51.100.2, 10.0.0.1",
	))
	ctx = peer.NewContext(ctx, &peer.Peer{Addr: &net.TCPAddr{IP: net.IPv4(192, 0, 2, 1), Port: 5555}})

	r := NewRequest(ctx, info.FullMethod, &grpc_health_v1.HealthCheckRequest{Service: "users"})
	require.Equal(t, "users.internal:443", r.Host())
	require.Equal(t, "POST", r.Method())
	require.Equal(t, "/users.v1.Users/Get", r.URI())
	require.Equal(t, "198.51.100.2", r.RealIP())
	require.Equal(t, map[string]any{"service": "users"}, r.Params())

	bare := NewRequest(peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.IPv4(192, 0, 2, 1), Port: 5555}}), "/x", "not proto")
	require.Equal(t, "192.0.2.1", bare.RealIP())
	require.Nil(t, bare.Params())
	require.Empty(t, bare.Host())
}

type healthServer struct {
	grpc_health_v1.UnimplementedHealthServer
	err error
}

func (s healthServer) Check(context.Context, *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	return nil, s.err
}

func dial(t *testing.T, failWith error, opts ...grpc.ServerOption) grpc_health_v1.HealthClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(opts...)
	grpc_health_v1.RegisterHealthServer(srv, healthServer{err: failWith})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return grpc_health_v1.NewHealthClient(conn)
}

func TestServer_EndToEnd(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	// Start a server span ahead of the renderer so it has a trace to attach
	// to.
	traced := grpc.ChainUnaryInterceptor(
		func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
			ctx, span := tp.Tracer("test").Start(ctx, info.FullMethod)
			defer span.End()
			return next(ctx, req)
		},
		UnaryServerInterceptor(newHandler(t, nil)),
	)
	client := dial(t, exception.NewNotFound("no such service"), traced)

	ctx := metadata.AppendToOutgoingContext(context.Background(), RequestIDKey, "req-42")
	var header metadata.MD
	_, err := client.Check(ctx,
		&grpc_health_v1.HealthCheckRequest{Service: "users"}, grpc.Header(&header))

	require.Equal(t, gcodes.NotFound, gstatus.Code(err))
	require.Equal(t, []string{"req-42"}, header.Get(RequestIDKey))
	require.Len(t, header.Get(TraceIDKey), 1)
	require.Len(t, header.Get(TraceIDKey)[0], 32)

	body, ok := ExtractBody(err)
	require.True(t, ok)
	data := body.GetFields()["data"].GetStructValue().GetFields()
	require.Equal(t, "users", data["request_param"].GetStructValue().GetFields()["service"].GetStringValue())
	require.Equal(t, "req-42", data["request_id"].GetStringValue())
}

func TestServer_DatabaseError(t *testing.T) {
	client := dial(t, sql.ErrNoRows,
		grpc.ChainUnaryInterceptor(UnaryServerInterceptor(newHandler(t, nil))))
	_, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.Equal(t, gcodes.Internal, gstatus.Code(err))
	require.Equal(t, "Db: sql: no rows in result set", gstatus.Convert(err).Message())
}
