// Copyright 2026 Martin Feller
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grpc_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/mfeller/splitlog"
	splitgrpc "github.com/mfeller/splitlog/grpc"
)

func newBufferLogger(t *testing.T) (*splitlog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("LOG_TIMEZONE", "UTC")
	var buf bytes.Buffer
	logger, err := splitlog.New(
		splitlog.WithWriter(&buf),
		splitlog.WithLevel(splitlog.LevelDebug),
		splitlog.WithMicroseconds(false),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { logger.Close() })
	return logger, &buf
}

func TestUnaryServerInterceptorLogsOutcome(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		logger, buf := newBufferLogger(t)
		interceptor := splitgrpc.UnaryServerInterceptor(logger)

		handler := func(ctx context.Context, req any) (any, error) {
			return "resp", nil
		}
		info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Do"}

		resp, err := interceptor(context.Background(), "req", info, handler)
		if err != nil {
			t.Fatalf("interceptor: %v", err)
		}
		if resp != "resp" {
			t.Errorf("resp = %v, want passthrough", resp)
		}

		out := buf.String()
		if !strings.Contains(out, "[INFO]") {
			t.Errorf("success not logged at INFO: %q", out)
		}
		if !strings.Contains(out, "unary /test.Service/Do OK") {
			t.Errorf("line missing kind/method/code: %q", out)
		}
		if !strings.Contains(out, "[grpc]") {
			t.Errorf("line not attributed to the default component: %q", out)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		logger, buf := newBufferLogger(t)
		interceptor := splitgrpc.UnaryServerInterceptor(logger)

		handler := func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.Internal, "boom")
		}
		info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Do"}

		if _, err := interceptor(context.Background(), "req", info, handler); err == nil {
			t.Fatal("handler error swallowed")
		}

		out := buf.String()
		if !strings.Contains(out, "[ERROR]") {
			t.Errorf("Internal not logged at ERROR: %q", out)
		}
		if !strings.Contains(out, "err=boom") {
			t.Errorf("line missing error message: %q", out)
		}
	})

	t.Run("client error maps to warning", func(t *testing.T) {
		logger, buf := newBufferLogger(t)
		interceptor := splitgrpc.UnaryServerInterceptor(logger)

		handler := func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.NotFound, "nope")
		}
		info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Do"}

		_, _ = interceptor(context.Background(), "req", info, handler)
		if !strings.Contains(buf.String(), "[WARNING]") {
			t.Errorf("NotFound not logged at WARNING: %q", buf.String())
		}
	})
}

func TestUnaryServerInterceptorShouldLog(t *testing.T) {
	logger, buf := newBufferLogger(t)
	interceptor := splitgrpc.UnaryServerInterceptor(logger,
		splitgrpc.WithShouldLog(func(fullMethod string) bool {
			return !strings.Contains(fullMethod, "Health")
		}))

	handler := func(ctx context.Context, req any) (any, error) { return nil, nil }

	_, _ = interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, handler)
	if buf.Len() != 0 {
		t.Errorf("filtered call was logged: %q", buf.String())
	}

	_, _ = interceptor(context.Background(), nil,
		&grpc.UnaryServerInfo{FullMethod: "/test.Service/Do"}, handler)
	if buf.Len() == 0 {
		t.Error("unfiltered call was not logged")
	}
}

func TestUnaryServerInterceptorPayloadLogging(t *testing.T) {
	logger, buf := newBufferLogger(t)
	interceptor := splitgrpc.UnaryServerInterceptor(logger,
		splitgrpc.WithPayloadLogging(true))

	req := wrapperspb.String("ping")
	handler := func(ctx context.Context, got any) (any, error) {
		return wrapperspb.String("pong"), nil
	}
	info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Echo"}

	if _, err := interceptor(context.Background(), req, info, handler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "payload received") || !strings.Contains(out, "ping") {
		t.Errorf("request payload not logged: %q", out)
	}
	if !strings.Contains(out, "payload sent") || !strings.Contains(out, "pong") {
		t.Errorf("response payload not logged: %q", out)
	}
	if !strings.Contains(out, "[DEBUG]") {
		t.Errorf("payloads not logged at DEBUG: %q", out)
	}
}

func TestUnaryServerInterceptorPayloadTruncation(t *testing.T) {
	logger, buf := newBufferLogger(t)
	interceptor := splitgrpc.UnaryServerInterceptor(logger,
		splitgrpc.WithPayloadLogging(true),
		splitgrpc.WithMaxPayloadSize(10))

	req := wrapperspb.String(strings.Repeat("x", 100))
	handler := func(ctx context.Context, got any) (any, error) { return nil, nil }
	info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Echo"}

	_, _ = interceptor(context.Background(), req, info, handler)
	if !strings.Contains(buf.String(), "truncated from") {
		t.Errorf("oversized payload not truncated: %q", buf.String())
	}
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeServerStream) Context() context.Context { return f.ctx }

func TestStreamServerInterceptor(t *testing.T) {
	logger, buf := newBufferLogger(t)
	interceptor := splitgrpc.StreamServerInterceptor(logger)

	handler := func(srv any, stream grpc.ServerStream) error {
		if stream.Context() == nil {
			t.Error("handler saw nil context")
		}
		return nil
	}
	info := &grpc.StreamServerInfo{FullMethod: "/test.Service/Watch", IsServerStream: true}

	err := interceptor(nil, &fakeServerStream{ctx: context.Background()}, info, handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "server_stream /test.Service/Watch OK") {
		t.Errorf("stream outcome not logged: %q", out)
	}
}

func TestUnaryClientInterceptor(t *testing.T) {
	logger, buf := newBufferLogger(t)
	interceptor := splitgrpc.UnaryClientInterceptor(logger)

	invoker := func(ctx context.Context, method string, req, reply any,
		cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		return status.Error(codes.Unavailable, "down")
	}

	err := interceptor(context.Background(), "/test.Service/Do", nil, nil, nil, invoker)
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("invoker error not passed through: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "unary_client /test.Service/Do Unavailable") {
		t.Errorf("client outcome not logged: %q", out)
	}
	if !strings.Contains(out, "[WARNING]") {
		t.Errorf("Unavailable not logged at WARNING: %q", out)
	}
}

func TestServerAndDialOptionBundles(t *testing.T) {
	logger, _ := newBufferLogger(t)

	if got := splitgrpc.ServerOptions(logger); len(got) != 3 {
		t.Errorf("ServerOptions returned %d options, want 3", len(got))
	}
	if got := splitgrpc.DialOptions(logger); len(got) != 2 {
		t.Errorf("DialOptions returned %d options, want 2", len(got))
	}
}
