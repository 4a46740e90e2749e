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

package grpc

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/mfeller/splitlog"
)

// UnaryServerInterceptor returns an interceptor that logs one line per
// completed unary RPC:
//
//	unary /billing.Invoices/Create OK 2.1ms peer=10.0.0.7:53211 trace=4bf92f3577b34da6a3ce929d0e0e4736
//
// The level comes from the final status code (see WithLevels). With
// payload logging enabled the request and response messages are logged at
// DEBUG before and after the line.
func UnaryServerInterceptor(logger *splitlog.Logger, opts ...Option) grpc.UnaryServerInterceptor {
	cfg := applyOptions(opts)
	bound := logger.For(cfg.component)

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !cfg.shouldLog(info.FullMethod) {
			return handler(ctx, req)
		}

		ctx = cfg.extractTraceContext(ctx)
		start := time.Now()

		if cfg.logPayloads {
			logPayload(bound, cfg, "received", req)
		}

		resp, err := handler(ctx, req)

		if cfg.logPayloads && err == nil {
			logPayload(bound, cfg, "sent", resp)
		}
		logCall(ctx, bound, cfg, "unary", info.FullMethod, err, time.Since(start))
		return resp, err
	}
}

// StreamServerInterceptor returns an interceptor that logs one line per
// completed streaming RPC. Individual messages are not logged; only the
// final outcome is.
func StreamServerInterceptor(logger *splitlog.Logger, opts ...Option) grpc.StreamServerInterceptor {
	cfg := applyOptions(opts)
	bound := logger.For(cfg.component)

	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !cfg.shouldLog(info.FullMethod) {
			return handler(srv, ss)
		}

		ctx := cfg.extractTraceContext(ss.Context())
		start := time.Now()

		err := handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})

		kind := "stream"
		switch {
		case info.IsClientStream && info.IsServerStream:
			kind = "bidi_stream"
		case info.IsClientStream:
			kind = "client_stream"
		case info.IsServerStream:
			kind = "server_stream"
		}
		logCall(ctx, bound, cfg, kind, info.FullMethod, err, time.Since(start))
		return err
	}
}

// UnaryClientInterceptor returns an interceptor that logs one line per
// completed outgoing unary call, in the same form as the server side.
func UnaryClientInterceptor(logger *splitlog.Logger, opts ...Option) grpc.UnaryClientInterceptor {
	cfg := applyOptions(opts)
	bound := logger.For(cfg.component)

	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker, callOpts ...grpc.CallOption) error {
		if !cfg.shouldLog(method) {
			return invoker(ctx, method, req, reply, cc, callOpts...)
		}

		start := time.Now()
		if cfg.logPayloads {
			logPayload(bound, cfg, "sent", req)
		}

		err := invoker(ctx, method, req, reply, cc, callOpts...)

		if cfg.logPayloads && err == nil {
			logPayload(bound, cfg, "received", reply)
		}
		logCall(ctx, bound, cfg, "unary_client", method, err, time.Since(start))
		return err
	}
}

// ServerOptions bundles the server interceptors with otelgrpc stats
// handlers, for servers that want spans as well as log lines.
func ServerOptions(logger *splitlog.Logger, opts ...Option) []grpc.ServerOption {
	cfg := applyOptions(opts)
	return []grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler(statsHandlerOptions(cfg)...)),
		grpc.ChainUnaryInterceptor(UnaryServerInterceptor(logger, opts...)),
		grpc.ChainStreamInterceptor(StreamServerInterceptor(logger, opts...)),
	}
}

// DialOptions bundles the client interceptor with an otelgrpc stats
// handler.
func DialOptions(logger *splitlog.Logger, opts ...Option) []grpc.DialOption {
	cfg := applyOptions(opts)
	return []grpc.DialOption{
		grpc.WithStatsHandler(otelgrpc.NewClientHandler(statsHandlerOptions(cfg)...)),
		grpc.WithChainUnaryInterceptor(UnaryClientInterceptor(logger, opts...)),
	}
}

func statsHandlerOptions(cfg *config) []otelgrpc.Option {
	var handlerOpts []otelgrpc.Option
	if cfg.tracerProvider != nil {
		handlerOpts = append(handlerOpts, otelgrpc.WithTracerProvider(cfg.tracerProvider))
	}
	if cfg.propagatorsSet && cfg.propagators != nil {
		handlerOpts = append(handlerOpts, otelgrpc.WithPropagators(cfg.propagators))
	}
	return handlerOpts
}

func logCall(ctx context.Context, bound *splitlog.Logger, cfg *config, kind, fullMethod string, err error, elapsed time.Duration) {
	code := status.Code(err)
	line := fmt.Sprintf("%s %s %s %s", kind, fullMethod, code, elapsed.Round(time.Microsecond))
	if p, ok := peer.FromContext(ctx); ok {
		line += " peer=" + p.Addr.String()
	}
	if err != nil {
		if s, ok := status.FromError(err); ok && s.Message() != "" {
			line += " err=" + s.Message()
		} else {
			line += " err=" + err.Error()
		}
	}
	if traceID := splitlog.TraceID(ctx); traceID != "" {
		line += " trace=" + traceID
	}
	// A sink failure must never fail the RPC.
	_ = bound.Log(cfg.levelFunc(code), line)
}

// extractTraceContext pulls trace context out of incoming metadata using
// the global OpenTelemetry propagator, so logged lines correlate with
// upstream spans even without an otelgrpc stats handler installed.
func (c *config) extractTraceContext(ctx context.Context) context.Context {
	if !c.extractTrace {
		return ctx
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx
	}
	return otel.GetTextMapPropagator().Extract(ctx, metadataCarrier{md})
}

// metadataCarrier adapts grpc metadata to the OTel TextMapCarrier
// interface.
type metadataCarrier struct {
	metadata.MD
}

func (mc metadataCarrier) Get(key string) string {
	values := mc.MD.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (mc metadataCarrier) Set(key, value string) {
	mc.MD.Set(key, value)
}

func (mc metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(mc.MD))
	for k := range mc.MD {
		keys = append(keys, k)
	}
	return keys
}

// wrappedStream overrides Context so handlers see the trace-enriched one.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (ws *wrappedStream) Context() context.Context {
	return ws.ctx
}
