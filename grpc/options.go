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
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"

	"github.com/mfeller/splitlog"
)

// CodeToLevel maps a final gRPC status code to the splitlog level the call
// line is logged at.
type CodeToLevel func(code codes.Code) splitlog.Level

// ShouldLog decides per full method name whether a call is logged at all.
type ShouldLog func(fullMethod string) bool

// Option configures the interceptors.
type Option func(*config)

type config struct {
	component      string
	levelFunc      CodeToLevel
	shouldLog      ShouldLog
	extractTrace   bool
	logPayloads    bool
	maxPayloadSize int
	tracerProvider trace.TracerProvider
	propagators    propagation.TextMapPropagator
	propagatorsSet bool
}

func defaultConfig() *config {
	return &config{
		component:      "grpc",
		levelFunc:      defaultCodeToLevel,
		shouldLog:      func(string) bool { return true },
		extractTrace:   true,
		maxPayloadSize: 2048,
	}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// defaultCodeToLevel categorizes codes the usual way: success and
// cancellation are informational, client and transient errors are
// warnings, clear server-side failures are errors.
func defaultCodeToLevel(code codes.Code) splitlog.Level {
	switch code {
	case codes.OK, codes.Canceled:
		return splitlog.LevelInfo
	case codes.InvalidArgument, codes.NotFound, codes.AlreadyExists,
		codes.Unauthenticated, codes.PermissionDenied:
		return splitlog.LevelWarning
	case codes.DeadlineExceeded, codes.ResourceExhausted, codes.FailedPrecondition,
		codes.Aborted, codes.OutOfRange, codes.Unavailable:
		return splitlog.LevelWarning
	case codes.Unknown, codes.Unimplemented, codes.Internal, codes.DataLoss:
		return splitlog.LevelError
	default:
		return splitlog.LevelError
	}
}

// WithComponent returns an Option that sets the caller-unit name call
// lines are attributed to. Defaults to "grpc".
func WithComponent(name string) Option {
	return func(c *config) {
		c.component = name
	}
}

// WithLevels returns an Option that replaces the code-to-level mapping.
// A nil f restores the default mapping.
func WithLevels(f CodeToLevel) Option {
	return func(c *config) {
		if f == nil {
			f = defaultCodeToLevel
		}
		c.levelFunc = f
	}
}

// WithShouldLog returns an Option that installs a per-call filter, for
// example to drop health check methods. A nil f logs every call.
func WithShouldLog(f ShouldLog) Option {
	return func(c *config) {
		if f == nil {
			f = func(string) bool { return true }
		}
		c.shouldLog = f
	}
}

// WithTraceExtraction returns an Option that controls whether server
// interceptors extract trace context from incoming metadata via the global
// OpenTelemetry propagator. Enabled by default.
func WithTraceExtraction(enabled bool) Option {
	return func(c *config) {
		c.extractTrace = enabled
	}
}

// WithPayloadLogging returns an Option that enables logging of request and
// response messages at DEBUG level, protojson-encoded. Off by default;
// payloads routinely contain sensitive data.
func WithPayloadLogging(enabled bool) Option {
	return func(c *config) {
		c.logPayloads = enabled
	}
}

// WithMaxPayloadSize returns an Option that caps the encoded payload bytes
// included in a payload line. Zero or negative means no cap.
func WithMaxPayloadSize(limit int) Option {
	return func(c *config) {
		c.maxPayloadSize = limit
	}
}

// WithTracerProvider returns an Option that sets the tracer provider used
// by the otelgrpc stats handlers installed by ServerOptions and
// DialOptions. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithPropagators returns an Option that sets the propagators used by the
// otelgrpc stats handlers. Defaults to the global propagators.
func WithPropagators(p propagation.TextMapPropagator) Option {
	return func(c *config) {
		c.propagators = p
		c.propagatorsSet = true
	}
}
