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

package http

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mfeller/splitlog"
)

// Middleware returns a middleware that logs one line per completed request
// through logger. The line carries method, path, status, response size,
// duration and peer; when a valid OpenTelemetry span context is present the
// trace ID is appended:
//
//	GET /orders 200 532B 1.8ms peer=10.0.0.7:53211 trace=4bf92f3577b34da6a3ce929d0e0e4736
func Middleware(logger *splitlog.Logger, opts ...Option) func(http.Handler) http.Handler {
	cfg := applyOptions(opts)
	bound := logger.For(cfg.component)

	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}

		loggingHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.skip(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			recorder := &responseRecorder{ResponseWriter: w}

			next.ServeHTTP(recorder, r)

			path := r.URL.Path
			if cfg.includeQuery && r.URL.RawQuery != "" {
				path += "?" + r.URL.RawQuery
			}

			line := fmt.Sprintf("%s %s %d %dB %s peer=%s",
				r.Method, path, recorder.status(), recorder.bytes,
				time.Since(start).Round(time.Microsecond), r.RemoteAddr)
			if traceID := splitlog.TraceID(r.Context()); traceID != "" {
				line += " trace=" + traceID
			}

			// A sink failure must never fail the request.
			_ = bound.Log(cfg.statusLevel(recorder.status()), line)
		})

		if !cfg.enableOTel {
			return loggingHandler
		}

		var otelOpts []otelhttp.Option
		if cfg.tracerProvider != nil {
			otelOpts = append(otelOpts, otelhttp.WithTracerProvider(cfg.tracerProvider))
		}
		if cfg.propagatorsSet && cfg.propagators != nil {
			otelOpts = append(otelOpts, otelhttp.WithPropagators(cfg.propagators))
		}
		return otelhttp.NewHandler(loggingHandler, "splitlog.request", otelOpts...)
	}
}

func (c *config) skip(path string) bool {
	for _, sub := range c.skipPaths {
		if sub != "" && strings.Contains(path, sub) {
			return true
		}
	}
	return false
}

// responseRecorder captures the status code and body size while delegating
// to the wrapped writer.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	bytes      int64
}

func (rr *responseRecorder) status() int {
	if rr.statusCode == 0 {
		return http.StatusOK
	}
	return rr.statusCode
}

// WriteHeader records the status code before delegating. Only the first
// call counts, matching net/http semantics.
func (rr *responseRecorder) WriteHeader(status int) {
	if rr.statusCode == 0 {
		rr.statusCode = status
	}
	rr.ResponseWriter.WriteHeader(status)
}

func (rr *responseRecorder) Write(p []byte) (int, error) {
	if rr.statusCode == 0 {
		rr.statusCode = http.StatusOK
	}
	n, err := rr.ResponseWriter.Write(p)
	rr.bytes += int64(n)
	return n, err
}

// Flush forwards the flush request when the underlying writer supports it.
func (rr *responseRecorder) Flush() {
	if flusher, ok := rr.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack delegates to the wrapped Hijacker when supported.
func (rr *responseRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rr.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}
