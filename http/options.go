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
	"net/http"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/mfeller/splitlog"
)

// StatusLevel maps an HTTP response status code to the splitlog level the
// request line is logged at.
type StatusLevel func(status int) splitlog.Level

// Option configures the middleware.
type Option func(*config)

type config struct {
	component      string
	enableOTel     bool
	tracerProvider trace.TracerProvider
	propagators    propagation.TextMapPropagator
	propagatorsSet bool
	skipPaths      []string
	statusLevel    StatusLevel
	includeQuery   bool
}

func defaultConfig() *config {
	return &config{
		component:   "net/http",
		enableOTel:  true,
		statusLevel: defaultStatusLevel,
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

// defaultStatusLevel treats server errors as ERROR, client errors as
// WARNING, and everything else as INFO.
func defaultStatusLevel(status int) splitlog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return splitlog.LevelError
	case status >= http.StatusBadRequest:
		return splitlog.LevelWarning
	default:
		return splitlog.LevelInfo
	}
}

// WithComponent returns an Option that sets the caller-unit name request
// lines are attributed to. Defaults to "net/http".
func WithComponent(name string) Option {
	return func(c *config) {
		c.component = name
	}
}

// WithOTel returns an Option that enables or disables wrapping the handler
// chain in otelhttp instrumentation. Enabled by default; disable it when an
// outer layer already instruments the server.
func WithOTel(enabled bool) Option {
	return func(c *config) {
		c.enableOTel = enabled
	}
}

// WithTracerProvider returns an Option that sets the tracer provider used
// by the otelhttp wrapper. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithPropagators returns an Option that sets the propagators used by the
// otelhttp wrapper. Defaults to the global propagators.
func WithPropagators(p propagation.TextMapPropagator) Option {
	return func(c *config) {
		c.propagators = p
		c.propagatorsSet = true
	}
}

// WithSkipPaths returns an Option that suppresses logging for requests
// whose URL path contains any of the given substrings. Health and metrics
// endpoints are the usual candidates.
func WithSkipPaths(substrings ...string) Option {
	return func(c *config) {
		c.skipPaths = append(c.skipPaths, substrings...)
	}
}

// WithStatusLevel returns an Option that replaces the status-to-level
// mapping. A nil f restores the default mapping.
func WithStatusLevel(f StatusLevel) Option {
	return func(c *config) {
		if f == nil {
			f = defaultStatusLevel
		}
		c.statusLevel = f
	}
}

// WithIncludeQuery returns an Option that includes the raw query string in
// the logged path. Off by default since query strings often carry
// sensitive values.
func WithIncludeQuery(enabled bool) Option {
	return func(c *config) {
		c.includeQuery = enabled
	}
}
