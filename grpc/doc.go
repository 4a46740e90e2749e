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

// Package grpc provides client and server interceptors that log RPC
// outcomes through a splitlog Logger: service, method, final status code,
// duration and peer, at a level derived from the code. Incoming trace
// context is extracted from metadata via the global OpenTelemetry
// propagator so logged lines carry the trace ID.
//
// Payload logging is off by default; enable it with WithPayloadLogging to
// log protojson-encoded request and response messages at DEBUG, capped by
// WithMaxPayloadSize.
//
// ServerOptions and DialOptions bundle the interceptors with otelgrpc
// stats handlers for servers and clients that want spans as well as lines.
package grpc
