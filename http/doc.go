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

// Package http provides net/http middleware that logs one splitlog line
// per completed request: method, path, status, response size, duration and
// peer, at a level derived from the status code. When OpenTelemetry
// instrumentation is enabled (the default) the handler chain is wrapped in
// otelhttp and the logged line carries the extracted trace ID.
package http
