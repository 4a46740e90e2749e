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

package splitlog

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceID returns the 32-character lowercase hex OpenTelemetry trace ID
// carried by ctx, or "" when ctx holds no valid span context. It is
// intentionally light-weight: it creates no spans and parses no headers;
// upstream middleware is expected to have populated the span context via
// OTel propagators.
func TraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.TraceID().String()
}

// SpanID returns the 16-character lowercase hex span ID carried by ctx, or
// "" when ctx holds no valid span context.
func SpanID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return ""
	}
	return sc.SpanID().String()
}
