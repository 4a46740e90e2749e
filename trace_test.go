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

package splitlog_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"

	"github.com/mfeller/splitlog"
)

func TestTraceIDWithoutSpan(t *testing.T) {
	ctx := context.Background()
	if got := splitlog.TraceID(ctx); got != "" {
		t.Errorf("TraceID on empty context = %q, want empty", got)
	}
	if got := splitlog.SpanID(ctx); got != "" {
		t.Errorf("SpanID on empty context = %q, want empty", got)
	}
}

func TestTraceIDWithSpanContext(t *testing.T) {
	traceID, err := trace.TraceIDFromHex("0123456789abcdef0123456789abcdef")
	if err != nil {
		t.Fatalf("TraceIDFromHex: %v", err)
	}
	spanID, err := trace.SpanIDFromHex("0123456789abcdef")
	if err != nil {
		t.Fatalf("SpanIDFromHex: %v", err)
	}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	if got := splitlog.TraceID(ctx); got != "0123456789abcdef0123456789abcdef" {
		t.Errorf("TraceID = %q", got)
	}
	if got := splitlog.SpanID(ctx); got != "0123456789abcdef" {
		t.Errorf("SpanID = %q", got)
	}
}
