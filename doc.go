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

// Package splitlog is a small plain-text logger that splits output by
// severity: every entry goes to a combined full.log (level tag included)
// and to a per-level file such as error.log (tag omitted, the filename
// already says it). Lines follow a fixed template:
//
//	2024-01-01 00:00:00 [ERROR] [9] [Foo\Bar]: disk full
//
// with the capture timestamp, the level tag, the message length in bytes,
// the calling unit, and the message.
//
// Configuration is resolved from the environment with documented defaults:
// LOG_PATH (default /tmp/logs/), LOG_LEVEL (default error), LOG_MICROSEC
// (default true), and LOG_TIMEZONE (falling back to TIMEZONE, then
// Europe/Berlin). Functional options such as [WithLogDir], [WithLevel],
// [WithMicroseconds], [WithTimezone], and [WithWriter] override the
// environment, so the same binary can run locally and in production
// without code changes.
//
// The level set is closed: the eight severities DEBUG through EMERGENCY
// plus the pseudo-level RETURN, which renders the entry and hands the
// string back to the caller instead of writing anything. Dynamic level
// names go through [Logger.Dispatch]; a name outside the set fails with an
// [*InvalidOperationError].
//
// Caller attribution prefers an explicit binding: [Logger.For] returns a
// copy carrying a component name. Unbound loggers fall back to walking the
// call stack past the facade's own frames.
//
// # Subpackages
//
//   - [github.com/mfeller/splitlog/http] offers net/http middleware that
//     logs one line per completed request, with optional OpenTelemetry
//     instrumentation and trace correlation.
//   - [github.com/mfeller/splitlog/grpc] provides client and server
//     interceptors that log RPC outcomes and, optionally, protojson-encoded
//     payloads.
//
// # Quick Start
//
//	logger, err := splitlog.New()
//	if err != nil {
//	    log.Fatalf("create logger: %v", err)
//	}
//	defer logger.Close()
//
//	billing := logger.For("acme/billing")
//	billing.Error("disk full")
package splitlog
