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
	"io"
	"time"
)

// Option configures a Logger during initialization via New. Options are
// applied after environment resolution, so they override environment
// variables and defaults. Fields are pointers where an explicitly set zero
// value must be distinguishable from an unset option.
type Option func(*options)

type options struct {
	dir          *string
	level        *Level
	microseconds *bool
	timezone     *string
	writer       io.Writer
	clock        func() time.Time
}

// WithLogDir returns an Option that sets the target directory for log
// files, overriding the LOG_PATH environment variable.
func WithLogDir(dir string) Option {
	return func(o *options) {
		o.dir = &dir
	}
}

// WithLevel returns an Option that sets the minimum level to persist,
// overriding the LOG_LEVEL environment variable. Entries below this level
// are still rendered (and returned for LevelReturn) but never written.
func WithLevel(level Level) Option {
	return func(o *options) {
		o.level = &level
	}
}

// WithMicroseconds returns an Option that controls whether timestamps carry
// six fractional digits, overriding the LOG_MICROSEC environment variable.
func WithMicroseconds(enabled bool) Option {
	return func(o *options) {
		o.microseconds = &enabled
	}
}

// WithTimezone returns an Option that sets the timezone for timestamp
// rendering by IANA identifier (for example "UTC" or "Europe/Berlin"),
// overriding the LOG_TIMEZONE and TIMEZONE environment variables. An
// identifier the platform cannot load makes New fail.
func WithTimezone(name string) Option {
	return func(o *options) {
		o.timezone = &name
	}
}

// WithWriter returns an Option that redirects all persisted output to w
// instead of the file pair. Every entry is written in its tagged form.
// Useful for tests and for feeding an external collector.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithClock returns an Option that replaces the time source used to capture
// entry timestamps. Intended as a test seam; production loggers use
// time.Now.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}
