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
	"fmt"
	"time"

	"github.com/mfeller/splitlog/internal/env"
)

// Logger is the logging facade. Each dispatch is an independent, blocking
// unit of work: capture the timestamp, resolve the caller, render, and
// either hand the string back (LevelReturn) or append it to the combined
// and per-level log files.
//
// A Logger holds no mutable state of its own; the configuration tables are
// read-only after New, and the file sink does its own locking. Bound copies
// created with For share the sink, so a process-wide Logger plus one For
// binding per component is the intended usage.
type Logger struct {
	component    string
	microseconds bool
	location     *time.Location
	clock        func() time.Time
	sink         *sink
}

// New creates a Logger. Configuration is resolved in layers: hardcoded
// defaults, then the environment (LOG_PATH, LOG_LEVEL, LOG_MICROSEC,
// LOG_TIMEZONE with TIMEZONE as secondary source), then the provided
// options. An unloadable timezone identifier is a fatal construction error.
//
// New does not touch the filesystem; the log directory is created on first
// write, or explicitly via EnsureLogPath.
func New(opts ...Option) (*Logger, error) {
	cfg, err := env.Load()
	if err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.dir != nil {
		cfg.Dir = *o.dir
	}
	if o.level != nil {
		cfg.MinLevel = o.level.Level()
	}
	if o.microseconds != nil {
		cfg.Microseconds = *o.microseconds
	}
	if o.timezone != nil {
		loc, err := time.LoadLocation(*o.timezone)
		if err != nil {
			return nil, fmt.Errorf("splitlog: load timezone %q: %w", *o.timezone, err)
		}
		cfg.ZoneName = *o.timezone
		cfg.Location = loc
	}

	clock := o.clock
	if clock == nil {
		clock = time.Now
	}

	return &Logger{
		microseconds: cfg.Microseconds,
		location:     cfg.Location,
		clock:        clock,
		sink:         newSink(cfg.Dir, cfg.MinLevel, o.writer),
	}, nil
}

// For returns a copy of the Logger bound to the given component name.
// Entries dispatched through the copy carry that name in the caller field,
// bypassing stack inspection entirely. This is the preferred attribution
// path; create one bound logger per calling unit.
func (l *Logger) For(component string) *Logger {
	bound := *l
	bound.component = component
	return &bound
}

// Dispatch logs msg under the level named by name, matched
// case-insensitively against the enumerated set. A name outside the set
// fails with an *InvalidOperationError identifying the attempted name and
// the facade.
//
// For "RETURN" the rendered entry (level tag included) is returned and no
// file output occurs. For every other level the returned string is empty
// and the entry is appended to the combined log (tag included) and the
// per-level log (tag omitted).
func (l *Logger) Dispatch(name, msg string) (string, error) {
	level, err := ParseLevel(name)
	if err != nil {
		return "", err
	}
	if level == LevelReturn {
		return l.Return(msg), nil
	}
	return "", l.sink.write(l.newEntry(level, msg))
}

// Log writes msg at the given level. The level must be one of the defined
// constants; arbitrary Level values fail with an *InvalidOperationError.
// LevelReturn is rejected here because Log has no string result; use Return
// or Dispatch for it.
func (l *Logger) Log(level Level, msg string) error {
	if !validLevel(level) || level == LevelReturn {
		return &InvalidOperationError{Facade: facadeName, Name: level.String()}
	}
	return l.sink.write(l.newEntry(level, msg))
}

// Return renders msg as a log entry with the level tag forced on and hands
// the string back instead of writing it anywhere.
func (l *Logger) Return(msg string) string {
	return l.newEntry(LevelReturn, msg).String()
}

// Debug logs msg at DEBUG level.
func (l *Logger) Debug(msg string) error { return l.sink.write(l.newEntry(LevelDebug, msg)) }

// Info logs msg at INFO level.
func (l *Logger) Info(msg string) error { return l.sink.write(l.newEntry(LevelInfo, msg)) }

// Notice logs msg at NOTICE level.
func (l *Logger) Notice(msg string) error { return l.sink.write(l.newEntry(LevelNotice, msg)) }

// Warning logs msg at WARNING level.
func (l *Logger) Warning(msg string) error { return l.sink.write(l.newEntry(LevelWarning, msg)) }

// Error logs msg at ERROR level.
func (l *Logger) Error(msg string) error { return l.sink.write(l.newEntry(LevelError, msg)) }

// Critical logs msg at CRITICAL level.
func (l *Logger) Critical(msg string) error { return l.sink.write(l.newEntry(LevelCritical, msg)) }

// Alert logs msg at ALERT level.
func (l *Logger) Alert(msg string) error { return l.sink.write(l.newEntry(LevelAlert, msg)) }

// Emergency logs msg at EMERGENCY level.
func (l *Logger) Emergency(msg string) error { return l.sink.write(l.newEntry(LevelEmergency, msg)) }

// EnsureLogPath creates the configured log directory (mode 0700, missing
// parents included) if it does not exist, and reports whether the directory
// is present afterwards. Idempotent and never destructive.
func (l *Logger) EnsureLogPath() bool {
	return l.sink.ensureLogPath()
}

// ReopenLogFiles reopens every log file the Logger has written to, for
// cooperation with external rotation tools that move files aside.
func (l *Logger) ReopenLogFiles() error {
	return l.sink.reopen()
}

// Close closes all file handles the Logger owns. Safe to call on a Logger
// that never wrote anything.
func (l *Logger) Close() error {
	return l.sink.close()
}

// newEntry captures the timestamp (once, in the configured timezone) and
// resolves the caller, producing the immutable entry value.
func (l *Logger) newEntry(level Level, msg string) Entry {
	layout := layoutPlain
	if l.microseconds {
		layout = layoutMicro
	}

	caller := l.component
	if caller == "" {
		caller = resolveCaller(2)
	}

	return Entry{
		Timestamp:       l.clock().In(l.location).Format(layout),
		Level:           level,
		Message:         msg,
		Caller:          caller,
		IncludeLevelTag: true,
	}
}

// validLevel reports whether level is one of the defined constants.
func validLevel(level Level) bool {
	for _, known := range levels {
		if level == known {
			return true
		}
	}
	return false
}
