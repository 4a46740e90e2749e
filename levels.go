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
	"log/slog"
	"strings"
)

// Level represents the severity of a log entry. It extends slog.Level with
// the syslog-style severities above Error while keeping the underlying
// integer representation compatible with slog.Level, so a Level can be used
// anywhere a slog.Leveler is accepted.
type Level slog.Level

// Severity constants, ordered. The integer spacing follows the slog
// convention of leaving room between the standard levels.
const (
	// LevelDebug is the lowest severity, for detailed diagnostics.
	LevelDebug Level = Level(slog.LevelDebug) // -4

	// LevelInfo is for routine informational messages.
	LevelInfo Level = Level(slog.LevelInfo) // 0

	// LevelNotice is for normal but significant conditions.
	LevelNotice Level = 2

	// LevelWarning is for conditions that deserve attention.
	LevelWarning Level = Level(slog.LevelWarn) // 4

	// LevelError is for errors that do not stop the application.
	LevelError Level = Level(slog.LevelError) // 8

	// LevelCritical is for errors that threaten a component.
	LevelCritical Level = 12

	// LevelAlert is for conditions requiring immediate action.
	LevelAlert Level = 16

	// LevelEmergency is the highest severity: the system is unusable.
	LevelEmergency Level = 20

	// LevelReturn is not a severity. Dispatching with it renders the entry
	// (with the level tag forced on) and hands the string back to the
	// caller instead of writing to any file. It sits above every real
	// severity so it can never be filtered out.
	LevelReturn Level = 1 << 8
)

// levels lists every dispatchable level in severity order, LevelReturn last.
var levels = [...]Level{
	LevelDebug,
	LevelInfo,
	LevelNotice,
	LevelWarning,
	LevelError,
	LevelCritical,
	LevelAlert,
	LevelEmergency,
	LevelReturn,
}

// String returns the canonical uppercase name of the level, as rendered in
// log lines (for example "WARNING", not the slog short form "WARN").
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelNotice:
		return "NOTICE"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	case LevelAlert:
		return "ALERT"
	case LevelEmergency:
		return "EMERGENCY"
	case LevelReturn:
		return "RETURN"
	default:
		return slog.Level(l).String()
	}
}

// Level returns the underlying slog.Level value, satisfying the
// slog.Leveler interface.
func (l Level) Level() slog.Level {
	return slog.Level(l)
}

// Filename returns the on-disk name of the per-level log file for l,
// the lowercased level name plus the ".log" suffix.
func (l Level) Filename() string {
	return strings.ToLower(l.String()) + ".log"
}

// ParseLevel converts a level name into a Level. Matching is
// case-insensitive over the closed set of nine names (the eight severities
// plus RETURN); any other name is an undefined operation on the facade and
// yields an *InvalidOperationError. There is no numeric fallback: the level
// set is closed.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "NOTICE":
		return LevelNotice, nil
	case "WARNING":
		return LevelWarning, nil
	case "ERROR":
		return LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	case "ALERT":
		return LevelAlert, nil
	case "EMERGENCY":
		return LevelEmergency, nil
	case "RETURN":
		return LevelReturn, nil
	default:
		return 0, &InvalidOperationError{Facade: facadeName, Name: name}
	}
}
