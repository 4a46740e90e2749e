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
	"bytes"
	"strconv"
)

// Timestamp layouts selected by the LOG_MICROSEC flag. Both use a 24-hour
// clock with zero-padded components; the first appends six fractional
// digits.
const (
	layoutMicro = "2006-01-02 15:04:05.000000"
	layoutPlain = "2006-01-02 15:04:05"
)

// Entry is a single log entry, immutable once constructed. The timestamp is
// captured and formatted exactly once, at construction; rendering never
// re-derives it.
type Entry struct {
	// Timestamp is the formatted capture time, already converted to the
	// configured timezone.
	Timestamp string

	// Level is the severity (or LevelReturn) the entry was dispatched with.
	Level Level

	// Message is the payload. Its length is measured in bytes, so
	// multi-byte text counts every encoded byte.
	Message string

	// Caller is the qualified name of the unit that invoked the facade.
	// It may be empty when no attribution was possible; the rendered form
	// then carries an empty bracket pair.
	Caller string

	// IncludeLevelTag controls whether the level name appears in the
	// rendered form. It is false for per-level files (the filename already
	// implies the level) and always true for LevelReturn.
	IncludeLevelTag bool
}

// render appends the canonical string form of the entry to buf, without a
// trailing newline:
//
//	<timestamp> [<LEVEL>] [<byteLen>] [<caller>]: <message>
//	<timestamp> [<byteLen>] [<caller>]: <message>            (tag omitted)
func (e Entry) render(buf *bytes.Buffer) {
	buf.WriteString(e.Timestamp)
	if e.IncludeLevelTag {
		buf.WriteString(" [")
		buf.WriteString(e.Level.String())
		buf.WriteByte(']')
	}
	buf.WriteString(" [")
	buf.WriteString(strconv.Itoa(len(e.Message)))
	buf.WriteString("] [")
	buf.WriteString(e.Caller)
	buf.WriteString("]: ")
	buf.WriteString(e.Message)
}

// String returns the rendered form of the entry.
func (e Entry) String() string {
	var buf bytes.Buffer
	buf.Grow(len(e.Timestamp) + len(e.Message) + len(e.Caller) + 32)
	e.render(&buf)
	return buf.String()
}
