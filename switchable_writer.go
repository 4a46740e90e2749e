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
	"io"
	"os"
	"sync"
)

// SwitchableWriter is an io.Writer whose underlying writer can be replaced
// atomically. The sink keeps one per open log file so that
// Logger.ReopenLogFiles can swap in fresh file handles after an external
// rotation without rebuilding the sink.
//
// SwitchableWriter also implements io.Closer. Close attempts to close the
// underlying writer if it implements io.Closer and then directs further
// writes to io.Discard.
type SwitchableWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSwitchableWriter creates a SwitchableWriter wrapping initialWriter.
// A nil initialWriter defaults to io.Discard.
func NewSwitchableWriter(initialWriter io.Writer) *SwitchableWriter {
	if initialWriter == nil {
		initialWriter = io.Discard
	}
	return &SwitchableWriter{w: initialWriter}
}

// Write directs the given bytes to the current underlying writer. It is
// safe for concurrent use; the lock is held across the write so concurrent
// appends to the same file do not interleave.
func (sw *SwitchableWriter) Write(p []byte) (n int, err error) {
	sw.mu.Lock()
	currentWriter := sw.w
	if currentWriter == nil {
		sw.mu.Unlock()
		return 0, os.ErrClosed
	}
	n, err = currentWriter.Write(p)
	sw.mu.Unlock()
	if err != nil {
		return n, fmt.Errorf("write via switchable writer: %w", err)
	}
	return n, nil
}

// SetWriter atomically replaces the underlying writer. The previous writer
// is not closed; its lifecycle stays with the caller. A nil newWriter
// directs subsequent writes to io.Discard.
func (sw *SwitchableWriter) SetWriter(newWriter io.Writer) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	if newWriter == nil {
		sw.w = io.Discard
		return
	}
	sw.w = newWriter
}

// GetCurrentWriter returns the writer currently receiving writes. Callers
// should not hold on to the result across SetWriter calls.
func (sw *SwitchableWriter) GetCurrentWriter() io.Writer {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w
}

// Close closes the current underlying writer if it implements io.Closer,
// then directs further writes to io.Discard. Safe for concurrent use and
// idempotent.
func (sw *SwitchableWriter) Close() error {
	sw.mu.Lock()
	writerToClose := sw.w
	sw.w = io.Discard
	sw.mu.Unlock()

	if c, ok := writerToClose.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("close current writer: %w", err)
		}
	}
	return nil
}

var _ io.WriteCloser = (*SwitchableWriter)(nil)
