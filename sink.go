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
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// File permissions: the log directory is owner-only rwx, files owner-only rw.
const (
	logDirMode  = 0o700
	logFileMode = 0o600
)

// sink appends rendered entries to the combined log and one per-level log.
// Files are opened lazily in append mode and cached behind SwitchableWriter
// values so ReopenLogFiles can swap handles after an external rotation.
//
// When redirect is non-nil the sink bypasses the filesystem entirely and
// writes the tagged form of every persisted entry to that writer instead.
type sink struct {
	dir      string
	minLevel slog.Level
	redirect io.Writer

	mu    sync.Mutex
	files map[string]*SwitchableWriter
}

func newSink(dir string, minLevel slog.Level, redirect io.Writer) *sink {
	return &sink{
		dir:      dir,
		minLevel: minLevel,
		redirect: redirect,
		files:    make(map[string]*SwitchableWriter),
	}
}

// ensureLogPath creates the log directory (including missing parents, mode
// 0700) if it does not already exist. It is idempotent, never destructive,
// and reports whether the directory is present afterwards.
func (s *sink) ensureLogPath() bool {
	if err := os.MkdirAll(s.dir, logDirMode); err != nil {
		return false
	}
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// write persists an entry: the tagged form to the combined log, the
// untagged form to the per-level log. Entries below the minimum level are
// dropped. LevelReturn entries never reach the sink.
func (s *sink) write(e Entry) error {
	if slog.Level(e.Level) < s.minLevel {
		return nil
	}

	var buf bytes.Buffer
	tagged := e
	tagged.IncludeLevelTag = true
	tagged.render(&buf)
	buf.WriteByte('\n')

	if s.redirect != nil {
		_, err := s.redirect.Write(buf.Bytes())
		return err
	}

	fullName, err := Filename(FullLogKey)
	if err != nil {
		return err
	}
	if err := s.append(fullName, buf.Bytes()); err != nil {
		return err
	}

	buf.Reset()
	untagged := e
	untagged.IncludeLevelTag = false
	untagged.render(&buf)
	buf.WriteByte('\n')
	return s.append(e.Level.Filename(), buf.Bytes())
}

func (s *sink) append(name string, line []byte) error {
	w, err := s.writer(name)
	if err != nil {
		return err
	}
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("splitlog: append to %s: %w", name, err)
	}
	return nil
}

// writer returns the cached SwitchableWriter for name, opening the file in
// append mode on first use.
func (s *sink) writer(name string) (*SwitchableWriter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, ok := s.files[name]; ok {
		return w, nil
	}
	if !s.ensureLogPath() {
		return nil, fmt.Errorf("splitlog: log directory %q unavailable", s.dir)
	}
	f, err := s.openFile(name)
	if err != nil {
		return nil, err
	}
	w := NewSwitchableWriter(f)
	s.files[name] = w
	return w, nil
}

func (s *sink) openFile(name string) (*os.File, error) {
	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		return nil, fmt.Errorf("splitlog: open %s: %w", path, err)
	}
	return f, nil
}

// reopen swaps every cached writer onto a freshly opened handle of the same
// file, closing the old one. External rotation tools move the files aside
// and expect the process to reopen them.
func (s *sink) reopen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for name, w := range s.files {
		f, err := s.openFile(name)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		prev := w.GetCurrentWriter()
		w.SetWriter(f)
		if c, ok := prev.(io.Closer); ok {
			if err := c.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// close closes all owned file handles. The sink remains usable afterwards
// only in the sense that writes will reopen files lazily.
func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for name, w := range s.files {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(s.files, name)
	}
	return firstErr
}
