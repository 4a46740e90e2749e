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
	"testing"

	"github.com/mfeller/splitlog"
)

// TestEntryString covers both template forms and the byte-length
// semantics directly on the value object.
func TestEntryString(t *testing.T) {
	testCases := []struct {
		name  string
		entry splitlog.Entry
		want  string
	}{
		{
			name: "tagged",
			entry: splitlog.Entry{
				Timestamp:       "2024-01-01 00:00:00",
				Level:           splitlog.LevelError,
				Message:         "disk full",
				Caller:          `Foo\Bar`,
				IncludeLevelTag: true,
			},
			want: `2024-01-01 00:00:00 [ERROR] [9] [Foo\Bar]: disk full`,
		},
		{
			name: "untagged",
			entry: splitlog.Entry{
				Timestamp:       "2024-01-01 00:00:00",
				Level:           splitlog.LevelError,
				Message:         "disk full",
				Caller:          `Foo\Bar`,
				IncludeLevelTag: false,
			},
			want: `2024-01-01 00:00:00 [9] [Foo\Bar]: disk full`,
		},
		{
			name: "multibyte message counted in bytes",
			entry: splitlog.Entry{
				Timestamp:       "2024-01-01 00:00:00",
				Level:           splitlog.LevelInfo,
				Message:         "héllo",
				Caller:          "unit",
				IncludeLevelTag: true,
			},
			want: "2024-01-01 00:00:00 [INFO] [6] [unit]: héllo",
		},
		{
			name: "empty caller keeps the bracket pair",
			entry: splitlog.Entry{
				Timestamp:       "2024-01-01 00:00:00",
				Level:           splitlog.LevelDebug,
				Message:         "",
				IncludeLevelTag: true,
			},
			want: "2024-01-01 00:00:00 [DEBUG] [0] []: ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.entry.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
