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

// FullLogKey is the symbolic key of the combined log file, which receives
// every persisted entry regardless of level, with the level tag included.
const FullLogKey = "full"

// fileNames maps symbolic file keys to on-disk filenames. The table is
// fixed at process start; the facade never mutates it. Per-level filenames
// are not registered here; they derive from the level name (see
// Level.Filename).
var fileNames = map[string]string{
	FullLogKey: "full.log",
}

// Filename resolves a symbolic file key to its on-disk filename. An
// unregistered key yields an *UnknownFileError.
func Filename(key string) (string, error) {
	name, ok := fileNames[key]
	if !ok {
		return "", &UnknownFileError{Key: key}
	}
	return name, nil
}
