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

import "fmt"

// facadeName identifies the logging facade in error messages produced when
// a caller requests an operation outside the level set.
const facadeName = "splitlog.Logger"

// InvalidOperationError reports a dispatch against a level name outside the
// enumerated set. It identifies both the attempted name and the facade it
// was attempted on, so call sites using dynamic names can surface the exact
// failure.
type InvalidOperationError struct {
	Facade string // qualified name of the logging facade
	Name   string // the level name as the caller supplied it
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("splitlog: call to undefined operation %q on %s", e.Name, e.Facade)
}

// UnknownFileError reports a lookup of a symbolic file key that is not
// present in the filename registry.
type UnknownFileError struct {
	Key string
}

func (e *UnknownFileError) Error() string {
	return fmt.Sprintf("splitlog: no log file registered for key %q", e.Key)
}
