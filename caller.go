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
	"runtime"
	"strings"
	"sync"
)

// Maximum stack frames inspected when resolving the calling unit.
const maxCallerFrames = 32

var callerPCPool = sync.Pool{
	New: func() any {
		buf := make([]uintptr, maxCallerFrames)
		return &buf
	},
}

// facadePackage is the import path of this package; frames belonging to it
// are skipped during caller resolution so multi-level call chains through
// the facade still attribute the entry to the true external caller.
const facadePackage = "github.com/mfeller/splitlog"

// resolveCaller walks the call stack outward from the facade and returns
// the package import path of the first frame that does not belong to this
// package. Binding a component name via Logger.For is the preferred,
// portable attribution path; this resolver is the fallback for unbound
// loggers. It returns "" when every visible frame belongs to the facade or
// the runtime (no attribution possible).
func resolveCaller(skip int) string {
	bufp := callerPCPool.Get().(*[]uintptr)
	defer callerPCPool.Put(bufp)

	n := runtime.Callers(skip+2, *bufp)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames((*bufp)[:n])
	for {
		frame, more := frames.Next()
		if frame.Function == "" {
			if !more {
				break
			}
			continue
		}
		pkg := packageOf(frame.Function)
		if pkg != "" && pkg != facadePackage {
			return pkg
		}
		if !more {
			break
		}
	}
	return ""
}

// packageOf extracts the package import path from a fully qualified
// function name as reported by the runtime, e.g.
// "github.com/acme/billing.(*Invoicer).Charge" yields
// "github.com/acme/billing".
func packageOf(function string) string {
	slash := strings.LastIndexByte(function, '/')
	dot := strings.IndexByte(function[slash+1:], '.')
	if dot < 0 {
		return function
	}
	return function[:slash+1+dot]
}
