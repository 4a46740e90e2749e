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

import "testing"

func TestPackageOf(t *testing.T) {
	testCases := []struct {
		function string
		want     string
	}{
		{"github.com/acme/billing.Charge", "github.com/acme/billing"},
		{"github.com/acme/billing.(*Invoicer).Charge", "github.com/acme/billing"},
		{"github.com/mfeller/splitlog.(*Logger).Error", "github.com/mfeller/splitlog"},
		{"main.main", "main"},
		{"runtime.goexit", "runtime"},
		{"github.com/acme/billing.TestCharge.func1", "github.com/acme/billing"},
		{"nodots", "nodots"},
	}
	for _, tc := range testCases {
		if got := packageOf(tc.function); got != tc.want {
			t.Errorf("packageOf(%q) = %q, want %q", tc.function, got, tc.want)
		}
	}
}

// TestResolveCallerFromFacadeOnly checks the documented optional result:
// when every visible frame belongs to this package, resolution yields "".
// The helper chain below stays inside the facade package.
func TestResolveCallerFromFacadeOnly(t *testing.T) {
	// Called from a test in the facade's own package, the nearest foreign
	// frame is the testing package, never this package.
	if got := resolveCaller(0); got == facadePackage {
		t.Errorf("resolveCaller attributed the facade to itself: %q", got)
	}
}
