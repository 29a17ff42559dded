/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package utils

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// allUnexported lets cmp descend into the unexported fields of any type.
var allUnexported = cmp.Exporter(func(reflect.Type) bool { return true })

// ignorePaths skips every struct field whose path step is one of names,
// written with a leading dot, for example ".blob". Unlike
// cmpopts.IgnoreFields it also matches unexported fields.
func ignorePaths(names ...string) cmp.Option {
	if len(names) == 0 {
		return cmp.Options{}
	}
	skip := make(map[string]struct{}, len(names))
	for _, name := range names {
		skip[name] = struct{}{}
	}
	return cmp.FilterPath(func(path cmp.Path) bool {
		for _, step := range path {
			if _, ok := skip[step.String()]; ok {
				return true
			}
		}
		return false
	}, cmp.Ignore())
}

// MustMatchFn returns a diff function that fails the test when want and got
// differ, ignoring the named fields:
//
//	var mustMatch = utils.MustMatchFn(".blob")
//	...
//	mustMatch(t, want, got, "table mismatch")
func MustMatchFn(ignoredFields ...string) func(t *testing.T, want, got any, errMsg ...string) {
	opts := cmp.Options{allUnexported, ignorePaths(ignoredFields...)}
	return func(t *testing.T, want, got any, errMsg ...string) {
		t.Helper()
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Fatalf("%s: (-want +got)\n%s", strings.Join(errMsg, " "), diff)
		}
	}
}

// MustMatch compares want and got including unexported fields.
var MustMatch = MustMatchFn()
