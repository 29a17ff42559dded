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

package ccs

import (
	"github.com/spf13/afero"

	"github.com/picolibc/picolibc-sub002/go/errno"
	"github.com/picolibc/picolibc-sub002/go/log"
	"github.com/picolibc/picolibc-sub002/go/nls"
)

// Open returns the table for a canonical charset name. Built-in tables take
// precedence; otherwise <dir>/<name>.cct is read from fsys into a buffer
// owned by the returned Table.
func Open(fsys afero.Fs, dir, name string) (*Table, error) {
	if blob, ok := Builtin(name); ok {
		return Parse(name, blob)
	}
	if fsys == nil {
		return nil, errno.Errorf(errno.EINVAL, "ccs %s: no such table", name)
	}

	path := nls.TablePath(dir, name)
	blob, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errno.WrapCode(err, errno.EINVAL, "ccs "+name)
	}

	t, err := Parse(name, blob)
	if err != nil {
		log.WarnS("malformed conversion table", "path", path, "error", err)
		return nil, err
	}
	t.owned = true
	log.DebugS("loaded conversion table", "path", path, "bits", t.Bits(), "bytes", len(blob))
	return t, nil
}
