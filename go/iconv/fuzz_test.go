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

package iconv

import (
	"testing"

	fuzz "github.com/AdaLogics/go-fuzz-headers"
	"github.com/spf13/afero"

	"github.com/picolibc/picolibc-sub002/go/errno"
)

func FuzzConvert(f *testing.F) {
	f.Add([]byte("\x00\x05\x10hello, wörld"))
	f.Add([]byte("\x01\x02\x08\x1b$B\x24\x22\x1b(B"))
	f.Add([]byte("\x03\x04\x01\xe2\x82\xac"))

	names := List()
	f.Fuzz(func(t *testing.T, data []byte) {
		fc := fuzz.NewConsumer(data)
		from, err := fc.GetInt()
		if err != nil {
			return
		}
		to, err := fc.GetInt()
		if err != nil {
			return
		}
		size, err := fc.GetInt()
		if err != nil {
			return
		}
		src, err := fc.GetBytes()
		if err != nil {
			return
		}

		c, err := Open(names[uint(to)%uint(len(names))], names[uint(from)%uint(len(names))], WithFS(afero.NewMemMapFs()))
		if err != nil {
			t.Fatal(err)
		}
		defer c.Close()

		dst := make([]byte, uint(size)%64)
		for len(src) > 0 {
			nDst, nSrc, nSubst, err := c.Convert(dst, src)
			if nDst > len(dst) || nSrc > len(src) || nSubst > nSrc {
				t.Fatalf("bad counts: nDst=%d nSrc=%d nSubst=%d", nDst, nSrc, nSubst)
			}
			switch errno.Code(err) {
			case errno.OK:
				if nSrc != len(src) {
					t.Fatalf("short conversion without error: %d of %d", nSrc, len(src))
				}
			case errno.E2BIG:
				// targets without '_' cannot encode the substitution
				if nSrc == 0 && len(dst) >= 64 {
					return
				}
				if nSrc == 0 {
					dst = make([]byte, 2*len(dst)+8)
				}
			case errno.EINVAL, errno.EILSEQ:
				return
			default:
				t.Fatalf("unexpected error: %v", err)
			}
			src = src[nSrc:]
		}
	})
}
