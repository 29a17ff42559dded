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

package ces

import (
	"strings"

	"github.com/picolibc/picolibc-sub002/go/iconv/ccs"
)

// euc is an Extended Unix Code encoding. Plane 0 holds the characters
// without the high bit; the other planes are selected by an optional prefix
// followed by data bytes that all carry the high bit.
type euc struct {
	class  *Class
	tables []*ccs.Table
}

func newEUC(c *Class, tables []*ccs.Table) *euc {
	return &euc{class: c, tables: tables}
}

// sevenBit reports whether the codes of t leave the high bit of every
// byte clear.
func sevenBit(t *ccs.Table) bool {
	return t.Width() == ccs.Width7 || t.Width() == ccs.Width14
}

func codeBytes(t *ccs.Table) int {
	if t.Bits() > 8 {
		return 2
	}
	return 1
}

func readCode(src []byte, n int) uint16 {
	if n == 2 {
		return uint16(src[0])<<8 | uint16(src[1])
	}
	return uint16(src[0])
}

func highBits(n int) uint16 {
	if n == 2 {
		return 0x8080
	}
	return 0x80
}

func (e *euc) Decode(src []byte) (rune, int, Status) {
	if len(src) == 0 {
		return 0, 0, Incomplete
	}

	if src[0]&0x80 == 0 {
		t := e.tables[0]
		n := codeBytes(t)
		if len(src) < n {
			return 0, 0, Incomplete
		}
		code := readCode(src, n)
		if code&0x8080 != 0 {
			return 0, n, Illegal
		}
		r, ok := t.Decode(code)
		if !ok {
			return 0, n, Illegal
		}
		return r, n, OK
	}

	for i := 1; i < len(e.tables); i++ {
		prefix := e.class.Planes[i].Prefix
		if len(prefix)+1 > len(src) {
			return 0, 0, Incomplete
		}
		if !strings.HasPrefix(string(src), prefix) {
			continue
		}

		t := e.tables[i]
		n := codeBytes(t)
		data := src[len(prefix):]
		if len(data) < n {
			return 0, 0, Incomplete
		}
		code := readCode(data, n)
		if code&highBits(n) != highBits(n) {
			continue
		}
		if sevenBit(t) {
			code &= 0x7F7F
		}
		if r, ok := t.Decode(code); ok {
			return r, len(prefix) + n, OK
		}
	}
	return 0, 1, Illegal
}

func (e *euc) Encode(dst []byte, r rune) (int, Status) {
	if r < 0 || r > 0xFFFF {
		return 0, NoMapping
	}

	for i, t := range e.tables {
		code, ok := t.Encode(r)
		if !ok {
			continue
		}
		n := codeBytes(t)
		if i == 0 {
			if code&0x8080 != 0 {
				continue
			}
		} else if sevenBit(t) {
			code |= highBits(n)
		} else if code&highBits(n) != highBits(n) {
			continue
		}

		prefix := e.class.Planes[i].Prefix
		if len(prefix)+n > len(dst) {
			return 0, NoRoom
		}
		copy(dst, prefix)
		if n == 2 {
			dst[len(prefix)] = byte(code >> 8)
			dst[len(prefix)+1] = byte(code)
		} else {
			dst[len(prefix)] = byte(code)
		}
		return len(prefix) + n, OK
	}
	return 0, NoMapping
}

func (e *euc) Flush([]byte) (int, Status) { return 0, OK }

func (e *euc) Reset() {}

func (e *euc) Close() error {
	return closeTables(e.tables)
}
