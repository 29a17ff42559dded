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
	"github.com/picolibc/picolibc-sub002/go/iconv/ccs"
)

// tableCodec is a stateless encoding over a single table.
type tableCodec struct {
	table *ccs.Table
}

func newTableCodec(t *ccs.Table) *tableCodec {
	return &tableCodec{table: t}
}

func (c *tableCodec) Decode(src []byte) (rune, int, Status) {
	if len(src) == 0 {
		return 0, 0, Incomplete
	}

	switch c.table.Width() {
	case ccs.Width7, ccs.Width8:
		r, ok := c.table.Decode(uint16(src[0]))
		if !ok {
			return 0, 1, Illegal
		}
		return r, 1, OK

	case ccs.Width14:
		if len(src) < 2 {
			return 0, 0, Incomplete
		}
		r, ok := c.table.Decode(uint16(src[0])<<8 | uint16(src[1]))
		if !ok {
			return 0, 2, Illegal
		}
		return r, 2, OK

	default:
		if r, ok := c.table.Decode(uint16(src[0])); ok {
			return r, 1, OK
		}
		if !c.table.IsLead(src[0]) {
			return 0, 1, Illegal
		}
		if len(src) < 2 {
			return 0, 0, Incomplete
		}
		r, ok := c.table.Decode(uint16(src[0])<<8 | uint16(src[1]))
		if !ok {
			return 0, 2, Illegal
		}
		return r, 2, OK
	}
}

func (c *tableCodec) Encode(dst []byte, r rune) (int, Status) {
	code, ok := c.table.Encode(r)
	if !ok {
		return 0, NoMapping
	}
	if code < 0x100 && c.table.Width() != ccs.Width14 {
		if len(dst) < 1 {
			return 0, NoRoom
		}
		dst[0] = byte(code)
		return 1, OK
	}
	if len(dst) < 2 {
		return 0, NoRoom
	}
	dst[0] = byte(code >> 8)
	dst[1] = byte(code)
	return 2, OK
}

func (c *tableCodec) Flush([]byte) (int, Status) { return 0, OK }

func (c *tableCodec) Reset() {}

func (c *tableCodec) Close() error {
	return c.table.Close()
}
