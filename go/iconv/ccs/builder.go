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
	"github.com/picolibc/picolibc-sub002/go/errno"
)

// Builder compiles a set of code to code point mappings into a table blob.
// The encode table is derived from the decode mappings; when several codes
// map to the same code point, the lowest code wins.
type Builder struct {
	width Width
	order ByteOrder
	dec   map[uint16]rune
}

// NewBuilder returns a Builder for a decode table of the given width, in
// big-endian byte order.
func NewBuilder(width Width) *Builder {
	return &Builder{width: width, dec: make(map[uint16]rune)}
}

// SetByteOrder changes the byte order of the generated blob.
func (b *Builder) SetByteOrder(order ByteOrder) *Builder {
	b.order = order
	return b
}

// Width returns the width class of the table being built.
func (b *Builder) Width() Width { return b.width }

// Len returns the number of mappings added so far.
func (b *Builder) Len() int { return len(b.dec) }

// Add records that code decodes to r. Codes must fit the builder's width and
// r must be a BMP code point other than the 0xFFFE and 0xFFFF noncharacters.
func (b *Builder) Add(code uint16, r rune) error {
	switch b.width {
	case Width7:
		if code&0xFF80 != 0 {
			return errno.Errorf(errno.EINVAL, "code %#x does not fit a 7-bit table", code)
		}
	case Width8:
		if code > 0xFF {
			return errno.Errorf(errno.EINVAL, "code %#x does not fit an 8-bit table", code)
		}
	case Width14:
		if code&0x8080 != 0 {
			return errno.Errorf(errno.EINVAL, "code %#x does not fit a 14-bit table", code)
		}
	}
	if r < 0 || r >= Unmapped {
		return errno.Errorf(errno.EINVAL, "code point %U cannot be stored in a table", r)
	}
	if code == Unmapped {
		return errno.Errorf(errno.EINVAL, "code %#x is reserved", code)
	}
	b.dec[code] = r
	return nil
}

// Bytes returns the compiled blob. The layout is the header, then the
// decode table, then the encode table.
func (b *Builder) Bytes() []byte {
	dec := make(map[uint16]uint16, len(b.dec))
	enc := make(map[uint16]uint16, len(b.dec))
	for code := 0; code <= 0xFFFF; code++ {
		r, ok := b.dec[uint16(code)]
		if !ok {
			continue
		}
		dec[uint16(code)] = uint16(r)
		if _, dup := enc[uint16(r)]; !dup {
			enc[uint16(r)] = uint16(code)
		}
	}

	decTable := b.table(b.width, dec)
	encTable := b.table(Width16, enc)

	blob := make([]byte, HeaderSize, HeaderSize+len(decTable)+len(encTable))
	copy(blob, Label)
	blob[5] = byte(b.order)
	blob[6] = byte(b.width.Bits())
	blob[7] = byte(b.width)
	b.order.putUint32(blob[8:], uint32(HeaderSize-offsetBase))
	b.order.putUint32(blob[12:], uint32(HeaderSize-offsetBase+len(decTable)))
	blob = append(blob, decTable...)
	blob = append(blob, encTable...)
	return blob
}

func (b *Builder) table(w Width, cells map[uint16]uint16) []byte {
	if w.OneByte() {
		return b.oneLevel(w.topEntries(), func(i int) (uint16, bool) {
			v, ok := cells[uint16(i)]
			return v, ok
		})
	}

	shift, mask := 8, 0xFF
	if w == Width14 {
		mask = 0x7F
	}
	rows := make(map[int]bool)
	for code := range cells {
		rows[int(code)>>shift] = true
	}

	top := make([]byte, w.size())
	var body []byte
	for i := 0; i < w.topEntries(); i++ {
		if !rows[i] {
			continue
		}
		b.order.putUint32(top[i*4:], uint32(len(top)+len(body)))
		hi := i << shift
		body = append(body, b.oneLevel(mask+1, func(lo int) (uint16, bool) {
			v, ok := cells[uint16(hi|lo)]
			return v, ok
		})...)
	}
	return append(top, body...)
}

func (b *Builder) oneLevel(n int, get func(i int) (uint16, bool)) []byte {
	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		v, ok := get(i)
		if !ok {
			v = Unmapped
		}
		b.order.putUint16(out[i*2:], v)
	}
	return out
}
