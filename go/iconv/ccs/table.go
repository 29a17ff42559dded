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

// Package ccs implements coded character set tables: compact binary blobs
// holding a decode table (charset code to code point) and an encode table
// (code point to charset code).
//
// A blob starts with a 16 byte header:
//
//	offset size meaning
//	0      5    label "\x03CSCT"
//	5      1    flags; bit 0 is the byte order (0 big endian, 1 little endian)
//	6      1    number of bits of the charset code (7, 8, 14 or 16)
//	7      1    width class of the decode table (0..3)
//	8      4    offset of the decode table, relative to byte 8
//	12     4    offset of the encode table, relative to byte 8
//
// One-level tables are arrays of uint16 cells (128 for 7-bit, 256 for
// 8-bit). Two-level tables are arrays of uint32 row offsets (128 for 14-bit,
// 256 for 16-bit) relative to the table's own start, each pointing at a
// one-level row. A row offset of zero marks a row with no mappings and the
// cell value 0xFFFE marks a code with no mapping. The encode table is always
// a 16-bit table.
package ccs

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/picolibc/picolibc-sub002/go/errno"
)

const (
	// Label opens every table blob.
	Label = "\x03CSCT"

	// HeaderSize is the size of the fixed blob header.
	HeaderSize = 16

	// Unmapped is the cell value for codes with no mapping.
	Unmapped = 0xFFFE

	// offsetBase is the position the decode and encode offsets are
	// relative to.
	offsetBase = 8
)

// ByteOrder is the byte order of the multi-byte integers in a blob.
type ByteOrder uint8

const (
	BigEndian    ByteOrder = 0
	LittleEndian ByteOrder = 1
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

func (o ByteOrder) uint16(b []byte) uint16 {
	switch o {
	case LittleEndian:
		return binary.LittleEndian.Uint16(b)
	default:
		return binary.BigEndian.Uint16(b)
	}
}

func (o ByteOrder) uint32(b []byte) uint32 {
	switch o {
	case LittleEndian:
		return binary.LittleEndian.Uint32(b)
	default:
		return binary.BigEndian.Uint32(b)
	}
}

func (o ByteOrder) putUint16(b []byte, v uint16) {
	switch o {
	case LittleEndian:
		binary.LittleEndian.PutUint16(b, v)
	default:
		binary.BigEndian.PutUint16(b, v)
	}
}

func (o ByteOrder) putUint32(b []byte, v uint32) {
	switch o {
	case LittleEndian:
		binary.LittleEndian.PutUint32(b, v)
	default:
		binary.BigEndian.PutUint32(b, v)
	}
}

// Width is the width class of a table.
type Width uint8

const (
	Width7 Width = iota
	Width8
	Width14
	Width16
)

// Bits returns the number of bits of a charset code in this width class.
func (w Width) Bits() int {
	switch w {
	case Width7:
		return 7
	case Width8:
		return 8
	case Width14:
		return 14
	default:
		return 16
	}
}

func (w Width) String() string {
	switch w {
	case Width7:
		return "7-bit"
	case Width8:
		return "8-bit"
	case Width14:
		return "14-bit"
	case Width16:
		return "16-bit"
	}
	return "invalid"
}

// OneByte reports whether codes of this width are a single byte.
func (w Width) OneByte() bool {
	return w == Width7 || w == Width8
}

// topEntries is the number of row offsets in a two-level table, or the
// number of cells in a one-level table.
func (w Width) topEntries() int {
	if w == Width7 || w == Width14 {
		return 128
	}
	return 256
}

// size returns the size in bytes of a one-level table or of the row offset
// array of a two-level table.
func (w Width) size() int {
	if w.OneByte() {
		return w.topEntries() * 2
	}
	return w.topEntries() * 4
}

// rowWidth is the width class of the rows of a two-level table.
func (w Width) rowWidth() Width {
	if w == Width14 {
		return Width7
	}
	return Width8
}

func widthForBits(nbits int) (Width, bool) {
	switch nbits {
	case 7:
		return Width7, true
	case 8:
		return Width8, true
	case 14:
		return Width14, true
	case 16:
		return Width16, true
	}
	return 0, false
}

// Table is a parsed conversion table. Lookups never allocate. A Table built
// from a file owns its buffer until Close; a built-in Table borrows a blob
// that lives for the whole program.
type Table struct {
	name   string
	blob   []byte
	order  ByteOrder
	width  Width
	dec    int
	enc    int
	owned  bool
	closed atomic.Bool
}

// Parse validates blob and returns a Table that borrows it. Every region the
// header and row offsets refer to must lie inside blob.
func Parse(name string, blob []byte) (*Table, error) {
	if len(blob) < HeaderSize {
		return nil, errno.Errorf(errno.EINVAL, "ccs %s: blob of %d bytes is shorter than the header", name, len(blob))
	}
	if string(blob[:len(Label)]) != Label {
		return nil, errno.Errorf(errno.EINVAL, "ccs %s: bad label %q", name, blob[:len(Label)])
	}

	order := ByteOrder(blob[5] & 1)
	version := blob[7]
	if version > uint8(Width16) {
		return nil, errno.Errorf(errno.EINVAL, "ccs %s: unsupported version %d", name, version)
	}
	width, ok := widthForBits(int(blob[6]))
	if !ok {
		return nil, errno.Errorf(errno.EINVAL, "ccs %s: unsupported code size of %d bits", name, blob[6])
	}
	if width != Width(version) {
		return nil, errno.Errorf(errno.EINVAL, "ccs %s: %d-bit codes do not match a %s decode table", name, blob[6], Width(version))
	}

	t := &Table{
		name:  name,
		blob:  blob,
		order: order,
		width: width,
		dec:   offsetBase + int(order.uint32(blob[8:12])),
		enc:   offsetBase + int(order.uint32(blob[12:16])),
	}
	if err := t.validate(t.dec, width); err != nil {
		return nil, errno.Wrapf(err, "ccs %s: decode table", name)
	}
	if err := t.validate(t.enc, Width16); err != nil {
		return nil, errno.Wrapf(err, "ccs %s: encode table", name)
	}
	return t, nil
}

func (t *Table) inBounds(off, size int) bool {
	return off >= 0 && size >= 0 && off <= len(t.blob) && size <= len(t.blob)-off
}

func (t *Table) validate(base int, w Width) error {
	if !t.inBounds(base, w.size()) {
		return errno.Errorf(errno.EINVAL, "%s table at %d overruns the blob", w, base)
	}
	if w.OneByte() {
		return nil
	}
	row := w.rowWidth()
	for i := 0; i < w.topEntries(); i++ {
		off := t.order.uint32(t.blob[base+i*4:])
		if off == 0 {
			continue
		}
		if !t.inBounds(base+int(off), row.size()) {
			return errno.Errorf(errno.EINVAL, "row %d at offset %d overruns the blob", i, off)
		}
	}
	return nil
}

// cell reads entry i of the one-level table at base.
func (t *Table) cell(base, i int) uint16 {
	return t.order.uint16(t.blob[base+i*2:])
}

// row returns the base of row i of the two-level table at base, or -1 for
// an unmapped row.
func (t *Table) row(base, i int) int {
	off := t.order.uint32(t.blob[base+i*4:])
	if off == 0 {
		return -1
	}
	return base + int(off)
}

// Decode maps a charset code to a code point.
func (t *Table) Decode(code uint16) (rune, bool) {
	var v uint16
	switch t.width {
	case Width7:
		if code&0xFF80 != 0 {
			return 0, false
		}
		v = t.cell(t.dec, int(code))
	case Width8:
		if code > 0xFF {
			return 0, false
		}
		v = t.cell(t.dec, int(code))
	case Width14:
		if code&0x8080 != 0 {
			return 0, false
		}
		r := t.row(t.dec, int(code>>8))
		if r < 0 {
			return 0, false
		}
		v = t.cell(r, int(code&0x7F))
	case Width16:
		r := t.row(t.dec, int(code>>8))
		if r < 0 {
			return 0, false
		}
		v = t.cell(r, int(code&0xFF))
	}
	if v == Unmapped {
		return 0, false
	}
	return rune(v), true
}

// Encode maps a code point to a charset code.
func (t *Table) Encode(r rune) (uint16, bool) {
	if r < 0 || r > 0xFFFF {
		return 0, false
	}
	row := t.row(t.enc, int(r>>8))
	if row < 0 {
		return 0, false
	}
	v := t.cell(row, int(r&0xFF))
	if v == Unmapped {
		return 0, false
	}
	return v, true
}

// IsLead reports whether b starts a two byte code, i.e. whether the decode
// table of a 16-bit table has a row for it.
func (t *Table) IsLead(b byte) bool {
	return t.width == Width16 && b != 0 && t.row(t.dec, int(b)) >= 0
}

// Name is the canonical charset name the table was loaded as.
func (t *Table) Name() string { return t.name }

// Width is the width class of the decode table.
func (t *Table) Width() Width { return t.width }

// Bits is the number of bits of a charset code.
func (t *Table) Bits() int { return t.width.Bits() }

// ByteOrder is the byte order of the underlying blob.
func (t *Table) ByteOrder() ByteOrder { return t.order }

// Size is the size in bytes of the underlying blob.
func (t *Table) Size() int { return len(t.blob) }

// Owned reports whether the table owns its buffer, i.e. was read from a file.
func (t *Table) Owned() bool { return t.owned }

// Close releases the table's buffer. Closing a table twice returns EBADF.
func (t *Table) Close() error {
	if !t.closed.CompareAndSwap(false, true) {
		return errno.Errorf(errno.EBADF, "ccs %s: table already closed", t.name)
	}
	if t.owned {
		t.blob = nil
	}
	return nil
}
