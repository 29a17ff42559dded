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
	"encoding/binary"
	"unicode/utf16"
)

const (
	surrSelf = 0x10000
	maxRune  = 0x10FFFF
	bom      = 0xFEFF
)

func isSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

func byteOrder(o Order) binary.ByteOrder {
	switch o {
	case OrderLittle:
		return binary.LittleEndian
	case OrderNative:
		return binary.NativeEndian
	default:
		return binary.BigEndian
	}
}

type utf16Codec struct {
	// order is the configured byte order. OrderDefault reads and writes a
	// byte order mark.
	order Order
	// detected is the byte order found while decoding, once known.
	detected Order
	// bomWritten is never cleared by Reset: the mark is written once per
	// codec lifetime.
	bomWritten bool
}

func newUTF16(order Order) *utf16Codec {
	return &utf16Codec{order: order}
}

func (u *utf16Codec) Decode(src []byte) (rune, int, Status) {
	if len(src) < 2 {
		return 0, 0, Incomplete
	}

	order := u.order
	if order == OrderDefault {
		order = u.detected
	}
	if order == OrderDefault {
		switch {
		case src[0] == 0xFE && src[1] == 0xFF:
			u.detected = OrderBig
			return 0, 2, StateOnly
		case src[0] == 0xFF && src[1] == 0xFE:
			u.detected = OrderLittle
			return 0, 2, StateOnly
		}
		order = OrderBig
	}

	r, n, st := decodeUTF16(byteOrder(order), src)
	if st != Incomplete && u.order == OrderDefault {
		u.detected = order
	}
	return r, n, st
}

func decodeUTF16(bo binary.ByteOrder, src []byte) (rune, int, Status) {
	r1 := rune(bo.Uint16(src))
	switch {
	case r1 < 0xD800 || r1 > 0xDFFF:
		return r1, 2, OK
	case r1 >= 0xDC00:
		return 0, 2, Illegal
	}
	if len(src) < 4 {
		return 0, 0, Incomplete
	}
	r2 := rune(bo.Uint16(src[2:]))
	if r2 < 0xDC00 || r2 > 0xDFFF {
		return 0, 2, Illegal
	}
	return utf16.DecodeRune(r1, r2), 4, OK
}

func (u *utf16Codec) Encode(dst []byte, r rune) (int, Status) {
	if r < 0 || r > maxRune || isSurrogate(r) {
		return 0, NoMapping
	}

	size := 2
	if r >= surrSelf {
		size = 4
	}
	writeBOM := u.order == OrderDefault && !u.bomWritten
	if writeBOM {
		size += 2
	}
	if len(dst) < size {
		return 0, NoRoom
	}

	bo := byteOrder(u.order)
	out := dst
	if writeBOM {
		bo.PutUint16(out, bom)
		out = out[2:]
		u.bomWritten = true
	}
	if r < surrSelf {
		bo.PutUint16(out, uint16(r))
	} else {
		r1, r2 := utf16.EncodeRune(r)
		bo.PutUint16(out, uint16(r1))
		bo.PutUint16(out[2:], uint16(r2))
	}
	return size, OK
}

func (u *utf16Codec) Flush([]byte) (int, Status) { return 0, OK }

func (u *utf16Codec) Reset() {
	u.detected = OrderDefault
}

func (u *utf16Codec) Close() error { return nil }
