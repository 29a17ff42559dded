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

// utf8Codec implements the original UTF-8 definition with sequences of up
// to six bytes, covering code points up to 0x7FFFFFFF. The unicode/utf8
// package stops at four bytes and U+10FFFF, so it cannot be used here.
type utf8Codec struct{}

// utf8Forms describes each sequence length: the lead byte marker, the mask
// of the payload bits in the lead byte and the smallest code point that
// needs this many bytes.
var utf8Forms = [...]struct {
	lead, mask byte
	min        rune
}{
	2: {0xC0, 0x1F, 0x80},
	3: {0xE0, 0x0F, 0x800},
	4: {0xF0, 0x07, 0x10000},
	5: {0xF8, 0x03, 0x200000},
	6: {0xFC, 0x01, 0x4000000},
}

func utf8Len(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead < 0xC0:
		return 0
	case lead < 0xE0:
		return 2
	case lead < 0xF0:
		return 3
	case lead < 0xF8:
		return 4
	case lead < 0xFC:
		return 5
	case lead < 0xFE:
		return 6
	}
	return 0
}

func (utf8Codec) Decode(src []byte) (rune, int, Status) {
	if len(src) == 0 {
		return 0, 0, Incomplete
	}
	size := utf8Len(src[0])
	switch size {
	case 0:
		return 0, 1, Illegal
	case 1:
		return rune(src[0]), 1, OK
	}

	form := utf8Forms[size]
	r := rune(src[0] & form.mask)
	for i := 1; i < size; i++ {
		if i >= len(src) {
			return 0, 0, Incomplete
		}
		if src[i]&0xC0 != 0x80 {
			return 0, 1, Illegal
		}
		r = r<<6 | rune(src[i]&0x3F)
	}
	if r < form.min {
		return 0, size, Illegal
	}
	return r, size, OK
}

func (utf8Codec) Encode(dst []byte, r rune) (int, Status) {
	var size int
	switch {
	case r < 0:
		return 0, NoMapping
	case r < 0x80:
		if len(dst) < 1 {
			return 0, NoRoom
		}
		dst[0] = byte(r)
		return 1, OK
	case r < 0x800:
		size = 2
	case r < 0x10000:
		size = 3
	case r < 0x200000:
		size = 4
	case r < 0x4000000:
		size = 5
	default:
		size = 6
	}
	if len(dst) < size {
		return 0, NoRoom
	}
	for i := size - 1; i > 0; i-- {
		dst[i] = byte(r&0x3F) | 0x80
		r >>= 6
	}
	dst[0] = utf8Forms[size].lead | byte(r)
	return size, OK
}

func (utf8Codec) Flush([]byte) (int, Status) { return 0, OK }
func (utf8Codec) Reset()                     {}
func (utf8Codec) Close() error               { return nil }
