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

// ucsCodec is a fixed width copy of each code point in two or four bytes.
type ucsCodec struct {
	order Order
	width int
}

func (u *ucsCodec) limit() rune {
	if u.width == 2 {
		return 0xFFFF
	}
	return 0x7FFFFFFF
}

func (u *ucsCodec) Decode(src []byte) (rune, int, Status) {
	if len(src) < u.width {
		return 0, 0, Incomplete
	}
	bo := byteOrder(u.order)
	if u.width == 2 {
		r := rune(bo.Uint16(src))
		if isSurrogate(r) {
			return 0, 2, Illegal
		}
		return r, 2, OK
	}
	v := bo.Uint32(src)
	if v > 0x7FFFFFFF {
		return 0, 4, Illegal
	}
	return rune(v), 4, OK
}

func (u *ucsCodec) Encode(dst []byte, r rune) (int, Status) {
	if r < 0 || r > u.limit() || (u.width == 2 && isSurrogate(r)) {
		return 0, NoMapping
	}
	if len(dst) < u.width {
		return 0, NoRoom
	}
	bo := byteOrder(u.order)
	if u.width == 2 {
		bo.PutUint16(dst, uint16(r))
	} else {
		bo.PutUint32(dst, uint32(r))
	}
	return u.width, OK
}

func (u *ucsCodec) Flush([]byte) (int, Status) { return 0, OK }
func (u *ucsCodec) Reset()                     {}
func (u *ucsCodec) Close() error               { return nil }
