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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestUTF8Decode(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		want rune
		n    int
		st   Status
	}{
		{"ascii", []byte("a"), 'a', 1, OK},
		{"two", []byte{0xC3, 0xA9}, 'é', 2, OK},
		{"three", []byte{0xE2, 0x82, 0xAC}, '€', 3, OK},
		{"four", []byte{0xF0, 0x9F, 0x98, 0x80}, 0x1F600, 4, OK},
		{"five", []byte{0xF8, 0x88, 0x80, 0x80, 0x80}, 0x200000, 5, OK},
		{"six", []byte{0xFD, 0xBF, 0xBF, 0xBF, 0xBF, 0xBF}, 0x7FFFFFFF, 6, OK},
		{"overlong two", []byte{0xC0, 0x80}, 0, 2, Illegal},
		{"overlong three", []byte{0xE0, 0x80, 0xAF}, 0, 3, Illegal},
		{"overlong four", []byte{0xF0, 0x8F, 0xBF, 0xBF}, 0, 4, Illegal},
		{"lone continuation", []byte{0x80}, 0, 1, Illegal},
		{"bad continuation", []byte{0xE2, 0x28, 0xA1}, 0, 1, Illegal},
		{"bad continuation before end", []byte{0xE2, 0x28}, 0, 1, Illegal},
		{"invalid lead", []byte{0xFE}, 0, 1, Illegal},
		{"truncated", []byte{0xE2, 0x82}, 0, 0, Incomplete},
		{"truncated six", []byte{0xFC, 0x84}, 0, 0, Incomplete},
	}

	c := utf8Codec{}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, n, st := c.Decode(tc.in)
			assert.Equal(t, tc.st, st)
			assert.Equal(t, tc.n, n)
			if st == OK {
				assert.Equal(t, tc.want, r)
			}
		})
	}
}

func TestUTF8Encode(t *testing.T) {
	c := utf8Codec{}
	buf := make([]byte, 6)
	for _, r := range []rune{0, 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF, 0x1FFFFF, 0x200000, 0x3FFFFFF, 0x4000000, 0x7FFFFFFF} {
		n, st := c.Encode(buf, r)
		require.Equal(t, OK, st, "%U", r)
		got, m, st := c.Decode(buf[:n])
		require.Equal(t, OK, st, "%U", r)
		assert.Equal(t, n, m)
		assert.Equal(t, r, got)
		if r <= 0x10FFFF {
			assert.Equal(t, []byte(string(r)), buf[:n], "%U", r)
		}
	}

	n, st := c.Encode(buf[:2], '€')
	assert.Equal(t, NoRoom, st)
	assert.Zero(t, n)
	_, st = c.Encode(buf, -1)
	assert.Equal(t, NoMapping, st)
}

func TestUTF16ByteOrderMark(t *testing.T) {
	c := open(t, "utf_16")

	_, n, st := c.Decode([]byte{0xFF, 0xFE, 0x41, 0x00})
	assert.Equal(t, StateOnly, st)
	assert.Equal(t, 2, n)
	r, n, st := c.Decode([]byte{0x41, 0x00})
	assert.Equal(t, OK, st)
	assert.Equal(t, 2, n)
	assert.Equal(t, 'A', r)

	// after a reset the order is detected again; without a mark it is big
	// endian and nothing is consumed
	c.Reset()
	r, n, st = c.Decode([]byte{0x00, 0x41})
	assert.Equal(t, OK, st)
	assert.Equal(t, 2, n)
	assert.Equal(t, 'A', r)
}

func TestUTF16Surrogates(t *testing.T) {
	c := open(t, "utf_16be")

	assert.Equal(t, []rune{0x1F600}, decodeAll(t, c, []byte{0xD8, 0x3D, 0xDE, 0x00}))

	_, n, st := c.Decode([]byte{0xD8, 0x3D})
	assert.Equal(t, Incomplete, st, "lead surrogate at the end of input")
	assert.Zero(t, n)
	_, _, st = c.Decode([]byte{0xD8, 0x3D, 0xDE})
	assert.Equal(t, Incomplete, st)
	_, _, st = c.Decode([]byte{0xD8, 0x3D, 0x00, 0x41})
	assert.Equal(t, Illegal, st, "lead surrogate without trail")
	_, _, st = c.Decode([]byte{0xDE, 0x00, 0x00, 0x41})
	assert.Equal(t, Illegal, st, "lone trail surrogate")

	buf := make([]byte, 8)
	_, st = c.Encode(buf, 0xD800)
	assert.Equal(t, NoMapping, st)
	_, st = c.Encode(buf, 0x110000)
	assert.Equal(t, NoMapping, st)
	_, st = c.Encode(buf[:3], 0x1F600)
	assert.Equal(t, NoRoom, st, "surrogate pairs are written whole")
}

func TestUTF16EncodeMatchesXText(t *testing.T) {
	const text = "héllo, 世界 😀"
	testCases := []struct {
		name   string
		oracle unicode.Endianness
	}{
		{"utf_16be", unicode.BigEndian},
		{"utf_16le", unicode.LittleEndian},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := unicode.UTF16(tc.oracle, unicode.IgnoreBOM).NewEncoder().String(text)
			require.NoError(t, err)
			assert.Equal(t, []byte(want), encodeAll(t, open(t, tc.name), text))
		})
	}
}

func TestUTF16WritesMarkOnce(t *testing.T) {
	c := open(t, "utf_16")
	buf := make([]byte, 8)

	n, st := c.Encode(buf[:3], 'A')
	require.Equal(t, NoRoom, st, "mark and character are written together")
	require.Zero(t, n)

	n, st = c.Encode(buf, 'A')
	require.Equal(t, OK, st)
	assert.Equal(t, []byte{0xFE, 0xFF, 0x00, 0x41}, buf[:n])

	c.Reset()
	n, st = c.Encode(buf, 'B')
	require.Equal(t, OK, st)
	assert.Equal(t, []byte{0x00, 0x42}, buf[:n])
}

func TestUCS(t *testing.T) {
	buf := make([]byte, 4)

	ucs2 := open(t, "ucs_2")
	n, st := ucs2.Encode(buf, '€')
	require.Equal(t, OK, st)
	assert.Equal(t, []byte{0x20, 0xAC}, buf[:n])
	_, st = ucs2.Encode(buf, 0x10000)
	assert.Equal(t, NoMapping, st)
	_, st = ucs2.Encode(buf, 0xDC00)
	assert.Equal(t, NoMapping, st)
	_, _, st = ucs2.Decode([]byte{0xD8, 0x00})
	assert.Equal(t, Illegal, st)
	_, _, st = ucs2.Decode([]byte{0x20})
	assert.Equal(t, Incomplete, st)

	ucs2le := open(t, "ucs_2le")
	assert.Equal(t, []byte{0xAC, 0x20}, encodeAll(t, ucs2le, "€"))

	ucs4 := open(t, "ucs_4")
	assert.Equal(t, []byte{0x00, 0x01, 0xF6, 0x00}, encodeAll(t, ucs4, "😀"))
	_, _, st = ucs4.Decode([]byte{0x80, 0x00, 0x00, 0x00})
	assert.Equal(t, Illegal, st)
	r, _, st := ucs4.Decode([]byte{0x7F, 0xFF, 0xFF, 0xFF})
	assert.Equal(t, OK, st)
	assert.Equal(t, rune(0x7FFFFFFF), r)

	ucs4le := open(t, "ucs_4le")
	assert.Equal(t, []rune{0x1F600}, decodeAll(t, ucs4le, []byte{0x00, 0xF6, 0x01, 0x00}))

	internal := open(t, "ucs_4_internal")
	native := binary.NativeEndian.AppendUint32(nil, 0x20AC)
	assert.Equal(t, native, encodeAll(t, internal, "€"))
	assert.Equal(t, []rune{'€'}, decodeAll(t, internal, native))
}
