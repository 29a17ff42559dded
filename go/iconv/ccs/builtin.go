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
	"slices"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// source fills a Builder with the mappings of one built-in charset.
type source struct {
	width Width
	fill  func(b *Builder)
}

var builtinSources = map[string]source{
	"us_ascii":       {Width7, fillASCII},
	"iso_8859_1":     eightBit(charmap.ISO8859_1),
	"iso_8859_2":     eightBit(charmap.ISO8859_2),
	"iso_8859_3":     eightBit(charmap.ISO8859_3),
	"iso_8859_4":     eightBit(charmap.ISO8859_4),
	"iso_8859_5":     eightBit(charmap.ISO8859_5),
	"iso_8859_6":     eightBit(charmap.ISO8859_6),
	"iso_8859_7":     eightBit(charmap.ISO8859_7),
	"iso_8859_8":     eightBit(charmap.ISO8859_8),
	"iso_8859_9":     eightBit(charmap.ISO8859_9),
	"iso_8859_10":    eightBit(charmap.ISO8859_10),
	"iso_8859_13":    eightBit(charmap.ISO8859_13),
	"iso_8859_14":    eightBit(charmap.ISO8859_14),
	"iso_8859_15":    eightBit(charmap.ISO8859_15),
	"iso_8859_16":    eightBit(charmap.ISO8859_16),
	"koi8_r":         eightBit(charmap.KOI8R),
	"koi8_u":         eightBit(charmap.KOI8U),
	"cp437":          eightBit(charmap.CodePage437),
	"cp850":          eightBit(charmap.CodePage850),
	"cp852":          eightBit(charmap.CodePage852),
	"cp855":          eightBit(charmap.CodePage855),
	"cp858":          eightBit(charmap.CodePage858),
	"cp866":          eightBit(charmap.CodePage866),
	"win_1250":       eightBit(charmap.Windows1250),
	"win_1251":       eightBit(charmap.Windows1251),
	"win_1252":       eightBit(charmap.Windows1252),
	"win_1253":       eightBit(charmap.Windows1253),
	"win_1254":       eightBit(charmap.Windows1254),
	"win_1255":       eightBit(charmap.Windows1255),
	"win_1256":       eightBit(charmap.Windows1256),
	"win_1257":       eightBit(charmap.Windows1257),
	"win_1258":       eightBit(charmap.Windows1258),
	"macintosh":      eightBit(charmap.Macintosh),
	"jis_x0201":      {Width8, fillJISX0201},
	"jis_x0208_1983": {Width14, doubleByte(japanese.EUCJP, nil)},
	"jis_x0212_1990": {Width14, doubleByte(japanese.EUCJP, []byte{0x8F})},
	"ksx1001":        {Width14, doubleByte(korean.EUCKR, nil)},
	"gb_2312_80":     {Width14, doubleByte(simplifiedchinese.GBK, nil)},
	"big5":           {Width16, fillBig5},
	"shift_jis":      {Width16, fillShiftJIS},
}

var (
	builtinOnce  sync.Once
	builtinBlobs map[string][]byte
)

func buildBuiltins() {
	builtinBlobs = make(map[string][]byte, len(builtinSources))
	for name, src := range builtinSources {
		b := NewBuilder(src.width)
		src.fill(b)
		builtinBlobs[name] = b.Bytes()
	}
}

// Builtin returns the compiled blob of a built-in charset. The blob is
// shared and must not be modified.
func Builtin(name string) ([]byte, bool) {
	builtinOnce.Do(buildBuiltins)
	blob, ok := builtinBlobs[name]
	return blob, ok
}

// BuiltinNames returns the sorted names of the built-in charsets.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinSources))
	for name := range builtinSources {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func fillASCII(b *Builder) {
	for c := 0; c < 0x80; c++ {
		_ = b.Add(uint16(c), rune(c))
	}
}

func eightBit(cm *charmap.Charmap) source {
	return source{Width8, func(b *Builder) {
		for c := 0; c < 0x100; c++ {
			if r := cm.DecodeByte(byte(c)); r != utf8.RuneError {
				_ = b.Add(uint16(c), r)
			}
		}
	}}
}

// JIS X 0201 is ASCII with yen sign and overline in place of backslash and
// tilde, plus halfwidth katakana in 0xA1..0xDF.
func fillJISX0201(b *Builder) {
	for c := 0; c < 0x80; c++ {
		r := rune(c)
		switch c {
		case 0x5C:
			r = 0x00A5
		case 0x7E:
			r = 0x203E
		}
		_ = b.Add(uint16(c), r)
	}
	for c := 0xA1; c <= 0xDF; c++ {
		_ = b.Add(uint16(c), rune(0xFF61+c-0xA1))
	}
}

// decodeOne decodes src and returns its code point only when src decodes
// to exactly one valid BMP character.
func decodeOne(dec *encoding.Decoder, src []byte) (rune, bool) {
	out, err := dec.Bytes(src)
	if err != nil || len(out) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRune(out)
	if size != len(out) || r == utf8.RuneError || r >= Unmapped {
		return 0, false
	}
	return r, true
}

// doubleByte fills a 14-bit table from an EUC style encoding: each code
// 0x2121..0x7E7E is decoded as prefix followed by the code with the high
// bits set.
func doubleByte(enc encoding.Encoding, prefix []byte) func(b *Builder) {
	return func(b *Builder) {
		dec := enc.NewDecoder()
		buf := make([]byte, len(prefix)+2)
		copy(buf, prefix)
		for hi := 0x21; hi <= 0x7E; hi++ {
			for lo := 0x21; lo <= 0x7E; lo++ {
				buf[len(prefix)] = byte(hi | 0x80)
				buf[len(prefix)+1] = byte(lo | 0x80)
				if r, ok := decodeOne(dec, buf); ok {
					_ = b.Add(uint16(hi<<8|lo), r)
				}
			}
		}
	}
}

func fillBig5(b *Builder) {
	fillASCII(b)
	dec := traditionalchinese.Big5.NewDecoder()
	for hi := 0x81; hi <= 0xFE; hi++ {
		for lo := 0x40; lo <= 0xFE; lo++ {
			if lo > 0x7E && lo < 0xA1 {
				continue
			}
			if r, ok := decodeOne(dec, []byte{byte(hi), byte(lo)}); ok {
				_ = b.Add(uint16(hi<<8|lo), r)
			}
		}
	}
}

func fillShiftJIS(b *Builder) {
	dec := japanese.ShiftJIS.NewDecoder()
	for c := 0; c < 0x100; c++ {
		if c >= 0x80 && (c < 0xA1 || c > 0xDF) {
			continue
		}
		if r, ok := decodeOne(dec, []byte{byte(c)}); ok {
			_ = b.Add(uint16(c), r)
		}
	}
	for hi := 0x81; hi <= 0xFC; hi++ {
		if hi > 0x9F && hi < 0xE0 {
			continue
		}
		for lo := 0x40; lo <= 0xFC; lo++ {
			if lo == 0x7F {
				continue
			}
			if r, ok := decodeOne(dec, []byte{byte(hi), byte(lo)}); ok {
				_ = b.Add(uint16(hi<<8|lo), r)
			}
		}
	}
}
