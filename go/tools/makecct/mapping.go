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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/picolibc/picolibc-sub002/go/iconv/ccs"
)

// mapping is one line of a text mapping file.
type mapping struct {
	code uint16
	r    rune
}

// parseMappings reads a mapping file in the format published by the Unicode
// consortium: a charset code and a code point per line, both in hex, with
// '#' starting a comment. Lines without a code point are undefined codes
// and are skipped.
func parseMappings(rd io.Reader) ([]mapping, error) {
	var out []mapping
	scanner := bufio.NewScanner(rd)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 0, 1:
			continue
		case 2:
		default:
			return nil, fmt.Errorf("line %d: expected two fields, got %d", lineno, len(fields))
		}

		code, err := parseHex(fields[0], 16)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		r, err := parseHex(fields[1], 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		out = append(out, mapping{code: uint16(code), r: rune(r)})
	}
	return out, scanner.Err()
}

func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return strconv.ParseUint(s, 16, bits)
}

// inferWidth picks the narrowest width class that holds every code.
func inferWidth(ms []mapping) ccs.Width {
	var maxCode uint16
	sevenBitPairs := true
	for _, m := range ms {
		maxCode = max(maxCode, m.code)
		if m.code&0x8080 != 0 {
			sevenBitPairs = false
		}
	}
	switch {
	case maxCode < 0x80:
		return ccs.Width7
	case maxCode <= 0xFF:
		return ccs.Width8
	case sevenBitPairs:
		return ccs.Width14
	}
	return ccs.Width16
}

func compileMappings(ms []mapping, order ccs.ByteOrder) ([]byte, error) {
	b := ccs.NewBuilder(inferWidth(ms)).SetByteOrder(order)
	for _, m := range ms {
		if err := b.Add(m.code, m.r); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

// recompile rebuilds a table blob in the given byte order.
func recompile(name string, blob []byte, order ccs.ByteOrder) ([]byte, error) {
	t, err := ccs.Parse(name, blob)
	if err != nil {
		return nil, err
	}
	if t.ByteOrder() == order {
		return blob, nil
	}

	b := ccs.NewBuilder(t.Width()).SetByteOrder(order)
	for code := 0; code < 0xFFFF; code++ {
		if r, ok := t.Decode(uint16(code)); ok {
			if err := b.Add(uint16(code), r); err != nil {
				return nil, err
			}
		}
	}
	return b.Bytes(), nil
}
