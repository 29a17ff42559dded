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
	"bytes"

	"github.com/picolibc/picolibc-sub002/go/iconv/ccs"
)

var shiftSequences = [...]string{
	SI:  "\x0f",
	SO:  "\x0e",
	SS2: "\x1bN",
	SS3: "\x1bO",
}

// locking reports whether the shift stays in effect until the next shift.
// SS2 and SS3 only apply to the character that follows them.
func (s Shift) locking() bool {
	return s == SI || s == SO
}

// iso2022State is the mutable part of an ISO 2022 codec. It is a value
// type so decoding can work on a copy and commit only complete units.
type iso2022State struct {
	// regs holds, for each of G0..G3, the index of the designated plane
	// or -1.
	regs [4]int
	// shift is the locking shift in effect.
	shift Shift
	// single is the pending single shift, or -1.
	single Shift
	prev   rune
}

func (s *iso2022State) reset() {
	s.regs = [4]int{0, -1, -1, -1}
	s.shift = SI
	s.single = -1
	s.prev = -1
}

// track clears the G1..G3 designations at the end of each line.
func (s *iso2022State) track(r rune) {
	if r == '\n' && s.prev == '\r' {
		s.regs[SO], s.regs[SS2], s.regs[SS3] = -1, -1, -1
	}
	s.prev = r
}

type iso2022 struct {
	class  *Class
	tables []*ccs.Table
	state  iso2022State
	// special marks the bytes that start a designator or shift sequence.
	special [128]bool
}

func newISO2022(c *Class, tables []*ccs.Table) *iso2022 {
	iso := &iso2022{class: c, tables: tables}
	for _, p := range c.Planes {
		if p.Prefix != "" {
			iso.special[p.Prefix[0]&0x7F] = true
		}
		iso.special[shiftSequences[p.Shift][0]] = true
	}
	iso.state.reset()
	return iso
}

// control matches one designator or shift sequence at the start of src and
// applies it to st.
func (iso *iso2022) control(st *iso2022State, src []byte) (int, Status) {
	for i, p := range iso.class.Planes {
		if p.Prefix != "" && bytes.HasPrefix(src, []byte(p.Prefix)) {
			st.regs[p.Shift] = i
			return len(p.Prefix), OK
		}
		if seq := shiftSequences[p.Shift]; bytes.HasPrefix(src, []byte(seq)) {
			if p.Shift.locking() {
				st.shift = p.Shift
			} else {
				st.single = p.Shift
			}
			return len(seq), OK
		}
	}
	for _, p := range iso.class.Planes {
		if p.Prefix != "" && bytes.HasPrefix([]byte(p.Prefix), src) {
			return 0, Incomplete
		}
		if bytes.HasPrefix([]byte(shiftSequences[p.Shift]), src) {
			return 0, Incomplete
		}
	}
	return 0, Illegal
}

func (iso *iso2022) Decode(src []byte) (rune, int, Status) {
	st := iso.state
	pos := 0

	for pos < len(src) {
		b := src[pos]
		if b&0x80 != 0 {
			return 0, pos + 1, Illegal
		}
		if !iso.special[b] {
			break
		}
		n, status := iso.control(&st, src[pos:])
		switch status {
		case Incomplete:
			return 0, 0, Incomplete
		case Illegal:
			return 0, pos + 1, Illegal
		}
		pos += n
	}
	if pos == len(src) {
		if pos == 0 {
			return 0, 0, Incomplete
		}
		iso.state = st
		return 0, pos, StateOnly
	}

	reg := st.shift
	if st.single >= 0 {
		reg = st.single
	}
	cs := st.regs[reg]
	if cs < 0 {
		return 0, pos + 1, Illegal
	}

	t := iso.tables[cs]
	n := codeBytes(t)
	if len(src)-pos < n {
		return 0, 0, Incomplete
	}
	code := readCode(src[pos:], n)
	if code&0x8080 != 0 {
		return 0, pos + n, Illegal
	}
	if !reg.locking() && !sevenBit(t) {
		code |= highBits(n)
	}
	r, ok := t.Decode(code)
	if !ok {
		return 0, pos + n, Illegal
	}

	st.single = -1
	st.track(r)
	iso.state = st
	return r, pos + n, OK
}

// encodeIn encodes r using plane cs, emitting the designator and shift
// sequences the plane needs first.
func (iso *iso2022) encodeIn(dst []byte, r rune, cs int) (int, Status) {
	t := iso.tables[cs]
	p := iso.class.Planes[cs]

	code, ok := t.Encode(r)
	if !ok {
		return 0, NoMapping
	}
	n := codeBytes(t)
	if !p.Shift.locking() && !sevenBit(t) {
		if code&highBits(n) != highBits(n) {
			return 0, NoMapping
		}
		code &= 0x7F7F
	} else if code&0x8080 != 0 {
		return 0, NoMapping
	}

	needDesignator := iso.state.regs[p.Shift] != cs
	needShift := p.Shift != iso.state.shift

	size := n
	if needDesignator {
		size += len(p.Prefix)
	}
	if needShift {
		size += len(shiftSequences[p.Shift])
	}
	if size > len(dst) {
		return 0, NoRoom
	}

	out := dst[:0]
	if needDesignator {
		out = append(out, p.Prefix...)
		iso.state.regs[p.Shift] = cs
	}
	if needShift {
		out = append(out, shiftSequences[p.Shift]...)
		if p.Shift.locking() {
			iso.state.shift = p.Shift
		}
	}
	if n == 2 {
		out = append(out, byte(code>>8))
	}
	out = append(out, byte(code))
	iso.state.track(r)
	return len(out), OK
}

func (iso *iso2022) Encode(dst []byte, r rune) (int, Status) {
	if r < 0 || r > 0xFFFF {
		return 0, NoMapping
	}

	cur := iso.state.regs[iso.state.shift]
	if cur >= 0 {
		if n, st := iso.encodeIn(dst, r, cur); st != NoMapping {
			return n, st
		}
	}
	for cs := range iso.tables {
		if cs == cur {
			continue
		}
		if n, st := iso.encodeIn(dst, r, cs); st != NoMapping {
			return n, st
		}
	}
	return 0, NoMapping
}

// Flush returns the output to plane 0 invoked through SI.
func (iso *iso2022) Flush(dst []byte) (int, Status) {
	p := iso.class.Planes[0]
	needDesignator := iso.state.regs[p.Shift] != 0
	needShift := iso.state.shift != p.Shift

	size := 0
	if needDesignator {
		size += len(p.Prefix)
	}
	if needShift {
		size += len(shiftSequences[p.Shift])
	}
	if size > len(dst) {
		return 0, NoRoom
	}

	out := dst[:0]
	if needDesignator {
		out = append(out, p.Prefix...)
		iso.state.regs[p.Shift] = 0
	}
	if needShift {
		out = append(out, shiftSequences[p.Shift]...)
		iso.state.shift = p.Shift
	}
	return len(out), OK
}

func (iso *iso2022) Reset() {
	iso.state.reset()
}

func (iso *iso2022) Close() error {
	return closeTables(iso.tables)
}
