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

// Package ces implements character encoding schemes: the byte stream state
// machines that turn bytes into code points and back.
//
// Every encoding is described by an immutable Class. Opening a Class
// produces a Codec instance that carries whatever state the encoding needs
// (none, a byte order, or a set of tables plus shift registers). Codecs
// are not safe for concurrent use.
package ces

import (
	"fmt"
	"slices"

	"github.com/spf13/afero"

	"github.com/picolibc/picolibc-sub002/go/errno"
	"github.com/picolibc/picolibc-sub002/go/iconv/ccs"
)

// Status is the outcome of a single Decode, Encode or Flush call.
type Status int

const (
	// OK means one character was decoded or encoded.
	OK Status = iota
	// Incomplete means the input ends in the middle of a character or
	// control sequence. Nothing was consumed and no state changed.
	Incomplete
	// Illegal means the input is not valid in this encoding.
	Illegal
	// StateOnly means the consumed bytes only changed the codec state and
	// produced no character.
	StateOnly
	// NoMapping means the code point cannot be represented.
	NoMapping
	// NoRoom means the output buffer is too small for the whole unit.
	NoRoom
)

var statusNames = [...]string{"OK", "Incomplete", "Illegal", "StateOnly", "NoMapping", "NoRoom"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Codec is an open encoding instance.
type Codec interface {
	// Decode reads one character from the start of src. On OK it returns
	// the code point and the number of bytes consumed. On StateOnly it
	// returns the number of control bytes consumed. On Illegal n counts the
	// offending bytes. On Incomplete n is zero.
	Decode(src []byte) (r rune, n int, st Status)

	// Encode writes r to dst. Output is all or nothing: on NoRoom and
	// NoMapping nothing is written and no state changes.
	Encode(dst []byte, r rune) (n int, st Status)

	// Flush writes whatever sequence returns the output to the initial
	// state. Stateless encodings write nothing.
	Flush(dst []byte) (n int, st Status)

	// Reset returns the codec to its initial state.
	Reset()

	// Close releases the tables held by the codec.
	Close() error
}

// Kind is the family of an encoding.
type Kind int

const (
	KindTable Kind = iota
	KindEUC
	KindISO2022
	KindUTF8
	KindUTF16
	KindUCS2
	KindUCS4
)

var kindNames = [...]string{"table", "euc", "iso2022", "utf8", "utf16", "ucs2", "ucs4"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Order selects the byte order of the Unicode encoding forms.
type Order int

const (
	// OrderDefault is big endian, detected from a byte order mark where
	// the encoding supports one.
	OrderDefault Order = iota
	OrderBig
	OrderLittle
	OrderNative
)

// Shift is the ISO 2022 invocation used to reach a plane.
type Shift int

const (
	SI Shift = iota
	SO
	SS2
	SS3
)

// Plane is one coded character set of a multi-plane encoding.
type Plane struct {
	// Charset is the canonical name of the table.
	Charset string
	// Prefix is the EUC byte prefix, or the ISO 2022 designator sequence.
	Prefix string
	// Shift is the ISO 2022 invocation. Ignored by EUC.
	Shift Shift
}

// Class describes an encoding. Classes are immutable.
type Class struct {
	Name   string
	Kind   Kind
	Order  Order
	Planes []Plane
}

// Loader finds the tables an encoding needs.
type Loader struct {
	FS  afero.Fs
	Dir string

	// opened, when set, sees every table the loader opens.
	opened func(*ccs.Table)
}

// Table opens a table by canonical name.
func (l Loader) Table(name string) (*ccs.Table, error) {
	t, err := ccs.Open(l.FS, l.Dir, name)
	if err == nil && l.opened != nil {
		l.opened(t)
	}
	return t, err
}

// tables opens the tables of every plane. On failure the tables already
// opened are closed.
func (l Loader) tables(planes []Plane) ([]*ccs.Table, error) {
	out := make([]*ccs.Table, 0, len(planes))
	for _, p := range planes {
		t, err := l.Table(p.Charset)
		if err != nil {
			closeTables(out)
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func closeTables(tables []*ccs.Table) error {
	var first error
	for _, t := range tables {
		if err := t.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open creates a codec instance of the class.
func (c *Class) Open(l Loader) (Codec, error) {
	switch c.Kind {
	case KindTable:
		t, err := l.Table(c.Name)
		if err != nil {
			return nil, err
		}
		return newTableCodec(t), nil
	case KindEUC:
		tables, err := l.tables(c.Planes)
		if err != nil {
			return nil, err
		}
		return newEUC(c, tables), nil
	case KindISO2022:
		tables, err := l.tables(c.Planes)
		if err != nil {
			return nil, err
		}
		return newISO2022(c, tables), nil
	case KindUTF8:
		return utf8Codec{}, nil
	case KindUTF16:
		return newUTF16(c.Order), nil
	case KindUCS2:
		return &ucsCodec{order: c.Order, width: 2}, nil
	case KindUCS4:
		return &ucsCodec{order: c.Order, width: 4}, nil
	}
	return nil, errno.Errorf(errno.EINVAL, "ces %s: unknown kind %v", c.Name, c.Kind)
}

// Lookup returns the registered class for a canonical name.
func Lookup(name string) (*Class, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns the sorted names of the registered encodings and of the
// built-in tables.
func Names() []string {
	names := ccs.BuiltinNames()
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Open creates a codec for a canonical name. Registered encodings are tried
// first; any other name is opened as a table-driven encoding over the table
// of the same name.
func Open(l Loader, name string) (Codec, error) {
	if c, ok := Lookup(name); ok {
		return c.Open(l)
	}
	c := &Class{Name: name, Kind: KindTable}
	return c.Open(l)
}
