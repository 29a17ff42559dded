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

// Package iconv converts text between character encodings.
//
// A Converter decodes its input with the "from" encoding into code points
// and encodes each code point with the "to" encoding. Characters the target
// encoding cannot represent are replaced with a substitution character.
//
//	c, err := iconv.Open("koi8-r", "utf-8")
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//	nDst, nSrc, nSubst, err := c.Convert(dst, src)
//
// Errors carry an errno code: EINVAL for unknown encodings and input that
// ends mid-character, EILSEQ for invalid input, E2BIG when dst is full and
// EBADF for a closed converter. A Converter stays usable after a conversion
// error. Converters are not safe for concurrent use.
package iconv

import (
	"github.com/spf13/afero"

	"github.com/picolibc/picolibc-sub002/go/errno"
	"github.com/picolibc/picolibc-sub002/go/iconv/aliases"
	"github.com/picolibc/picolibc-sub002/go/iconv/ces"
	"github.com/picolibc/picolibc-sub002/go/log"
	"github.com/picolibc/picolibc-sub002/go/nls"
)

// DefaultSubstitution replaces characters that have no mapping in the
// target encoding.
const DefaultSubstitution = '_'

type options struct {
	fs     afero.Fs
	dir    string
	hasDir bool
}

// Option configures Open.
type Option func(*options)

// WithFS sets the filesystem external tables and the alias file are read
// from. The default is the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithDir sets the data directory. The default comes from the nls package.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
		o.hasDir = true
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if !o.hasDir {
		o.dir = nls.Dir()
	}
	return o
}

// Resolve returns the canonical name of an encoding.
func Resolve(name string, opts ...Option) (string, error) {
	o := buildOptions(opts)
	return aliases.Resolver{FS: o.fs, Dir: o.dir}.Resolve(name)
}

// List returns the canonical names of the built-in encodings.
func List() []string {
	return ces.Names()
}

// Converter converts from one encoding to another.
type Converter struct {
	from, to     ces.Codec
	fromName     string
	toName       string
	identity     bool
	substitution rune
	closed       bool
}

// Open returns a Converter from the encoding named from to the encoding
// named to. Names are resolved through the alias list. When both names
// resolve to the same encoding the Converter copies bytes unchanged.
func Open(to, from string, opts ...Option) (*Converter, error) {
	o := buildOptions(opts)
	resolver := aliases.Resolver{FS: o.fs, Dir: o.dir}

	fromName, err := resolver.Resolve(from)
	if err != nil {
		return nil, errno.Wrapf(err, "iconv: from %q", from)
	}
	toName, err := resolver.Resolve(to)
	if err != nil {
		return nil, errno.Wrapf(err, "iconv: to %q", to)
	}

	c := &Converter{
		fromName:     fromName,
		toName:       toName,
		substitution: DefaultSubstitution,
	}
	if fromName == toName {
		c.identity = true
		log.DebugS("opened identity converter", "charset", fromName)
		return c, nil
	}

	loader := ces.Loader{FS: o.fs, Dir: o.dir}
	if c.from, err = ces.Open(loader, fromName); err != nil {
		return nil, errno.Wrapf(err, "iconv: from %s", fromName)
	}
	if c.to, err = ces.Open(loader, toName); err != nil {
		_ = c.from.Close()
		return nil, errno.Wrapf(err, "iconv: to %s", toName)
	}
	log.DebugS("opened converter", "from", fromName, "to", toName)
	return c, nil
}

// From returns the canonical name of the source encoding.
func (c *Converter) From() string { return c.fromName }

// To returns the canonical name of the target encoding.
func (c *Converter) To() string { return c.toName }

// SetSubstitution changes the character written in place of characters the
// target encoding cannot represent.
func (c *Converter) SetSubstitution(r rune) {
	c.substitution = r
}

var errClosed = errno.New(errno.EBADF, "iconv: converter is closed")

// Convert converts src into dst. It returns the number of bytes written to
// dst, the number of bytes consumed from src and the number of characters
// replaced by the substitution character.
//
// Conversion stops at the first error. Only whole characters are consumed:
// on EINVAL src ends with an incomplete character, on EILSEQ the character
// starting at src[nSrc] is invalid, and on E2BIG the character starting at
// src[nSrc] did not fit in the rest of dst.
//
// A nil src is the same as calling Flush.
func (c *Converter) Convert(dst, src []byte) (nDst, nSrc, nSubst int, err error) {
	if c.closed {
		return 0, 0, 0, errClosed
	}
	if src == nil {
		nDst, err = c.Flush(dst)
		return nDst, 0, 0, err
	}
	if c.identity {
		n := copy(dst, src)
		if n < len(src) {
			return n, n, 0, errno.New(errno.E2BIG, "iconv: output buffer full")
		}
		return n, n, 0, nil
	}

	for nSrc < len(src) {
		r, n, st := c.from.Decode(src[nSrc:])
		switch st {
		case ces.Incomplete:
			return nDst, nSrc, nSubst, errno.Errorf(errno.EINVAL, "iconv: incomplete %s sequence at offset %d", c.fromName, nSrc)
		case ces.Illegal:
			return nDst, nSrc, nSubst, errno.Errorf(errno.EILSEQ, "iconv: illegal %s sequence at offset %d", c.fromName, nSrc)
		case ces.StateOnly:
			nSrc += n
			continue
		}

		w, st := c.to.Encode(dst[nDst:], r)
		if st == ces.NoMapping {
			w, st = c.to.Encode(dst[nDst:], c.substitution)
			if st == ces.OK {
				nSubst++
			}
		}
		if st != ces.OK {
			return nDst, nSrc, nSubst, errno.Errorf(errno.E2BIG, "iconv: no room for %U at offset %d", r, nSrc)
		}
		nDst += w
		nSrc += n
	}
	return nDst, nSrc, nSubst, nil
}

// Flush writes the sequence that returns the output to its initial shift
// state and resets both encodings. It fails with E2BIG if the sequence does
// not fit in dst.
func (c *Converter) Flush(dst []byte) (int, error) {
	if c.closed {
		return 0, errClosed
	}
	if c.identity {
		return 0, nil
	}
	n, st := c.to.Flush(dst)
	if st != ces.OK {
		return 0, errno.New(errno.E2BIG, "iconv: no room for the reset sequence")
	}
	c.from.Reset()
	c.to.Reset()
	return n, nil
}

// Reset returns both encodings to their initial state without writing
// anything.
func (c *Converter) Reset() {
	if c.closed || c.identity {
		return
	}
	c.from.Reset()
	c.to.Reset()
}

// Close releases the converter. Closing a converter twice fails with EBADF.
func (c *Converter) Close() error {
	if c.closed {
		return errClosed
	}
	c.closed = true
	if c.identity {
		return nil
	}
	err := c.from.Close()
	if err2 := c.to.Close(); err == nil {
		err = err2
	}
	c.from, c.to = nil, nil
	return err
}
