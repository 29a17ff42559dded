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

package iconv

import (
	"io"

	"golang.org/x/text/transform"

	"github.com/picolibc/picolibc-sub002/go/errno"
)

// ErrTruncated is returned by a Transformer when the input ends in the
// middle of a character.
var ErrTruncated = errno.New(errno.EINVAL, "iconv: input ends with an incomplete character")

type transformer struct {
	c *Converter
	// flushed is set once the reset sequence has been written for the
	// current end of input.
	flushed bool
}

// Transformer returns a transform.Transformer backed by c. Illegal input
// stops the transformation with an EILSEQ error. At the end of the input
// the output is returned to its initial shift state.
func (c *Converter) Transformer() transform.Transformer {
	return &transformer{c: c}
}

func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(src) > 0 {
		nDst, nSrc, _, err = t.c.Convert(dst, src)
		t.flushed = false
		switch errno.Code(err) {
		case errno.OK:
		case errno.E2BIG:
			return nDst, nSrc, transform.ErrShortDst
		case errno.EINVAL:
			if atEOF {
				return nDst, nSrc, ErrTruncated
			}
			return nDst, nSrc, transform.ErrShortSrc
		default:
			return nDst, nSrc, err
		}
	}
	if atEOF && !t.flushed {
		n, err := t.c.Flush(dst[nDst:])
		if errno.Code(err) == errno.E2BIG {
			return nDst, nSrc, transform.ErrShortDst
		}
		if err != nil {
			return nDst, nSrc, err
		}
		nDst += n
		t.flushed = true
	}
	return nDst, nSrc, nil
}

func (t *transformer) Reset() {
	t.c.Reset()
	t.flushed = false
}

// NewReader returns a reader that converts the bytes read from r.
func (c *Converter) NewReader(r io.Reader) io.Reader {
	return transform.NewReader(r, c.Transformer())
}

// NewWriter returns a writer that converts the bytes written to it before
// writing them to w. The caller must Close the writer to flush the final
// shift sequence.
func (c *Converter) NewWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, c.Transformer())
}
