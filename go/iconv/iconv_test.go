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
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/picolibc/picolibc-sub002/go/errno"
	"github.com/picolibc/picolibc-sub002/go/iconv/aliases"
	"github.com/picolibc/picolibc-sub002/go/iconv/ccs"
	"github.com/picolibc/picolibc-sub002/go/test/utils"
)

func TestMain(m *testing.M) {
	code := m.Run()
	if code == 0 {
		if err := utils.GetLeaks(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			code = 1
		}
	}
	os.Exit(code)
}

func openConverter(t *testing.T, to, from string, opts ...Option) *Converter {
	t.Helper()
	c, err := Open(to, from, append([]Option{WithFS(afero.NewMemMapFs())}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// convert runs one Convert call over src followed by a flush.
func convert(t *testing.T, c *Converter, src []byte) ([]byte, int) {
	t.Helper()
	dst := make([]byte, 4*len(src)+16)
	nDst, nSrc, nSubst, err := c.Convert(dst, src)
	require.NoError(t, err)
	require.Equal(t, len(src), nSrc)
	n, err := c.Flush(dst[nDst:])
	require.NoError(t, err)
	return dst[:nDst+n], nSubst
}

func TestConvert(t *testing.T) {
	testCases := []struct {
		name     string
		to, from string
		in       string
		want     string
		subst    int
	}{
		{"euro to ucs-2", "UCS-2", "UTF-8", "\xe2\x82\xac", "\x20\xac", 0},
		{"euro to latin1", "ISO-8859-1", "UTF-8", "a\xe2\x82\xacb", "a_b", 1},
		{"latin1 to utf-8", "utf-8", "latin1", "caf\xe9", "café", 0},
		{"utf-8 to koi8-r", "KOI8-R", "UTF-8", "мир", "\xcd\xc9\xd2", 0},
		{"koi8-r to utf-16le", "UTF-16LE", "KOI8-R", "\xcd", "\x3c\x04", 0},
		{"utf-16 with mark", "utf-8", "utf-16", "\xff\xfeh\x00i\x00", "hi", 0},
		{"utf-8 to utf-16", "utf-16", "utf-8", "A", "\xfe\xff\x00A", 0},
		{"ucs-4 to utf-8", "utf-8", "ucs-4be", "\x00\x01\xf6\x00", "\U0001F600", 0},
		{"euc-jp to iso-2022-jp", "iso-2022-jp", "euc-jp", "\xa4\xa2a", "\x1b$B\x24\x22\x1b(Ba", 0},
		{"iso-2022-kr to utf-8", "utf-8", "iso-2022-kr", "\x1b$)C\x0e\x30\x21\x0fa", "가a", 0},
		{"shift_jis to euc-jp", "euc-jp", "shift_jis", "\x82\xa0", "\xa4\xa2", 0},
		{"empty", "utf-8", "latin1", "", "", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := openConverter(t, tc.to, tc.from)
			got, subst := convert(t, c, []byte(tc.in))
			assert.Equal(t, []byte(tc.want), got)
			assert.Equal(t, tc.subst, subst)
		})
	}
}

func TestConvertMatchesCharmap(t *testing.T) {
	const text = "Съешь же ещё этих мягких французских булок"
	c := openConverter(t, "windows-1251", "utf-8")
	got, subst := convert(t, c, []byte(text))
	assert.Zero(t, subst)

	want, err := charmap.Windows1251.NewEncoder().String(text)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestSetSubstitution(t *testing.T) {
	c := openConverter(t, "us-ascii", "utf-8")
	c.SetSubstitution('?')
	got, subst := convert(t, c, []byte("naïve café"))
	assert.Equal(t, "na?ve caf?", string(got))
	assert.Equal(t, 2, subst)
}

func TestConvertErrors(t *testing.T) {
	testCases := []struct {
		name     string
		to, from string
		in       string
		dstLen   int
		nDst     int
		nSrc     int
		code     errno.Errno
	}{
		{"illegal", "latin1", "utf-8", "a\xffb", 8, 1, 1, errno.EILSEQ},
		{"illegal continuation", "latin1", "utf-8", "ab\xe2\x28\xa1", 8, 2, 2, errno.EILSEQ},
		{"incomplete", "latin1", "utf-8", "a\xe2\x82", 8, 1, 1, errno.EINVAL},
		{"incomplete utf-16", "utf-8", "utf-16be", "\x00a\x00", 8, 1, 2, errno.EINVAL},
		{"output full", "latin1", "utf-8", "abc", 2, 2, 2, errno.E2BIG},
		{"multibyte output full", "utf-16be", "utf-8", "a\xe2\x82\xac", 3, 2, 1, errno.E2BIG},
		{"no room for substitution", "latin1", "utf-8", "a\xe2\x82\xac", 1, 1, 1, errno.E2BIG},
		{"unpaired surrogate", "utf-8", "utf-16le", "a\x00\x00\xdc", 8, 1, 2, errno.EILSEQ},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := openConverter(t, tc.to, tc.from)
			nDst, nSrc, _, err := c.Convert(make([]byte, tc.dstLen), []byte(tc.in))
			require.Error(t, err)
			assert.Equal(t, tc.code, errno.Code(err), err.Error())
			assert.True(t, errors.Is(err, tc.code))
			assert.Equal(t, tc.nDst, nDst)
			assert.Equal(t, tc.nSrc, nSrc)
		})
	}
}

func TestConvertResumes(t *testing.T) {
	c := openConverter(t, "utf-16be", "utf-8")
	src := []byte("h\xc3\xa9llo")
	var out []byte
	dst := make([]byte, 3)
	for len(src) > 0 {
		nDst, nSrc, _, err := c.Convert(dst, src)
		if err != nil {
			require.Equal(t, errno.E2BIG, errno.Code(err))
		}
		out = append(out, dst[:nDst]...)
		src = src[nSrc:]
	}
	assert.Equal(t, []byte("\x00h\x00\xe9\x00l\x00l\x00o"), out)
}

func TestIncompleteInputCanBeCompleted(t *testing.T) {
	c := openConverter(t, "ucs-2be", "utf-8")
	dst := make([]byte, 8)

	nDst, nSrc, _, err := c.Convert(dst, []byte("\xe2\x82"))
	assert.Equal(t, errno.EINVAL, errno.Code(err))
	assert.Zero(t, nDst)
	assert.Zero(t, nSrc)

	nDst, nSrc, _, err = c.Convert(dst, []byte("\xe2\x82\xac"))
	require.NoError(t, err)
	assert.Equal(t, 3, nSrc)
	assert.Equal(t, []byte{0x20, 0xac}, dst[:nDst])
}

func TestFlush(t *testing.T) {
	c := openConverter(t, "iso-2022-jp", "utf-8")
	dst := make([]byte, 16)

	nDst, _, _, err := c.Convert(dst, []byte("あ"))
	require.NoError(t, err)
	assert.Equal(t, "\x1b$B\x24\x22", string(dst[:nDst]))

	n, err := c.Flush(dst[:2])
	assert.Equal(t, errno.E2BIG, errno.Code(err))
	assert.Zero(t, n)

	// a nil source flushes
	n, _, _, err = c.Convert(dst, nil)
	require.NoError(t, err)
	assert.Equal(t, "\x1b(B", string(dst[:n]))

	n, err = c.Flush(dst)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFlushResetsDecoder(t *testing.T) {
	c := openConverter(t, "utf-8", "iso-2022-jp")
	dst := make([]byte, 16)

	nDst, _, _, err := c.Convert(dst, []byte("\x1b$B\x24\x22"))
	require.NoError(t, err)
	assert.Equal(t, "あ", string(dst[:nDst]))

	_, err = c.Flush(dst)
	require.NoError(t, err)

	// back to ASCII after the reset
	nDst, _, _, err = c.Convert(dst, []byte("\x24\x22"))
	require.NoError(t, err)
	assert.Equal(t, "$\"", string(dst[:nDst]))
}

func TestEmptySource(t *testing.T) {
	c := openConverter(t, "iso-2022-jp", "utf-8")
	dst := make([]byte, 8)
	_, _, _, err := c.Convert(dst, []byte("あ"))
	require.NoError(t, err)

	nDst, nSrc, nSubst, err := c.Convert(dst, []byte{})
	require.NoError(t, err)
	assert.Zero(t, nDst+nSrc+nSubst)
}

func TestIdentity(t *testing.T) {
	c := openConverter(t, "UTF8", "utf-8")
	assert.Equal(t, "utf_8", c.From())
	assert.Equal(t, "utf_8", c.To())

	// identity conversions copy bytes without validating them
	src := []byte("ab\xffc")
	dst := make([]byte, 8)
	nDst, nSrc, nSubst, err := c.Convert(dst, src)
	require.NoError(t, err)
	assert.Equal(t, 4, nDst)
	assert.Equal(t, 4, nSrc)
	assert.Zero(t, nSubst)
	assert.Equal(t, src, dst[:nDst])

	nDst, nSrc, _, err = c.Convert(dst[:2], src)
	assert.Equal(t, errno.E2BIG, errno.Code(err))
	assert.Equal(t, 2, nDst)
	assert.Equal(t, 2, nSrc)

	n, err := c.Flush(dst)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClose(t *testing.T) {
	for _, pair := range [][2]string{{"latin1", "utf-8"}, {"utf-8", "utf-8"}} {
		c, err := Open(pair[0], pair[1], WithFS(afero.NewMemMapFs()))
		require.NoError(t, err)
		require.NoError(t, c.Close())

		assert.Equal(t, errno.EBADF, errno.Code(c.Close()))
		_, _, _, err = c.Convert(make([]byte, 4), []byte("a"))
		assert.Equal(t, errno.EBADF, errno.Code(err))
		_, err = c.Flush(nil)
		assert.Equal(t, errno.EBADF, errno.Code(err))
	}
}

func TestOpenUnknown(t *testing.T) {
	testCases := []struct {
		to, from string
	}{
		{"utf-8", "no-such-charset"},
		{"no-such-charset", "utf-8"},
		{"utf-8", ""},
		{" ", "utf-8"},
	}
	for _, tc := range testCases {
		c, err := Open(tc.to, tc.from, WithFS(afero.NewMemMapFs()))
		assert.Nil(t, c)
		require.Error(t, err)
		assert.Equal(t, errno.EINVAL, errno.Code(err))
		assert.ErrorIs(t, err, aliases.ErrNotFound)
	}
}

// An alias known only from the alias file whose table is missing fails
// with EINVAL.
func TestOpenMissingTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/nls/charset.aliases", []byte("ghost_table ghost\n"), 0o644))

	_, err := Open("utf-8", "ghost", WithFS(fs), WithDir("/nls"))
	require.Error(t, err)
	assert.Equal(t, errno.EINVAL, errno.Code(err))
}

func TestOpenExternalTable(t *testing.T) {
	fs := afero.NewMemMapFs()
	b := ccs.NewBuilder(ccs.Width8)
	for c := rune(0); c < 0x80; c++ {
		require.NoError(t, b.Add(uint16(c), c))
	}
	require.NoError(t, b.Add(0xA4, '€'))
	require.NoError(t, afero.WriteFile(fs, "/nls/euro_ascii.cct", b.Bytes(), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/nls/charset.aliases", []byte("euro_ascii ascii_euro\n"), 0o644))

	c := openConverter(t, "ascii-euro", "utf-8", WithFS(fs), WithDir("/nls"))
	assert.Equal(t, "euro_ascii", c.To())
	got, subst := convert(t, c, []byte("1€ ½"))
	assert.Equal(t, "1\xa4 _", string(got))
	assert.Equal(t, 1, subst)
}

func TestResolve(t *testing.T) {
	name, err := Resolve("Windows-1252", WithFS(afero.NewMemMapFs()))
	require.NoError(t, err)
	assert.Equal(t, "win_1252", name)

	_, err = Resolve("bogus", WithFS(afero.NewMemMapFs()))
	assert.ErrorIs(t, err, aliases.ErrNotFound)
}

func TestList(t *testing.T) {
	names := List()
	assert.Contains(t, names, "utf_8")
	assert.Contains(t, names, "koi8_r")
	assert.Contains(t, names, "iso_2022_jp_2")
	assert.IsIncreasing(t, names)

	// every listed encoding can be opened from and to UTF-8
	for _, name := range names {
		c, err := Open(name, "utf-8", WithFS(afero.NewMemMapFs()))
		require.NoError(t, err, name)
		require.NoError(t, c.Close())
	}
}
