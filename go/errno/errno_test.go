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

package errno

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapNil(t *testing.T) {
	got := Wrap(nil, "no error")
	if got != nil {
		t.Errorf("Wrap(nil, \"no error\"): got %#v, expected nil", got)
	}
	assert.Nil(t, Wrapf(nil, "no %s", "error"))
	assert.Nil(t, WrapCode(nil, E2BIG, "no error"))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		err         error
		message     string
		wantMessage string
		wantCode    Errno
	}{
		{io.EOF, "read error", "read error: EOF", EINVAL},
		{New(EILSEQ, "bad byte"), "decode", "decode: bad byte", EILSEQ},
		{Errorf(E2BIG, "need %d bytes", 3), "encode", "encode: need 3 bytes", E2BIG},
		{Wrap(New(EBADF, "closed"), "inner"), "outer", "outer: inner: closed", EBADF},
	}

	for _, tt := range tests {
		got := Wrap(tt.err, tt.message)
		if got.Error() != tt.wantMessage {
			t.Errorf("Wrap(%v, %q): got: [%v], want [%v]", tt.err, tt.message, got, tt.wantMessage)
		}
		if Code(got) != tt.wantCode {
			t.Errorf("Wrap(%v, %v): got: [%v], want [%v]", tt.err, tt.message, Code(got), tt.wantCode)
		}
	}
}

func TestCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Errno
	}{
		{"nil", nil, OK},
		{"plain", errors.New("plain"), EINVAL},
		{"bare errno", E2BIG, E2BIG},
		{"fmt wrapped", fmt.Errorf("ctx: %w", New(EILSEQ, "x")), EILSEQ},
		{"override", WrapCode(New(EILSEQ, "x"), E2BIG, "y"), E2BIG},
		{"joined", errors.Join(EBADF, errors.New("other")), EBADF},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Code(tc.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := Wrapf(New(EILSEQ, "bad continuation byte"), "offset %d", 4)
	assert.True(t, errors.Is(err, EILSEQ))
	assert.False(t, errors.Is(err, E2BIG))
	assert.Equal(t, "offset 4: bad continuation byte", err.Error())
}

func TestString(t *testing.T) {
	assert.Equal(t, "EILSEQ", EILSEQ.String())
	assert.Equal(t, "Errno(1234)", Errno(1234).String())
	assert.Equal(t, "output buffer too small", E2BIG.Error())
}
