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
	"testing"

	"github.com/stretchr/testify/require"
)

func open(t *testing.T, name string) Codec {
	t.Helper()
	c, err := Open(Loader{}, name)
	require.NoError(t, err, "open %s", name)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// encodeAll encodes every rune of s followed by the reset sequence.
func encodeAll(t *testing.T, c Codec, s string) []byte {
	t.Helper()
	var out []byte
	buf := make([]byte, 16)
	for _, r := range s {
		n, st := c.Encode(buf, r)
		require.Equal(t, OK, st, "encode %U", r)
		out = append(out, buf[:n]...)
	}
	n, st := c.Flush(buf)
	require.Equal(t, OK, st)
	return append(out, buf[:n]...)
}

// decodeAll decodes src completely. Every step must succeed.
func decodeAll(t *testing.T, c Codec, src []byte) []rune {
	t.Helper()
	var out []rune
	for len(src) > 0 {
		r, n, st := c.Decode(src)
		switch st {
		case OK:
			out = append(out, r)
		case StateOnly:
		default:
			require.FailNow(t, "decode failed", "%v at % x", st, src)
		}
		require.Positive(t, n)
		src = src[n:]
	}
	return out
}
