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

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer restore()

	DebugS("loaded table", "name", "koi8_r", "bytes", 1024)
	WarnS("malformed table", "path", "/usr/locale/bad.cct")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "loaded table", rec["msg"])
	assert.Equal(t, "koi8_r", rec["name"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "/usr/locale/bad.cct", rec["path"])
}

func TestSetLoggerRestores(t *testing.T) {
	before := structuredLoggingEnabled.Load()
	restore := SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	assert.True(t, structuredLoggingEnabled.Load())
	restore()
	assert.Equal(t, before, structuredLoggingEnabled.Load())

	// nil logger is a no-op
	SetLogger(nil)()
	assert.Equal(t, before, structuredLoggingEnabled.Load())
}

func TestSlogLevel(t *testing.T) {
	testCases := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{" INFO ", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := slogLevel(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInitWithWriter(t *testing.T) {
	previous := slog.Default()
	defer func() {
		slog.SetDefault(previous)
		structuredLoggingEnabled.Store(false)
	}()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	var buf bytes.Buffer
	require.NoError(t, InitWithWriter(fs, &buf))
	assert.False(t, structuredLoggingEnabled.Load(), "structured logging must stay off unless --log-fmt is set")

	require.NoError(t, fs.Parse([]string{"--log-fmt=logfmt", "--log-level=warn"}))
	require.NoError(t, InitWithWriter(fs, &buf))
	assert.True(t, Enabled(slog.LevelWarn))
	assert.False(t, Enabled(slog.LevelInfo))

	InfoS("dropped")
	WarnS("kept", "charset", "big5")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "charset=big5")
}

func TestInitRejectsBadFormat(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-fmt=xml"}))
	defer func() { logFormat = "json" }()
	assert.Error(t, InitWithWriter(fs, &bytes.Buffer{}))
}

func TestLogRotateMaxSize(t *testing.T) {
	var v logRotateMaxSize
	require.NoError(t, v.Set("1048576"))
	assert.Equal(t, "1048576", v.String())
	assert.Equal(t, "uint64", v.Type())
	assert.Error(t, v.Set("-1"))
}
