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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

var (
	logFormat string
	logLevel  string

	// structuredLoggingEnabled routes the *S helpers to slog instead of glog.
	structuredLoggingEnabled atomic.Bool
)

// Init configures logging based on the parsed flags. Structured output goes
// to stderr.
func Init(fs *pflag.FlagSet) error {
	return InitWithWriter(fs, os.Stderr)
}

// InitWithWriter is Init with an explicit destination for structured output.
func InitWithWriter(fs *pflag.FlagSet, w io.Writer) error {
	if fs == nil {
		return nil
	}

	formatFlag := fs.Lookup("log-fmt")
	if formatFlag == nil || !formatFlag.Changed {
		return nil
	}

	level, err := slogLevel(logLevel)
	if err != nil {
		return err
	}
	handler, err := slogHandler(logFormat, w, &slog.HandlerOptions{AddSource: true, Level: level})
	if err != nil {
		return err
	}

	structuredLoggingEnabled.Store(true)
	slog.SetDefault(slog.New(handler))
	return nil
}

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func slogLevel(level string) (slog.Level, error) {
	if l, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
}

func slogHandler(format string, w io.Writer, opts *slog.HandlerOptions) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt":
		return slog.NewTextHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid log-fmt %q: expected json or logfmt", format)
	}
}

// logS emits a structured record, or forwards to glog when structured
// logging is off.
func logS(level slog.Level, msg string, args ...any) {
	if !structuredLoggingEnabled.Load() {
		logGlog(level, msg, args...)
		return
	}

	logger := slog.Default()
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}

	// Skip runtime.Callers, logS and the exported helper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}

// Enabled reports whether a log call at level would be emitted. Under glog,
// debug output requires -v=1 or higher.
func Enabled(level slog.Level) bool {
	if structuredLoggingEnabled.Load() {
		return slog.Default().Enabled(context.Background(), level)
	}
	if level < slog.LevelInfo {
		return bool(glog.V(1))
	}
	return true
}

func logGlog(level slog.Level, msg string, args ...any) {
	const depth = 3
	args = append([]any{msg}, args...)

	switch {
	case level < slog.LevelInfo:
		if glog.V(1) {
			glog.InfoDepth(depth, args...)
		}
	case level < slog.LevelWarn:
		glog.InfoDepth(depth, args...)
	case level < slog.LevelError:
		glog.WarningDepth(depth, args...)
	default:
		glog.ErrorDepth(depth, args...)
	}
}

// DebugS logs at the Debug level.
func DebugS(msg string, args ...any) { logS(slog.LevelDebug, msg, args...) }

// InfoS logs at the Info level.
func InfoS(msg string, args ...any) { logS(slog.LevelInfo, msg, args...) }

// WarnS logs at the Warn level.
func WarnS(msg string, args ...any) { logS(slog.LevelWarn, msg, args...) }

// ErrorS logs at the Error level.
func ErrorS(msg string, args ...any) { logS(slog.LevelError, msg, args...) }

// SetLogger replaces the structured logger. The returned function restores
// the previous one. Used for testing.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}

	previousEnabled := structuredLoggingEnabled.Load()
	previousDefault := slog.Default()

	slog.SetDefault(logger)
	structuredLoggingEnabled.Store(true)

	return func() {
		slog.SetDefault(previousDefault)
		structuredLoggingEnabled.Store(previousEnabled)
	}
}
