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

// Package errno provides errors annotated with a POSIX style error number.
//
// The conversion API reports every failure through one of a handful of
// codes (EINVAL, EILSEQ, E2BIG, EBADF). Errors created here carry the code
// through any number of Wrap calls, so callers can either inspect it with
// Code or match it with errors.Is:
//
//	if errors.Is(err, errno.E2BIG) {
//		// grow the output buffer and retry
//	}
package errno

import (
	"errors"
	"fmt"

	vterrors "github.com/picolibc/picolibc-sub002/go/errors"
)

// Errno is an error number. The zero value means no error.
type Errno int

// Error numbers used by the conversion API. Values follow Linux.
const (
	OK     Errno = 0
	E2BIG  Errno = 7
	EBADF  Errno = 9
	EINVAL Errno = 22
	EILSEQ Errno = 84
)

var names = map[Errno]string{
	OK:     "OK",
	E2BIG:  "E2BIG",
	EBADF:  "EBADF",
	EINVAL: "EINVAL",
	EILSEQ: "EILSEQ",
}

var descriptions = map[Errno]string{
	OK:     "success",
	E2BIG:  "output buffer too small",
	EBADF:  "bad conversion descriptor",
	EINVAL: "invalid argument",
	EILSEQ: "illegal byte sequence",
}

// String returns the symbolic name of the error number.
func (e Errno) String() string {
	if name, ok := names[e]; ok {
		return name
	}
	return fmt.Sprintf("Errno(%d)", int(e))
}

// Error implements error so an Errno can be used as an errors.Is target.
func (e Errno) Error() string {
	if desc, ok := descriptions[e]; ok {
		return desc
	}
	return e.String()
}

// ErrorWithCode is implemented by errors that carry an error number.
type ErrorWithCode interface {
	ErrorCode() Errno
}

type fundamental struct {
	msg  string
	code Errno
}

func (f *fundamental) Error() string    { return f.msg }
func (f *fundamental) ErrorCode() Errno { return f.code }

func (f *fundamental) Is(target error) bool {
	code, ok := target.(Errno)
	return ok && code == f.code
}

// New returns an error with the supplied message and code.
func New(code Errno, message string) error {
	return &fundamental{msg: message, code: code}
}

// Errorf formats according to a format specifier and returns an error with
// the given code.
func Errorf(code Errno, format string, args ...any) error {
	return &fundamental{msg: fmt.Sprintf(format, args...), code: code}
}

type wrapping struct {
	cause error
	msg   string
	code  Errno
}

func (w *wrapping) Error() string    { return w.msg + ": " + w.cause.Error() }
func (w *wrapping) Unwrap() error    { return w.cause }
func (w *wrapping) ErrorCode() Errno { return w.code }

func (w *wrapping) Is(target error) bool {
	code, ok := target.(Errno)
	return ok && code == w.code
}

// Wrap returns an error annotating err with message. The code of err is
// preserved; errors without a code get EINVAL. If err is nil, Wrap returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrapping{cause: err, msg: message, code: codeOrDefault(err, EINVAL)}
}

// Wrapf returns an error annotating err with the format specifier.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapping{cause: err, msg: fmt.Sprintf(format, args...), code: codeOrDefault(err, EINVAL)}
}

// WrapCode annotates err with message and overrides its code.
func WrapCode(err error, code Errno, message string) error {
	if err == nil {
		return nil
	}
	return &wrapping{cause: err, msg: message, code: code}
}

// Code returns the error number of err. It returns OK for nil and EINVAL for
// errors that never had a code attached.
func Code(err error) Errno {
	return codeOrDefault(err, EINVAL)
}

func codeOrDefault(err error, def Errno) Errno {
	if err == nil {
		return OK
	}
	var coded ErrorWithCode
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	if code, ok := err.(Errno); ok {
		return code
	}
	if first := vterrors.UnwrapFirst(err); first != nil && first != err {
		return codeOrDefault(first, def)
	}
	return def
}
