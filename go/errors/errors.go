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

// Package errors contains helpers for errors built with errors.Join.
package errors

type multiError interface {
	Unwrap() []error
}

// Unwrap unwraps an error created by errors.Join into its direct components.
// It returns nil for errors that do not wrap multiple errors.
func Unwrap(err error) []error {
	if err == nil {
		return nil
	}
	if u, ok := err.(multiError); ok {
		return u.Unwrap()
	}
	return nil
}

// UnwrapAll recursively unwraps joined errors and returns the leaves.
func UnwrapAll(err error) []error {
	if err == nil {
		return nil
	}
	u, ok := err.(multiError)
	if !ok {
		return []error{err}
	}
	var errs []error
	for _, e := range u.Unwrap() {
		errs = append(errs, UnwrapAll(e)...)
	}
	return errs
}

// UnwrapFirst returns the first leaf of a joined error, or the error itself.
func UnwrapFirst(err error) error {
	errs := UnwrapAll(err)
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}
