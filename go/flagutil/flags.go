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

// Package flagutil contains helpers for registering pflag flags.
package flagutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// setFlagVar is a generic helper for registering flags.
func setFlagVar[T any](fs *pflag.FlagSet, p *T, name string, def T, usage string,
	setFunc func(fs *pflag.FlagSet, p *T, name string, def T, usage string)) {
	if strings.Contains(name, "_") {
		fmt.Fprintf(os.Stderr, "[WARNING] flag %q uses underscores; use dashes instead\n", name)
	}

	setFunc(fs, p, name, def, usage)
}

func SetFlagBoolVar(fs *pflag.FlagSet, p *bool, name string, def bool, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).BoolVar)
}

func SetFlagStringVar(fs *pflag.FlagSet, p *string, name string, def string, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).StringVar)
}

func SetFlagIntVar(fs *pflag.FlagSet, p *int, name string, def int, usage string) {
	setFlagVar(fs, p, name, def, usage, (*pflag.FlagSet).IntVar)
}

// SetFlagVar registers a flag that implements pflag.Value.
func SetFlagVar(fs *pflag.FlagSet, value pflag.Value, name, usage string) {
	if strings.Contains(name, "_") {
		fmt.Fprintf(os.Stderr, "[WARNING] flag %q uses underscores; use dashes instead\n", name)
	}
	fs.Var(value, name, usage)
}

// NormalizeUnderscoresToDashes lets users spell flags with underscores, the
// way charset names may be spelled with either separator.
func NormalizeUnderscoresToDashes(f *pflag.FlagSet, name string) pflag.NormalizedName {
	// glog owns these and registers them with underscores.
	if name == "log_dir" || name == "log_link" || name == "log_backtrace_at" {
		return pflag.NormalizedName(name)
	}
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
