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

// Package nls holds the configuration for locating external charset data:
// the supplementary alias file and compiled conversion tables.
//
// The data directory is resolved, in order of precedence, from the
// --nls-path flag, the NLSPATH environment variable, and the built-in
// default "/usr/locale/".
package nls

import (
	"fmt"
	"path"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/picolibc/picolibc-sub002/go/errno"
	"github.com/picolibc/picolibc-sub002/go/flagutil"
)

const (
	// DefaultPath is used when neither the flag nor the environment is set.
	DefaultPath = "/usr/locale/"

	// AliasFile is the name of the supplementary alias file.
	AliasFile = "charset.aliases"

	// TableSuffix is appended to a charset name to form its table file name.
	TableSuffix = ".cct"
)

var (
	mu       sync.Mutex
	registry = viper.New()

	// DataPath is the directory holding charset.aliases and *.cct files.
	DataPath = &Value[string]{
		KeyName:    "nls-path",
		DefaultVal: DefaultPath,
		FlagName:   "nls-path",
		EnvVars:    []string{"NLSPATH"},
		GetFunc:    (*viper.Viper).GetString,
	}
)

func init() {
	DataPath.bind(registry)
}

// ErrNoFlagDefined is returned when a Value names a flag that the given
// FlagSet does not define.
var ErrNoFlagDefined = errno.New(errno.EINVAL, "flag not defined")

// Value is a configuration value bound to a viper registry, with an optional
// flag and environment variables.
type Value[T any] struct {
	KeyName    string
	DefaultVal T
	FlagName   string
	EnvVars    []string
	GetFunc    func(v *viper.Viper, key string) T

	v *viper.Viper
}

func (val *Value[T]) Key() string { return val.KeyName }
func (val *Value[T]) Default() T  { return val.DefaultVal }

// Get returns the current value.
func (val *Value[T]) Get() T {
	mu.Lock()
	defer mu.Unlock()
	return val.GetFunc(val.v, val.KeyName)
}

// Set overrides the value for the remainder of the process.
func (val *Value[T]) Set(v T) {
	mu.Lock()
	defer mu.Unlock()
	val.v.Set(val.KeyName, v)
}

func (val *Value[T]) bind(v *viper.Viper) {
	val.v = v
	v.SetDefault(val.KeyName, val.DefaultVal)
	if len(val.EnvVars) > 0 {
		vars := append([]string{val.KeyName}, val.EnvVars...)
		_ = v.BindEnv(vars...)
	}
}

// Flag returns the flag bound to this value, or (nil, nil) when the value is
// not configured with a flag.
func (val *Value[T]) Flag(fs *pflag.FlagSet) (*pflag.Flag, error) {
	if val.FlagName == "" {
		return nil, nil
	}
	flag := fs.Lookup(val.FlagName)
	if flag == nil {
		return nil, errno.Wrapf(ErrNoFlagDefined, "%s (for key %s)", val.FlagName, val.KeyName)
	}
	return flag, nil
}

// Stub makes val read from v until the returned function is called. Used
// for testing.
func (val *Value[T]) Stub(v *viper.Viper) func() {
	mu.Lock()
	defer mu.Unlock()
	old := val.v
	val.v = v
	if !v.IsSet(val.KeyName) {
		v.SetDefault(val.KeyName, val.DefaultVal)
	}
	return func() {
		mu.Lock()
		defer mu.Unlock()
		val.v = old
	}
}

// RegisterFlags installs the data path flag on fs and binds it.
func RegisterFlags(fs *pflag.FlagSet) {
	flagutil.SetFlagStringVar(fs, new(string), DataPath.FlagName, DataPath.DefaultVal,
		"directory containing charset.aliases and compiled .cct conversion tables")
	BindFlags(fs)
}

// BindFlags binds the package values to flags already defined on fs. It
// panics if a value names a flag fs does not define.
func BindFlags(fs *pflag.FlagSet) {
	flag, err := DataPath.Flag(fs)
	switch {
	case err != nil:
		panic(fmt.Errorf("failed to load flag for %s: %w", DataPath.KeyName, err))
	case flag == nil:
		return
	}
	mu.Lock()
	defer mu.Unlock()
	_ = DataPath.v.BindPFlag(DataPath.KeyName, flag)
}

// Dir returns the configured data directory.
func Dir() string {
	return DataPath.Get()
}

// AliasPath returns the path of the supplementary alias file under dir.
func AliasPath(dir string) string {
	return path.Join(dir, AliasFile)
}

// TablePath returns the path of the compiled table for a canonical charset
// name under dir.
func TablePath(dir, name string) string {
	return path.Join(dir, name+TableSuffix)
}
