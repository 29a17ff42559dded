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

// makecct compiles conversion tables into the binary .cct format read by the
// iconv package, and optionally into a Go source file embedding them.
//
//	makecct --charsets koi8_r,cp866 --out-dir /usr/locale
//	makecct --mappings my_table=MY-TABLE.TXT --go-out tables.go --package tables
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/picolibc/picolibc-sub002/go/flagutil"
	"github.com/picolibc/picolibc-sub002/go/iconv/ccs"
	"github.com/picolibc/picolibc-sub002/go/log"
	"github.com/picolibc/picolibc-sub002/go/nls"
)

type config struct {
	Charsets  []string
	Mappings  []string
	OutDir    string
	GoOut     string
	Package   string
	VarName   string
	ByteOrder string
}

func (cfg *config) registerFlags(fs *pflag.FlagSet) {
	flagutil.StringListVar(fs, &cfg.Charsets, "charsets", nil, "Comma separated built-in tables to compile. Use \"all\" for every built-in table.")
	flagutil.StringListVar(fs, &cfg.Mappings, "mappings", nil, "Comma separated name=file pairs of text mapping files to compile.")
	flagutil.SetFlagStringVar(fs, &cfg.OutDir, "out-dir", "", "Directory to write <name>.cct files to.")
	flagutil.SetFlagStringVar(fs, &cfg.GoOut, "go-out", "", "Go source file to write the compiled tables to.")
	flagutil.SetFlagStringVar(fs, &cfg.Package, "package", "tables", "Package name of the generated Go file.")
	flagutil.SetFlagStringVar(fs, &cfg.VarName, "var", "Tables", "Variable name of the generated table map.")
	flagutil.SetFlagStringVar(fs, &cfg.ByteOrder, "byte-order", "big", "Byte order of the compiled tables: big or little.")
}

func (cfg *config) byteOrder() (ccs.ByteOrder, error) {
	switch strings.ToLower(cfg.ByteOrder) {
	case "big", "be":
		return ccs.BigEndian, nil
	case "little", "le":
		return ccs.LittleEndian, nil
	}
	return 0, fmt.Errorf("invalid --byte-order %q", cfg.ByteOrder)
}

// compile builds every requested table.
func compile(fs afero.Fs, cfg *config) (map[string][]byte, error) {
	order, err := cfg.byteOrder()
	if err != nil {
		return nil, err
	}

	charsets := cfg.Charsets
	if len(charsets) == 1 && charsets[0] == "all" {
		charsets = ccs.BuiltinNames()
	}

	blobs := make(map[string][]byte, len(charsets)+len(cfg.Mappings))
	for _, name := range charsets {
		blob, ok := ccs.Builtin(name)
		if !ok {
			return nil, fmt.Errorf("unknown built-in table %q", name)
		}
		if blobs[name], err = recompile(name, blob, order); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}

	for _, pair := range cfg.Mappings {
		name, file, ok := strings.Cut(pair, "=")
		if !ok || name == "" || file == "" {
			return nil, fmt.Errorf("invalid mapping %q, want name=file", pair)
		}
		f, err := fs.Open(file)
		if err != nil {
			return nil, err
		}
		ms, err := parseMappings(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		if blobs[name], err = compileMappings(ms, order); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		log.Infof("compiled %s from %s: %d mappings", name, file, len(ms))
	}
	return blobs, nil
}

func run(fs afero.Fs, cfg *config) error {
	if cfg.OutDir == "" && cfg.GoOut == "" {
		return fmt.Errorf("nothing to do: set --out-dir or --go-out")
	}
	blobs, err := compile(fs, cfg)
	if err != nil {
		return err
	}
	if len(blobs) == 0 {
		return fmt.Errorf("no tables selected: set --charsets or --mappings")
	}

	if cfg.OutDir != "" {
		if err := fs.MkdirAll(cfg.OutDir, 0o755); err != nil {
			return err
		}
		for name, blob := range blobs {
			path := nls.TablePath(cfg.OutDir, name)
			if err := afero.WriteFile(fs, path, blob, 0o644); err != nil {
				return err
			}
			log.V(1).Infof("wrote %s (%d bytes)", path, len(blob))
		}
	}

	if cfg.GoOut != "" {
		src, err := generateGo(cfg.Package, cfg.VarName, blobs)
		if err != nil {
			return err
		}
		if err := afero.WriteFile(fs, cfg.GoOut, src, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var cfg config
	fs := pflag.NewFlagSet("makecct", pflag.ExitOnError)
	fs.SetNormalizeFunc(flagutil.NormalizeUnderscoresToDashes)
	cfg.registerFlags(fs)
	log.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	if err := log.Init(fs); err != nil {
		log.Exitf("%v", err)
	}
	defer log.Flush()

	if err := run(afero.NewOsFs(), &cfg); err != nil {
		log.Exitf("makecct: %v", err)
	}
}
