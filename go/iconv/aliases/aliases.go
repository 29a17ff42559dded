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

// Package aliases resolves the many spellings of a charset name to the
// canonical name the converters are registered under.
//
// Names are matched case-insensitively, with '-' and '_' treated alike. The
// compiled-in alias list is searched first, then the charset.aliases file
// in the data directory, which uses the same format:
//
//	# comment
//	canonical_name alias1 alias2
//	    alias3 alias4
package aliases

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/afero"

	"github.com/picolibc/picolibc-sub002/go/errno"
	"github.com/picolibc/picolibc-sub002/go/log"
	"github.com/picolibc/picolibc-sub002/go/nls"
)

// ErrNotFound is returned when a name matches no record.
var ErrNotFound = errno.New(errno.EINVAL, "unknown charset name")

// Normalize returns the canonical spelling of a name: lower case with '-'
// replaced by '_'.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}

// Resolver looks names up in the compiled-in list and in the alias file
// of a data directory.
type Resolver struct {
	FS  afero.Fs
	Dir string
}

// Resolve returns the canonical name for name.
func (r Resolver) Resolve(name string) (string, error) {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return "", errno.Wrapf(ErrNotFound, "invalid charset name %q", name)
	}
	key := Normalize(name)

	if canonical, ok, _ := find(strings.NewReader(builtinAliases), key); ok {
		return canonical, nil
	}

	if r.FS != nil {
		canonical, ok, err := r.findInFile(key)
		if err != nil {
			return "", err
		}
		if ok {
			return canonical, nil
		}
	}
	return "", errno.Wrapf(ErrNotFound, "%s", name)
}

func (r Resolver) findInFile(key string) (string, bool, error) {
	path := nls.AliasPath(r.Dir)
	f, err := r.FS.Open(path)
	if err != nil {
		// a missing alias file is the same as an empty one
		return "", false, nil
	}
	defer f.Close()

	log.DebugS("searching charset alias file", "path", path, "name", key)
	canonical, ok, err := find(f, key)
	if err != nil {
		return "", false, errno.Wrapf(err, "reading %s", path)
	}
	return canonical, ok, nil
}

// Records calls fn for every record of the compiled-in list, in order.
func Records(fn func(canonical string, aliases []string)) {
	_ = scanRecords(strings.NewReader(builtinAliases), func(rec []string) bool {
		fn(rec[0], rec[1:])
		return true
	})
}

func find(rd io.Reader, key string) (string, bool, error) {
	var canonical string
	err := scanRecords(rd, func(rec []string) bool {
		for _, tok := range rec {
			if Normalize(tok) == key {
				canonical = Normalize(rec[0])
				return false
			}
		}
		return true
	})
	return canonical, canonical != "", err
}

// scanRecords splits the alias format into records of tokens. Comment
// records are skipped. Scanning stops when fn returns false. Lines may be
// of any length.
func scanRecords(rd io.Reader, fn func(rec []string) bool) error {
	var (
		rec     []string
		comment bool
	)
	flush := func() bool {
		if len(rec) == 0 || comment {
			return true
		}
		return fn(rec)
	}

	br := bufio.NewReader(rd)
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line != "" {
			line = strings.TrimRight(line, "\r\n")
			continued := line != "" && (line[0] == ' ' || line[0] == '\t')
			fields := strings.Fields(line)

			switch {
			case !continued:
				if !flush() {
					return nil
				}
				rec = nil
				comment = len(fields) > 0 && strings.HasPrefix(fields[0], "#")
				rec = append(rec, fields...)
			case len(fields) > 0 && strings.HasPrefix(fields[0], "#"):
			default:
				rec = append(rec, fields...)
			}
		}
		if err == io.EOF {
			flush()
			return nil
		}
	}
}
