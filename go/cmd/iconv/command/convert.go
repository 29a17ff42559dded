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

package command

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/picolibc/picolibc-sub002/go/errno"
	"github.com/picolibc/picolibc-sub002/go/flagutil"
	"github.com/picolibc/picolibc-sub002/go/iconv"
	"github.com/picolibc/picolibc-sub002/go/log"
)

var (
	convertOptions = struct {
		From         string
		To           string
		Omit         bool
		Substitution string
		Output       string
		BufferSize   int
		Verbose      bool
	}{
		From:       "utf-8",
		BufferSize: 32 * 1024,
	}

	Convert = &cobra.Command{
		Use:   "convert --to <charset> [--from <charset>] [<file> ...]",
		Short: "Converts files, or standard input, to another character encoding.",
		Long: "Converts the named files, or standard input when no file or `-` is given, and writes the result to standard output.\n\n" +
			"Characters the target encoding cannot represent are replaced with the substitution character.\n" +
			"Invalid input stops the conversion unless `-c` is given, in which case the offending bytes are dropped.",
		Example: "iconv convert -f latin1 -t utf-8 notes.txt\niconv convert -t iso-2022-jp -o out.txt -",
		Args:    cobra.ArbitraryArgs,
		RunE:    commandConvert,
	}
)

// stream feeds input through a converter in chunks. Input that ends with an
// incomplete character is kept until more arrives.
type stream struct {
	c    *iconv.Converter
	w    io.Writer
	omit bool

	src []byte
	dst []byte
	// offset is the input offset of src[0] in the current file.
	offset int64

	nIn, nOut, nSubst, nSkipped int64
}

func (s *stream) consume(n int) {
	s.src = append(s.src[:0], s.src[n:]...)
	s.offset += int64(n)
	s.nIn += int64(n)
}

func (s *stream) write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := s.w.Write(p)
	s.nOut += int64(n)
	return err
}

// drain converts as much of the pending input as possible.
func (s *stream) drain(name string) error {
	for len(s.src) > 0 {
		nDst, nSrc, nSubst, err := s.c.Convert(s.dst, s.src)
		if werr := s.write(s.dst[:nDst]); werr != nil {
			return werr
		}
		s.consume(nSrc)
		s.nSubst += int64(nSubst)

		switch errno.Code(err) {
		case errno.OK:
		case errno.E2BIG:
			if nSrc == 0 && nDst == 0 {
				return errno.Wrapf(err, "%s: input offset %d", name, s.offset)
			}
		case errno.EINVAL:
			return nil
		case errno.EILSEQ:
			if !s.omit {
				return errno.Wrapf(err, "%s: input offset %d", name, s.offset)
			}
			s.consume(1)
			s.nSkipped++
		default:
			return err
		}
	}
	return nil
}

func (s *stream) copy(r io.Reader, name string) error {
	s.offset = 0
	buf := make([]byte, len(s.dst))
	for {
		n, rerr := r.Read(buf)
		s.src = append(s.src, buf[:n]...)
		if err := s.drain(name); err != nil {
			return err
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return fmt.Errorf("%s: %w", name, rerr)
		}
	}

	if len(s.src) == 0 {
		return nil
	}
	if !s.omit {
		return errno.Errorf(errno.EINVAL, "%s: incomplete character at end of input, input offset %d", name, s.offset)
	}
	s.nSkipped += int64(len(s.src))
	s.consume(len(s.src))
	return nil
}

func (s *stream) flush() error {
	n, err := s.c.Flush(s.dst)
	if err != nil {
		return err
	}
	return s.write(s.dst[:n])
}

func commandConvert(cmd *cobra.Command, args []string) error {
	if convertOptions.To == "" {
		return fmt.Errorf("--to is required")
	}
	if convertOptions.BufferSize < 16 {
		return fmt.Errorf("--buffer-size must be at least 16, got %d", convertOptions.BufferSize)
	}

	c, err := iconv.Open(convertOptions.To, convertOptions.From, dataOptions()...)
	if err != nil {
		return err
	}
	defer c.Close()

	if sub := convertOptions.Substitution; sub != "" {
		r, size := utf8.DecodeRuneInString(sub)
		if r == utf8.RuneError || size != len(sub) {
			return fmt.Errorf("--substitution must be a single character, got %q", sub)
		}
		c.SetSubstitution(r)
	}

	out := cmd.OutOrStdout()
	if name := convertOptions.Output; name != "" && name != "-" {
		f, err := fs.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	s := &stream{
		c:    c,
		w:    out,
		omit: convertOptions.Omit,
		dst:  make([]byte, convertOptions.BufferSize),
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, name := range args {
		if err := convertFile(cmd, s, name); err != nil {
			return err
		}
	}
	if err := s.flush(); err != nil {
		return err
	}

	log.DebugS("conversion done", "from", c.From(), "to", c.To(), "in", s.nIn, "out", s.nOut, "substituted", s.nSubst, "skipped", s.nSkipped)
	if convertOptions.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s -> %s: read %s, wrote %s, %s substituted, %s skipped\n",
			c.From(), c.To(), humanize.Bytes(uint64(s.nIn)), humanize.Bytes(uint64(s.nOut)),
			humanize.Comma(s.nSubst), humanize.Comma(s.nSkipped))
	}
	return nil
}

func convertFile(cmd *cobra.Command, s *stream, name string) error {
	if name == "-" {
		return s.copy(cmd.InOrStdin(), "<stdin>")
	}
	f, err := fs.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.copy(f, name)
}

func init() {
	Convert.Flags().StringVarP(&convertOptions.From, "from", "f", convertOptions.From, "Encoding of the input.")
	Convert.Flags().StringVarP(&convertOptions.To, "to", "t", convertOptions.To, "Encoding of the output.")
	Convert.Flags().BoolVarP(&convertOptions.Omit, "omit-invalid", "c", convertOptions.Omit, "Drop invalid input instead of failing.")
	Convert.Flags().StringVarP(&convertOptions.Output, "output", "o", convertOptions.Output, "Write the output to this file instead of standard output.")
	flagutil.SetFlagStringVar(Convert.Flags(), &convertOptions.Substitution, "substitution", convertOptions.Substitution, "Character written in place of characters the output encoding cannot represent (default \"_\").")
	flagutil.SetFlagIntVar(Convert.Flags(), &convertOptions.BufferSize, "buffer-size", convertOptions.BufferSize, "Size of the read and write buffers in bytes.")
	flagutil.SetFlagBoolVar(Convert.Flags(), &convertOptions.Verbose, "verbose", convertOptions.Verbose, "Print a summary of the conversion to standard error.")

	Root.AddCommand(Convert)
}
