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

// Package command contains the commands of the iconv binary.
package command

import (
	goflag "flag"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/picolibc/picolibc-sub002/go/flagutil"
	"github.com/picolibc/picolibc-sub002/go/iconv"
	"github.com/picolibc/picolibc-sub002/go/log"
	"github.com/picolibc/picolibc-sub002/go/nls"
)

var (
	// fs is the filesystem input files, output files and the data
	// directory are read from.
	fs afero.Fs = afero.NewOsFs()

	Root = &cobra.Command{
		Use:   "iconv",
		Short: "iconv converts text between character encodings.",
		Long: "`iconv` converts text from one character encoding to another.\n\n" +
			"Encodings are named by their canonical name or any of their aliases.\n" +
			"Additional tables and aliases are read from the directory given by `--nls-path` or `NLSPATH`.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return log.Init(cmd.Flags())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}
)

func init() {
	// log to stderr unless --logtostderr=false is given
	_ = goflag.Set("logtostderr", "true")

	Root.SetGlobalNormalizationFunc(flagutil.NormalizeUnderscoresToDashes)
	log.RegisterFlags(Root.PersistentFlags())
	nls.RegisterFlags(Root.PersistentFlags())
}

// dataOptions returns the conversion options for the configured data
// directory.
func dataOptions() []iconv.Option {
	return []iconv.Option{iconv.WithFS(fs), iconv.WithDir(nls.Dir())}
}
