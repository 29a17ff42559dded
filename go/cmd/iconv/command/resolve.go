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

	"github.com/spf13/cobra"

	"github.com/picolibc/picolibc-sub002/go/iconv"
)

var Resolve = &cobra.Command{
	Use:   "resolve <name> [<name> ...]",
	Short: "Prints the canonical name of each encoding name or alias.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  commandResolve,
}

func commandResolve(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		canonical, err := iconv.Resolve(name, dataOptions()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, canonical)
	}
	return nil
}

func init() {
	Root.AddCommand(Resolve)
}
