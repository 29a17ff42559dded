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
	"strings"

	"github.com/bndr/gotabulate"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/picolibc/picolibc-sub002/go/iconv"
	"github.com/picolibc/picolibc-sub002/go/iconv/aliases"
	"github.com/picolibc/picolibc-sub002/go/iconv/ccs"
	"github.com/picolibc/picolibc-sub002/go/iconv/ces"
)

var (
	listOptions = struct {
		Format string
	}{
		Format: "table",
	}

	List = &cobra.Command{
		Use:   "list",
		Short: "Lists the built-in character encodings and their aliases.",
		Args:  cobra.NoArgs,
		RunE:  commandList,
	}
)

// encodingRow describes one encoding for the list output.
type encodingRow struct {
	Name    string
	Kind    string
	Width   string
	Size    string
	Aliases []string
}

func describe(name string, aliasesOf map[string][]string) encodingRow {
	row := encodingRow{Name: name, Aliases: aliasesOf[name]}
	if class, ok := ces.Lookup(name); ok {
		row.Kind = class.Kind.String()
		return row
	}

	row.Kind = ces.KindTable.String()
	t, err := ccs.Open(nil, "", name)
	if err != nil {
		return row
	}
	defer t.Close()
	row.Width = t.Width().String()
	row.Size = humanize.Bytes(uint64(t.Size()))
	return row
}

func commandList(cmd *cobra.Command, args []string) error {
	aliasesOf := map[string][]string{}
	aliases.Records(func(canonical string, names []string) {
		aliasesOf[canonical] = names
	})

	var rows []encodingRow
	for _, name := range iconv.List() {
		rows = append(rows, describe(name, aliasesOf))
	}

	out := cmd.OutOrStdout()
	switch listOptions.Format {
	case "names":
		for _, row := range rows {
			fmt.Fprintln(out, row.Name)
		}
	case "table":
		data := make([][]string, 0, len(rows))
		for _, row := range rows {
			data = append(data, []string{row.Name, row.Kind, row.Width, row.Size, strings.Join(row.Aliases, " ")})
		}
		t := gotabulate.Create(data)
		t.SetHeaders([]string{"Name", "Kind", "Width", "Size", "Aliases"})
		t.SetEmptyString("-")
		t.SetAlign("left")
		fmt.Fprint(out, t.Render("simple"))
	default:
		return fmt.Errorf("unknown --format %q, want table or names", listOptions.Format)
	}
	return nil
}

func init() {
	List.Flags().StringVar(&listOptions.Format, "format", listOptions.Format, "Output format: table or names.")
	Root.AddCommand(List)
}
