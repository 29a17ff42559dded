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

package main

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dave/jennifer/jen"
)

const licenseFileHeader = `Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.`

// generateGo renders a Go file declaring a map from charset name to
// compiled table blob.
func generateGo(pkgName, varName string, blobs map[string][]byte) ([]byte, error) {
	names := make([]string, 0, len(blobs))
	for name := range blobs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := jen.NewFile(pkgName)
	out.HeaderComment(licenseFileHeader)
	out.HeaderComment("Code generated by makecct. DO NOT EDIT.")

	entries := jen.Dict{}
	for _, name := range names {
		entries[jen.Lit(name)] = jen.Index().Byte().Call(jen.Lit(string(blobs[name])))
	}
	out.Commentf("%s holds compiled conversion tables keyed by canonical charset name.", varName)
	out.Var().Id(varName).Op("=").Map(jen.String()).Index().Byte().Values(entries)

	var buf bytes.Buffer
	if err := out.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", varName, err)
	}
	return buf.Bytes(), nil
}
