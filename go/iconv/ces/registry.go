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

package ces

var registry = map[string]*Class{}

func register(classes ...*Class) {
	for _, c := range classes {
		registry[c.Name] = c
	}
}

func init() {
	register(
		&Class{Name: "utf_8", Kind: KindUTF8},

		&Class{Name: "utf_16", Kind: KindUTF16, Order: OrderDefault},
		&Class{Name: "utf_16be", Kind: KindUTF16, Order: OrderBig},
		&Class{Name: "utf_16le", Kind: KindUTF16, Order: OrderLittle},

		&Class{Name: "ucs_2", Kind: KindUCS2, Order: OrderDefault},
		&Class{Name: "ucs_2be", Kind: KindUCS2, Order: OrderBig},
		&Class{Name: "ucs_2le", Kind: KindUCS2, Order: OrderLittle},
		&Class{Name: "ucs_2_internal", Kind: KindUCS2, Order: OrderNative},

		&Class{Name: "ucs_4", Kind: KindUCS4, Order: OrderDefault},
		&Class{Name: "ucs_4be", Kind: KindUCS4, Order: OrderBig},
		&Class{Name: "ucs_4le", Kind: KindUCS4, Order: OrderLittle},
		&Class{Name: "ucs_4_internal", Kind: KindUCS4, Order: OrderNative},

		&Class{Name: "euc_jp", Kind: KindEUC, Planes: []Plane{
			{Charset: "us_ascii"},
			{Charset: "jis_x0208_1983"},
			{Charset: "jis_x0201", Prefix: "\x8e"},
			{Charset: "jis_x0212_1990", Prefix: "\x8f"},
		}},
		&Class{Name: "euc_kr", Kind: KindEUC, Planes: []Plane{
			{Charset: "us_ascii"},
			{Charset: "ksx1001"},
		}},
		&Class{Name: "euc_cn", Kind: KindEUC, Planes: []Plane{
			{Charset: "us_ascii"},
			{Charset: "gb_2312_80"},
		}},

		&Class{Name: "iso_2022_jp", Kind: KindISO2022, Planes: []Plane{
			{Charset: "us_ascii", Prefix: "\x1b(B", Shift: SI},
			{Charset: "jis_x0201", Prefix: "\x1b(J", Shift: SI},
			{Charset: "jis_x0208_1983", Prefix: "\x1b$B", Shift: SI},
			{Charset: "jis_x0208_1983", Prefix: "\x1b$@", Shift: SI},
		}},
		&Class{Name: "iso_2022_jp_2", Kind: KindISO2022, Planes: []Plane{
			{Charset: "us_ascii", Prefix: "\x1b(B", Shift: SI},
			{Charset: "jis_x0201", Prefix: "\x1b(J", Shift: SI},
			{Charset: "jis_x0208_1983", Prefix: "\x1b$B", Shift: SI},
			{Charset: "jis_x0208_1983", Prefix: "\x1b$@", Shift: SI},
			{Charset: "jis_x0212_1990", Prefix: "\x1b$(D", Shift: SI},
			{Charset: "ksx1001", Prefix: "\x1b$(C", Shift: SI},
			{Charset: "gb_2312_80", Prefix: "\x1b$A", Shift: SI},
			{Charset: "iso_8859_1", Prefix: "\x1b.A", Shift: SS2},
		}},
		&Class{Name: "iso_2022_kr", Kind: KindISO2022, Planes: []Plane{
			{Charset: "us_ascii", Shift: SI},
			{Charset: "ksx1001", Prefix: "\x1b$)C", Shift: SO},
		}},
	)
}
