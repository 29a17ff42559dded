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

package aliases

// builtinAliases lists every built-in charset with its aliases. The first
// token of a record is the canonical name. Lines starting with a space or
// tab continue the previous record.
const builtinAliases = `# canonical      aliases
big5             csbig5 big_five bigfive cn_big5 cp950
cp437            ibm437 437 cspc8codepage437
cp850            ibm850 850 cspc850multilingual
cp852            ibm852 852 cspcp852
cp855            ibm855 855 csibm855
cp858            ibm858 858 ccsid00858 cp00858 pc_multilingual_850+euro
cp866            ibm866 866 csibm866
euc_cn           euccn gb2312 csgb2312 cn_gb euc_gb
euc_jp           eucjp cseucpkdfmtjapanese
                 extended_unix_code_packed_format_for_japanese x_euc_jp ujis
euc_kr           euckr cseuckr
gb_2312_80       iso_ir_58 chinese csiso58gb231280
iso_2022_jp      csiso2022jp
iso_2022_jp_2    csiso2022jp2
iso_2022_kr      csiso2022kr
iso_8859_1       iso8859_1 iso_8859_1:1987 iso_ir_100 latin1 l1 ibm819 cp819
                 csisolatin1
iso_8859_2       iso8859_2 iso_8859_2:1987 iso_ir_101 latin2 l2 csisolatin2
iso_8859_3       iso8859_3 iso_8859_3:1988 iso_ir_109 latin3 l3 csisolatin3
iso_8859_4       iso8859_4 iso_8859_4:1988 iso_ir_110 latin4 l4 csisolatin4
iso_8859_5       iso8859_5 iso_8859_5:1988 iso_ir_144 cyrillic csisolatincyrillic
iso_8859_6       iso8859_6 iso_8859_6:1987 iso_ir_127 arabic ecma_114 asmo_708
                 csisolatinarabic
iso_8859_7       iso8859_7 iso_8859_7:1987 iso_ir_126 greek greek8 ecma_118 elot_928
                 csisolatingreek
iso_8859_8       iso8859_8 iso_8859_8:1988 iso_ir_138 hebrew csisolatinhebrew
iso_8859_9       iso8859_9 iso_8859_9:1989 iso_ir_148 latin5 l5 csisolatin5
iso_8859_10      iso8859_10 iso_8859_10:1992 iso_ir_157 latin6 l6 csisolatin6
iso_8859_13      iso8859_13 latin7 l7
iso_8859_14      iso8859_14 iso_8859_14:1998 iso_ir_199 latin8 l8 iso_celtic
iso_8859_15      iso8859_15 iso_8859_15:1998 iso_ir_203 latin9 latin_9
iso_8859_16      iso8859_16 iso_8859_16:2001 iso_ir_226 latin10 l10
jis_x0201        x0201 cshalfwidthkatakana
jis_x0208_1983   jis_c6226_1983 iso_ir_87 x0208 jis0208 csiso87jisx0208
jis_x0212_1990   x0212 iso_ir_159 csiso159jisx02121990
koi8_r           koi8r cskoi8r
koi8_u           koi8u
ksx1001          ks_c_5601_1987 ks_c_5601_1989 ksc_5601 ksc5601 korean iso_ir_149
                 csksc56011987
macintosh        mac macroman csmacintosh
shift_jis        sjis ms_kanji csshiftjis
ucs_2            ucs2 iso_10646_ucs_2 csunicode
ucs_2be          ucs2be
ucs_2le          ucs2le
ucs_2_internal   ucs2_internal
ucs_4            ucs4 iso_10646_ucs_4 csucs4
ucs_4be          ucs4be
ucs_4le          ucs4le
ucs_4_internal   ucs4_internal
us_ascii         ascii ansi_x3.4_1968 ansi_x3.4_1986 iso_ir_6 iso_646.irv:1991
                 iso646_us us ibm367 cp367 csascii
utf_16           utf16
utf_16be         utf16be
utf_16le         utf16le
utf_8            utf8
win_1250         windows_1250 cp1250 ms_ee
win_1251         windows_1251 cp1251 ms_cyrl
win_1252         windows_1252 cp1252 ms_ansi
win_1253         windows_1253 cp1253 ms_greek
win_1254         windows_1254 cp1254 ms_turk
win_1255         windows_1255 cp1255 ms_hebr
win_1256         windows_1256 cp1256 ms_arab
win_1257         windows_1257 cp1257 winbaltrim
win_1258         windows_1258 cp1258
`
