/*
   Copyright 2025 The DIRPX Authors.

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

package pattern

import "strings"

// Template translates backslash group references into the ${...} form both
// engines understand, leaving Go-style references untouched:
//
//	\1, \12       -> ${1}, ${12}   (at most two digits)
//	\g<1>, \g<id> -> ${1}, ${id}
//	\\            -> \
//	\n, \t, \r    -> newline, tab, carriage return
//
// A literal dollar sign must be written $$. Other backslashes are kept.
func Template(tmpl string) string {
	if !strings.Contains(tmpl, `\`) {
		return tmpl
	}

	var b strings.Builder
	b.Grow(len(tmpl) + 8)
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '\\' || i+1 == len(tmpl) {
			b.WriteByte(c)
			continue
		}

		next := tmpl[i+1]
		switch {
		case isDigit(next):
			j := i + 1
			for j < len(tmpl) && j < i+3 && isDigit(tmpl[j]) {
				j++
			}
			writeRef(&b, tmpl[i+1:j])
			i = j - 1
		case next == 'g' && i+2 < len(tmpl) && tmpl[i+2] == '<':
			end := strings.IndexByte(tmpl[i+3:], '>')
			if end <= 0 {
				b.WriteByte(c)
				continue
			}
			writeRef(&b, tmpl[i+3:i+3+end])
			i += 3 + end
		case next == '\\':
			b.WriteByte('\\')
			i++
		case next == 'n':
			b.WriteByte('\n')
			i++
		case next == 't':
			b.WriteByte('\t')
			i++
		case next == 'r':
			b.WriteByte('\r')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func writeRef(b *strings.Builder, ref string) {
	b.WriteString("${")
	b.WriteString(ref)
	b.WriteByte('}')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
