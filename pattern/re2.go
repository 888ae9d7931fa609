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

import (
	"regexp"
	"strconv"
)

type re2Matcher struct {
	expr   string
	full   *regexp.Regexp
	search *regexp.Regexp
}

func compileRE2(expr string) (Matcher, error) {
	search, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	full, err := regexp.Compile(anchored(expr))
	if err != nil {
		return nil, err
	}
	return &re2Matcher{expr: expr, full: full, search: search}, nil
}

func (m *re2Matcher) FullMatch(s string) (bool, error) {
	return m.full.MatchString(s), nil
}

func (m *re2Matcher) Replace(s, template string) (string, error) {
	return m.search.ReplaceAllString(s, template), nil
}

func (m *re2Matcher) HasGroup(ref string) bool {
	if n, err := strconv.Atoi(ref); err == nil {
		return n >= 0 && n <= m.search.NumSubexp()
	}
	return m.search.SubexpIndex(ref) >= 0
}

func (m *re2Matcher) String() string { return m.expr }
