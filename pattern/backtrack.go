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
	"slices"
	"strconv"
	"time"

	"github.com/dlclark/regexp2"
)

// backtrackTimeout bounds a single match. A timeout surfaces as an error,
// which the resolver treats as a rejection.
const backtrackTimeout = time.Second

type backtrackMatcher struct {
	expr   string
	full   *regexp2.Regexp
	search *regexp2.Regexp
}

func compileBacktrack(expr string) (Matcher, error) {
	search, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, err
	}
	full, err := regexp2.Compile(anchored(expr), regexp2.None)
	if err != nil {
		return nil, err
	}
	search.MatchTimeout = backtrackTimeout
	full.MatchTimeout = backtrackTimeout
	return &backtrackMatcher{expr: expr, full: full, search: search}, nil
}

func (m *backtrackMatcher) FullMatch(s string) (bool, error) {
	return m.full.MatchString(s)
}

func (m *backtrackMatcher) Replace(s, template string) (string, error) {
	return m.search.Replace(s, template, -1, -1)
}

func (m *backtrackMatcher) HasGroup(ref string) bool {
	if n, err := strconv.Atoi(ref); err == nil {
		return slices.Contains(m.search.GetGroupNumbers(), n)
	}
	return m.search.GroupNumberFromName(ref) >= 0
}

func (m *backtrackMatcher) String() string { return m.expr }
