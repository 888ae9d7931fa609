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

// Package pattern compiles the regular expressions used by convenience
// routes. Two engines are available: the standard library's RE2 and a
// backtracking engine for patterns that need lookaround or backreferences.
package pattern

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/facet/apis"
)

// ErrInvalidPattern is returned when a pattern does not compile.
var ErrInvalidPattern = errors.New("facet(pattern): invalid pattern")

// Matcher is a compiled pattern.
type Matcher interface {
	// FullMatch reports whether the pattern matches all of s.
	FullMatch(s string) (bool, error)
	// Replace substitutes every match in s with template, which uses Go
	// group references ($1, ${1}, ${name}); see Template for translating
	// backslash references. The engines differ on an empty match right
	// after a non-empty one: RE2 skips it, Backtrack replaces it too, so
	// (.*) with p_${1} turns "a" into "p_a" and "p_ap_" respectively.
	Replace(s, template string) (string, error)
	// HasGroup reports whether ref, a group number or name, is defined by
	// the pattern. Group 0 is the whole match.
	HasGroup(ref string) bool
	// String returns the source pattern.
	String() string
}

// Compile compiles expr with the given engine.
func Compile(expr string, engine apis.Engine) (Matcher, error) {
	var (
		m   Matcher
		err error
	)
	switch engine {
	case apis.RE2:
		m, err = compileRE2(expr)
	case apis.Backtrack:
		m, err = compileBacktrack(expr)
	default:
		return nil, fmt.Errorf("%w: unknown engine %v", ErrInvalidPattern, engine)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, expr, err)
	}
	return m, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string, engine apis.Engine) Matcher {
	m, err := Compile(expr, engine)
	if err != nil {
		panic(err)
	}
	return m
}

// CheckTemplate verifies that every group template references exists in m.
// References are read the way regexp.Expand reads them: $name or ${name},
// where name is a run of letters, digits and underscores, and $$ is a
// literal dollar.
func CheckTemplate(m Matcher, template string) error {
	for _, ref := range groupRefs(template) {
		if !m.HasGroup(ref) {
			return fmt.Errorf("%w: %q has no group %q", ErrInvalidPattern, m.String(), ref)
		}
	}
	return nil
}

func groupRefs(template string) []string {
	var refs []string
	for {
		i := strings.IndexByte(template, '$')
		if i < 0 || i+1 == len(template) {
			return refs
		}
		template = template[i+1:]
		switch template[0] {
		case '$':
			template = template[1:]
		case '{':
			end := strings.IndexByte(template, '}')
			if end > 1 && isName(template[1:end]) {
				refs = append(refs, template[1:end])
				template = template[end+1:]
			}
		default:
			n := 0
			for n < len(template) && isNameByte(template[n]) {
				n++
			}
			if n > 0 {
				refs = append(refs, template[:n])
				template = template[n:]
			}
		}
	}
}

func isName(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	return s != ""
}

func isNameByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// anchored wraps expr so that it must match the whole input.
func anchored(expr string) string {
	return `\A(?:` + expr + `)\z`
}
