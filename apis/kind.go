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

package apis

import (
	"fmt"
	"strings"
)

// Kind selects the caching policy of a router's name mapping.
//
// # Values
//
//   - Eager: the mapping is resolved once, at construction time.
//   - Lazy: the mapping is resolved again on every access.
//
// # Contract
//
//   - Eager routers pay the enumeration and filtering cost once; every
//     later Get/Set/Members is a map lookup. The snapshot goes stale if a
//     target gains or loses members after construction.
//   - Lazy routers never retain a mapping. They see target mutation at
//     the cost of a full enumeration per operation.
//   - Only routers of the same Kind can be composed.
type Kind int

const (
	// Eager resolves the mapping once.
	Eager Kind = iota
	// Lazy resolves the mapping on every access.
	Lazy
)

// String returns "Eager", "Lazy", or "Unknown(<n>)" for out-of-range values.
func (k Kind) String() string {
	switch k {
	case Eager:
		return "Eager"
	case Lazy:
		return "Lazy"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// ParseKind parses a Kind case-insensitively, ignoring surrounding space.
func ParseKind(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Eager, fmt.Errorf("facet: empty router kind")
	}

	switch strings.ToUpper(trimmed) {
	case "EAGER":
		return Eager, nil
	case "LAZY":
		return Lazy, nil
	default:
		return Eager, fmt.Errorf("facet: unknown router kind %q", s)
	}
}

// MustParseKind is like ParseKind but panics on error.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Eager, Lazy:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("facet: cannot marshal unknown router kind %d", k)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	value, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = value
	return nil
}

// Collision decides which binding survives when two candidates resolve to
// the same visible name. Re-registering the identical (target, member)
// pair is never a collision.
type Collision int

const (
	// FirstWins keeps the earliest registration and ignores later ones.
	FirstWins Collision = iota
	// LastWins lets later registrations replace earlier ones.
	LastWins
	// Exclude drops an ambiguous name from the mapping altogether.
	Exclude
)

func (c Collision) String() string {
	switch c {
	case FirstWins:
		return "first-wins"
	case LastWins:
		return "last-wins"
	case Exclude:
		return "exclude"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// ParseCollision accepts the String forms, case-insensitively.
func ParseCollision(s string) (Collision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FirstWins, fmt.Errorf("facet: empty collision policy")
	case "first-wins":
		return FirstWins, nil
	case "last-wins":
		return LastWins, nil
	case "exclude":
		return Exclude, nil
	default:
		return FirstWins, fmt.Errorf("facet: unknown collision policy %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Collision) MarshalText() ([]byte, error) {
	switch c {
	case FirstWins, LastWins, Exclude:
		return []byte(c.String()), nil
	default:
		return nil, fmt.Errorf("facet: cannot marshal unknown collision policy %d", c)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Collision) UnmarshalText(text []byte) error {
	value, err := ParseCollision(string(text))
	if err != nil {
		return err
	}
	*c = value
	return nil
}

// Engine selects the regular expression implementation for route patterns.
type Engine int

const (
	// RE2 uses the standard library regexp package: linear time, no
	// lookaround, no backreferences.
	RE2 Engine = iota
	// Backtrack uses a backtracking engine that supports lookaround and
	// backreferences, at the cost of worst-case exponential matching.
	// Substitution also replaces an empty match that directly follows a
	// non-empty one, which RE2 skips: (.*) renames "a" to "p_ap_" with
	// template p_${1} here and to "p_a" under RE2.
	Backtrack
)

func (e Engine) String() string {
	switch e {
	case RE2:
		return "re2"
	case Backtrack:
		return "backtrack"
	default:
		return fmt.Sprintf("Unknown(%d)", e)
	}
}

// ParseEngine accepts the String forms, case-insensitively.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RE2, fmt.Errorf("facet: empty pattern engine")
	case "re2":
		return RE2, nil
	case "backtrack":
		return Backtrack, nil
	default:
		return RE2, fmt.Errorf("facet: unknown pattern engine %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Engine) MarshalText() ([]byte, error) {
	switch e {
	case RE2, Backtrack:
		return []byte(e.String()), nil
	default:
		return nil, fmt.Errorf("facet: cannot marshal unknown pattern engine %d", e)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Engine) UnmarshalText(text []byte) error {
	value, err := ParseEngine(string(text))
	if err != nil {
		return err
	}
	*e = value
	return nil
}
