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

// Qualifier decides whether a candidate member name is exposed.
// A returned error counts as a rejection; it never reaches the caller.
type Qualifier func(name string) (bool, error)

// Transform maps an internal member name to its externally visible name.
// A returned error drops the candidate; it never reaches the caller.
type Transform func(name string) (string, error)

// Entry is the atomic unit of routing configuration: a target plus the
// qualifier and transform applied to its member names.
//
// Target may be any value; it is adapted through the router's Catalog
// every time its members are enumerated. A nil Qualifier accepts every
// name and a nil Transform is the identity.
type Entry struct {
	Target    any
	Qualifier Qualifier
	Transform Transform
}

// Predicate lifts a plain boolean function into a Qualifier.
func Predicate(fn func(name string) bool) Qualifier {
	return func(name string) (bool, error) {
		return fn(name), nil
	}
}

// Rename lifts a plain string function into a Transform.
func Rename(fn func(name string) string) Transform {
	return func(name string) (string, error) {
		return fn(name), nil
	}
}

// AcceptAll is the Qualifier that exposes every candidate.
func AcceptAll(string) (bool, error) { return true, nil }

// Identity is the Transform that keeps names unchanged.
func Identity(name string) (string, error) { return name, nil }

// Route is the pattern form of an Entry used by convenience constructors.
type Route struct {
	// Match is a regular expression that must match the whole candidate
	// name. Empty means Config.Pattern.
	Match string
	// Rewrite, when set, renames matching names by substitution.
	Rewrite *Rewrite
}

// Rewrite is a substitution applied to a qualified name.
type Rewrite struct {
	// Pattern is searched for in the name; every match is replaced.
	Pattern string
	// Template may reference capture groups as \1, \g<1>, \g<name>,
	// $1, ${1} or ${name}. $$ is a literal dollar sign.
	Template string
}
