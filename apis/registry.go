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

// Mapping is a resolved routing table: visible name -> Binding.
// A Mapping handed out by a resolver is never mutated afterwards, so it
// can be read concurrently.
type Mapping interface {
	// Lookup returns the binding registered under a visible name.
	Lookup(name string) (Binding, bool)
	// Names returns the visible names in sorted order.
	Names() []string
	// Bindings returns the bindings in registration order.
	Bindings() []Binding
	// Count returns the number of visible names.
	Count() int
}

// Binding routes one visible name to one member of one target.
type Binding struct {
	// Name is the visible name.
	Name string
	// Target is the adapted target owning the member.
	Target Target
	// Member is the member name on Target.
	Member string
	// Entry is the index of the Entry that produced the binding.
	Entry int
}
