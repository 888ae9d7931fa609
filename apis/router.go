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

// Router is a facade exposing a filtered, renamed view over its entries.
// A Router is itself a Target and can be routed by another Router.
type Router interface {
	Target

	// Kind reports the caching policy of the router.
	Kind() Kind
	// Entries returns a copy of the router's entries in order.
	Entries() []Entry
	// Compose returns a new router of the same kind whose entries are the
	// receiver's followed by other's. Neither operand changes.
	Compose(other Router) (Router, error)
}
