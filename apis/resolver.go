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

// Resolver turns an ordered list of entries into a Mapping.
// Implementations must swallow qualifier and transform failures and apply
// the configured Collision policy.
type Resolver interface {
	// Resolve enumerates every entry's target in order and returns the
	// resulting mapping. It never fails.
	Resolve(entries []Entry) Mapping

	// Catalog returns the catalog used to adapt entry targets.
	Catalog() Catalog

	// Config returns the configuration the resolver was built with.
	Config() Config
}

// Catalog adapts arbitrary values to Target.
// Typical chain: TargetStrategy -> MapStrategy -> ReflectStrategy.
type Catalog interface {
	// Adapt returns a Target for v. It never returns nil; values with no
	// reachable members yield an empty Target.
	Adapt(v any) Target
}
