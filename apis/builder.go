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

// Builder constructs the collaborators a router needs for a given Config.
// Swapping the Builder swaps adaptation and resolution logic wholesale.
type Builder interface {
	BuildCatalog(cfg Config) Catalog
	BuildResolver(cfg Config, cat Catalog) Resolver
	// BuildEntry compiles a pattern Route over target into an Entry.
	BuildEntry(target any, route Route, cfg Config) (Entry, error)
}
