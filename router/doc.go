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

// Package router implements the two routing facades.
//
// Both routers hold an immutable, ordered list of apis.Entry and a
// resolver. They differ only in when the visible-name mapping is built:
//
//   - Eager resolves once in NewEager and serves every Get, Set and
//     Members from that snapshot. The snapshot is read-only, so an Eager
//     router may be read from many goroutines.
//   - Lazy resolves from scratch on every call and keeps nothing, so it
//     follows targets whose member sets change.
//
// Routers implement apis.Target and can be used as the target of another
// router's entries. Composition concatenates entry lists into a new router
// and never mutates its operands.
package router
