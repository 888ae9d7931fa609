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

import "errors"

var (
	// ErrMemberNotFound is returned when a name is not exposed by a router
	// or not present on a target.
	ErrMemberNotFound = errors.New("facet: member not found")
	// ErrIncompatibleKind is returned when composing routers of different kinds.
	ErrIncompatibleKind = errors.New("facet: incompatible router kind")
	// ErrReadOnly is returned when writing a member that cannot be written
	// (methods, computed members without a Mutator).
	ErrReadOnly = errors.New("facet: member is read-only")
	// ErrNotAddressable is returned when writing a field of a struct that
	// was routed by value instead of by pointer.
	ErrNotAddressable = errors.New("facet: target is not addressable")
	// ErrTypeMismatch is returned when a value is not assignable to the
	// member's type.
	ErrTypeMismatch = errors.New("facet: value type mismatch")
	// ErrNotCallable is returned by Call when the member is not a function.
	ErrNotCallable = errors.New("facet: member is not callable")
	// ErrArity is returned by Call when the argument count does not fit.
	ErrArity = errors.New("facet: wrong number of arguments")
)
