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

package strategy

import (
	"fmt"
	"reflect"

	"dirpx.dev/facet/apis"
)

// accessorOf reports whether v holds a computed member. Pointer-receiver
// implementations are found through v's address when it has one. Nil
// pointers and interfaces are plain data.
func accessorOf(v reflect.Value) (apis.Accessor, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, false
		}
	}
	if v.CanInterface() {
		if a, ok := v.Interface().(apis.Accessor); ok {
			return a, true
		}
	}
	if v.CanAddr() && v.Addr().CanInterface() {
		if a, ok := v.Addr().Interface().(apis.Accessor); ok {
			return a, true
		}
	}
	return nil, false
}

// store writes through a computed member, which is read-only unless it
// also implements apis.Mutator.
func store(a apis.Accessor, value any) error {
	m, ok := a.(apis.Mutator)
	if !ok {
		return apis.ErrReadOnly
	}
	return m.Store(value)
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", apis.ErrMemberNotFound, name)
}
