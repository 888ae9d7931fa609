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

package reflect

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/facet/apis"
	"dirpx.dev/facet/config"
)

var (
	// ErrReflectNilValue is returned when the value (or a pointer on the way
	// to it) is nil.
	ErrReflectNilValue = errors.New("reflect: nil value provided")
	// ErrReflectTooDeep indicates that the pointer/interface chain is longer
	// than MaxUnwrap.
	ErrReflectTooDeep = errors.New("reflect: indirection deeper than MaxUnwrap")
)

// Normalize peels pointers and interfaces off v according to
// cfg.MaxUnwrap and returns two views of the innermost value:
//
//   - recv: the value methods should be bound to. When the innermost value
//     is reached through a pointer, recv is that pointer, so the full
//     pointer method set is reachable and fields are addressable.
//   - elem: the innermost non-pointer value (struct, map, named scalar...).
//
// Unwrapping policy:
//   - interface -> Elem()
//   - ptr whose Elem is another ptr/interface -> Elem()
//   - ptr to anything else -> stop; recv = ptr, elem = *ptr
//   - anything else -> stop; recv = elem = v
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(v any, cfg apis.Config) (recv, elem reflect.Value, err error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return reflect.Value{}, reflect.Value{}, ErrReflectNilValue
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i <= maxUnwrap; i++ {
		switch rv.Kind() {
		case reflect.Interface:
			if rv.IsNil() {
				return reflect.Value{}, reflect.Value{}, ErrReflectNilValue
			}
			rv = rv.Elem()

		case reflect.Pointer:
			if rv.IsNil() {
				return reflect.Value{}, reflect.Value{}, ErrReflectNilValue
			}
			next := rv.Elem()
			if k := next.Kind(); k == reflect.Pointer || k == reflect.Interface {
				rv = next
				continue
			}
			return rv, next, nil

		default:
			return rv, rv, nil
		}
	}
	return reflect.Value{}, reflect.Value{}, ErrReflectTooDeep
}

// Assignable converts value into something that can be stored in a slot of
// type t. Nil yields the zero value of t. No coercion is performed: the
// dynamic type must be assignable to t.
func Assignable(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(t), nil
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: cannot use %s as %s", apis.ErrTypeMismatch, rv.Type(), t)
	}
	return rv, nil
}
