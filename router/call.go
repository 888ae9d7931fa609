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

package router

import (
	"fmt"
	"reflect"

	"dirpx.dev/facet/apis"
	uref "dirpx.dev/facet/utils/reflect"
)

// Call reads name from t and invokes it with args. The member must be a
// non-nil function. Arguments follow assignment rules (nil becomes the zero
// value, no coercion); variadic functions take their trailing arguments
// one by one. Results are returned in order, errors included as values.
func Call(t apis.Target, name string, args ...any) ([]any, error) {
	v, err := t.Get(name)
	if err != nil {
		return nil, err
	}

	fn := reflect.ValueOf(v)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, fmt.Errorf("%w: %q", apis.ErrNotCallable, name)
	}

	ft := fn.Type()
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: %q takes at least %d, got %d", apis.ErrArity, name, n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("%w: %q takes %d, got %d", apis.ErrArity, name, n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		rv, err := uref.Assignable(a, pt)
		if err != nil {
			return nil, fmt.Errorf("%q argument %d: %w", name, i, err)
		}
		in[i] = rv
	}

	out := fn.Call(in)
	results := make([]any, len(out))
	for i, o := range out {
		results[i] = o.Interface()
	}
	return results, nil
}
