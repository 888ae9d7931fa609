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
	"slices"

	"dirpx.dev/facet/apis"
	uref "dirpx.dev/facet/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that exposes exported fields
// and methods via reflection. It is the universal fallback and handles every
// non-nil value.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy adapts structs (fields + methods) and any other value
// (methods only). Pass a pointer to make fields writable and to reach
// pointer-receiver methods.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

// TryAdapt normalizes v and builds a layout-backed target.
func (reflectStrategy) TryAdapt(v any, cfg apis.Config) (apis.Target, bool) {
	recv, elem, err := uref.Normalize(v, cfg)
	if err != nil {
		return nil, false
	}
	return objectTarget{recv: recv, elem: elem, layout: uref.LayoutOf(recv.Type())}, true
}

// objectTarget routes member access to fields and methods of a Go value.
type objectTarget struct {
	recv   reflect.Value
	elem   reflect.Value
	layout *uref.Layout
}

// Members lists the layout's members, minus fields promoted through a nil
// embedded pointer, which the value cannot reach.
func (t objectTarget) Members() []string {
	return slices.DeleteFunc(t.layout.Names(), func(name string) bool {
		m, _ := t.layout.Lookup(name)
		return !t.reachable(m)
	})
}

func (t objectTarget) reachable(m uref.Member) bool {
	if m.IsMethod() || len(m.Field) < 2 {
		return true
	}
	_, err := t.elem.FieldByIndexErr(m.Field)
	return err == nil
}

func (t objectTarget) Get(name string) (any, error) {
	m, ok := t.layout.Lookup(name)
	if !ok {
		return nil, notFound(name)
	}
	if m.IsMethod() {
		return t.recv.Method(m.Method).Interface(), nil
	}

	fv, err := t.elem.FieldByIndexErr(m.Field)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", apis.ErrMemberNotFound, name, err)
	}
	if !fv.CanInterface() {
		return nil, notFound(name)
	}
	if a, ok := accessorOf(fv); ok {
		return a.Load()
	}
	return fv.Interface(), nil
}

func (t objectTarget) Set(name string, value any) error {
	m, ok := t.layout.Lookup(name)
	if !ok {
		return notFound(name)
	}
	if m.IsMethod() {
		return fmt.Errorf("%w: method %q", apis.ErrReadOnly, name)
	}

	fv, err := t.elem.FieldByIndexErr(m.Field)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", apis.ErrMemberNotFound, name, err)
	}
	if a, ok := accessorOf(fv); ok {
		return store(a, value)
	}
	if !fv.CanSet() {
		return fmt.Errorf("%w: field %q", apis.ErrNotAddressable, name)
	}
	rv, err := uref.Assignable(value, fv.Type())
	if err != nil {
		return err
	}
	fv.Set(rv)
	return nil
}
