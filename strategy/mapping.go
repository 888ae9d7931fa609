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

// NewMapStrategy creates an apis.Strategy that exposes the keys of a
// string-keyed map as members. Pointers to maps are accepted; writes go
// straight into the shared map.
func NewMapStrategy() apis.Strategy {
	return &mapStrategy{}
}

type mapStrategy struct{}

var _ apis.Strategy = (*mapStrategy)(nil)

// TryAdapt handles maps whose key kind is string.
func (*mapStrategy) TryAdapt(v any, cfg apis.Config) (apis.Target, bool) {
	_, elem, err := uref.Normalize(v, cfg)
	if err != nil || elem.Kind() != reflect.Map || elem.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	return mapTarget{m: elem}, true
}

// mapTarget routes member access to map keys.
type mapTarget struct {
	m reflect.Value
}

// Members returns the keys in sorted order.
func (t mapTarget) Members() []string {
	names := make([]string, 0, t.m.Len())
	iter := t.m.MapRange()
	for iter.Next() {
		names = append(names, iter.Key().String())
	}
	slices.Sort(names)
	return names
}

func (t mapTarget) Get(name string) (any, error) {
	v := t.m.MapIndex(t.key(name))
	if !v.IsValid() {
		return nil, notFound(name)
	}
	if a, ok := accessorOf(v); ok {
		return a.Load()
	}
	return v.Interface(), nil
}

func (t mapTarget) Set(name string, value any) error {
	if t.m.IsNil() {
		return fmt.Errorf("%w: nil map", apis.ErrNotAddressable)
	}
	key := t.key(name)
	if cur := t.m.MapIndex(key); cur.IsValid() {
		if a, ok := accessorOf(cur); ok {
			return store(a, value)
		}
	}
	rv, err := uref.Assignable(value, t.m.Type().Elem())
	if err != nil {
		return err
	}
	t.m.SetMapIndex(key, rv)
	return nil
}

// key converts name to the map's key type, which may be a named string type.
func (t mapTarget) key(name string) reflect.Value {
	return reflect.ValueOf(name).Convert(t.m.Type().Key())
}
