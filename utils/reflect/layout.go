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
	"reflect"
	"sync"
)

// Member describes one routable member of a Go type.
type Member struct {
	// Name is the exported Go identifier.
	Name string
	// Field is the index path for fields (nil for methods).
	Field []int
	// Method is the method index on the receiver type (-1 for fields).
	Method int
}

// IsMethod reports whether the member is a method.
func (m Member) IsMethod() bool { return m.Method >= 0 }

// Layout is the member table of a receiver type: exported fields of the
// underlying struct (promoted ones included) followed by the exported
// methods of the receiver's method set. Field names shadow method names.
type Layout struct {
	members []Member
	index   map[string]int
}

// Names returns member names in layout order. The slice is a copy.
func (l *Layout) Names() []string {
	names := make([]string, len(l.members))
	for i, m := range l.members {
		names[i] = m.Name
	}
	return names
}

// Lookup returns the member with the given name.
func (l *Layout) Lookup(name string) (Member, bool) {
	i, ok := l.index[name]
	if !ok {
		return Member{}, false
	}
	return l.members[i], true
}

// Len returns the number of members.
func (l *Layout) Len() int { return len(l.members) }

// layoutCache memoizes layouts by receiver type. Types never change shape at
// runtime, so entries are never invalidated.
var layoutCache sync.Map // key: reflect.Type, val: *Layout

// LayoutOf returns the (memoized) layout for a receiver type.
// recv may be a pointer type, in which case fields come from its element
// and methods from the pointer method set.
func LayoutOf(recv reflect.Type) *Layout {
	if v, ok := layoutCache.Load(recv); ok {
		return v.(*Layout)
	}
	l := buildLayout(recv)
	actual, _ := layoutCache.LoadOrStore(recv, l)
	return actual.(*Layout)
}

func buildLayout(recv reflect.Type) *Layout {
	l := &Layout{index: make(map[string]int)}
	add := func(m Member) {
		if _, dup := l.index[m.Name]; dup {
			return
		}
		l.index[m.Name] = len(l.members)
		l.members = append(l.members, m)
	}

	elem := recv
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct {
		for _, f := range reflect.VisibleFields(elem) {
			if !f.IsExported() {
				continue
			}
			add(Member{Name: f.Name, Field: f.Index, Method: -1})
		}
	}

	for i := 0; i < recv.NumMethod(); i++ {
		m := recv.Method(i)
		if !m.IsExported() {
			continue
		}
		add(Member{Name: m.Name, Method: i})
	}
	return l
}
