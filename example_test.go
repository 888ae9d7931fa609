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

package facet_test

import (
	"fmt"

	"dirpx.dev/facet"
)

type Device struct {
	Bar0 int
	Bar1 int
}

func ExampleEager() {
	dev := &Device{Bar0: 123, Bar1: 321}
	r := facet.MustEager(dev, facet.Match(`^.*0$`), facet.Rename(`^(.*)0$`, `\1`))

	fmt.Println(r.Members())
	v, _ := r.Get("Bar")
	fmt.Println(v)
	_ = r.Set("Bar", 456)
	fmt.Println(dev.Bar0)
	// Output:
	// [Bar]
	// 123
	// 456
}

func ExampleCompose() {
	a, b := &Device{Bar0: 1}, &Device{Bar0: 2}
	left := facet.MustEager(a, facet.Match(`Bar0`), facet.Rename(`^(.*)$`, `a_\1`))
	right := facet.MustEager(b, facet.Match(`Bar0`), facet.Rename(`^(.*)$`, `b_\1`))

	hub, err := facet.Compose(left, right)
	if err != nil {
		panic(err)
	}
	fmt.Println(hub.Members())

	// Routers are targets too, so they nest.
	inner := facet.MustEager(hub, facet.Match(`.*_Bar0`), facet.Rename(`_Bar0$`, ``))
	v, _ := inner.Get("b")
	fmt.Println(inner.Members(), v)
	// Output:
	// [a_Bar0 b_Bar0]
	// [a b] 2
}
