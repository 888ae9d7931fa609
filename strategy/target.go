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
	"dirpx.dev/facet/apis"
)

// NewTargetStrategy creates an apis.Strategy for values that already
// implement apis.Target (routers, hand-written adapters).
func NewTargetStrategy() apis.Strategy {
	return &targetStrategy{}
}

// targetStrategy is a zero-cost fast path: if v implements apis.Target,
// use it as-is and stop the chain.
type targetStrategy struct{}

// Ensure targetStrategy implements apis.Strategy.
var _ apis.Strategy = (*targetStrategy)(nil)

// TryAdapt checks if v implements apis.Target.
func (*targetStrategy) TryAdapt(v any, _ apis.Config) (apis.Target, bool) {
	if v == nil {
		return nil, false
	}
	if t, ok := v.(apis.Target); ok {
		return t, true
	}
	return nil, false
}

// Empty returns a Target with no members.
func Empty() apis.Target {
	return emptyTarget{}
}

type emptyTarget struct{}

func (emptyTarget) Members() []string { return nil }

func (emptyTarget) Get(name string) (any, error) {
	return nil, notFound(name)
}

func (emptyTarget) Set(name string, _ any) error {
	return notFound(name)
}
