// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package agg

import (
	"context"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
)

var _ ResultHolder[any] = new(ObjectResultHolder[any])
var _ GroupByResultHolder[any] = new(ObjectGroupByResultHolder[any])

type ObjectResultHolder[T any] struct {
	v T
}

func NewObjectResultHolder[T any]() *ObjectResultHolder[T] {
	return &ObjectResultHolder[T]{}
}

func (h *ObjectResultHolder[T]) GetResult() T {
	return h.v
}

func (h *ObjectResultHolder[T]) SetValue(v T) {
	h.v = v
}

// ObjectGroupByResultHolder grows its slots on demand, doubling up to max.
type ObjectGroupByResultHolder[T any] struct {
	vs  []T
	max int
}

func NewObjectGroupByResultHolder[T any](initial, max int) *ObjectGroupByResultHolder[T] {
	if initial > max {
		initial = max
	}
	if initial < 0 {
		initial = 0
	}
	return &ObjectGroupByResultHolder[T]{
		vs:  make([]T, initial),
		max: max,
	}
}

func (h *ObjectGroupByResultHolder[T]) GetResult(key int) T {
	if key < 0 || key >= len(h.vs) {
		var zero T
		return zero
	}
	return h.vs[key]
}

func (h *ObjectGroupByResultHolder[T]) SetValueForKey(key int, v T) {
	h.vs[key] = v
}

func (h *ObjectGroupByResultHolder[T]) EnsureCapacity(n int) error {
	if n <= len(h.vs) {
		return nil
	}
	if n > h.max {
		return moerr.NewInvalidInput(context.TODO(), "group key %d exceeds max capacity %d", n-1, h.max)
	}
	size := len(h.vs) * 2
	if size < n {
		size = n
	}
	if size > h.max {
		size = h.max
	}
	vs := make([]T, size)
	copy(vs, h.vs)
	h.vs = vs
	return nil
}

func (h *ObjectGroupByResultHolder[T]) Capacity() int {
	return len(h.vs)
}

func (h *ObjectGroupByResultHolder[T]) MaxCapacity() int {
	return h.max
}
