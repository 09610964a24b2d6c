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

package dict

import (
	"github.com/matrixorigin/distinctcount/pkg/container/types"
)

// Dictionary maps dense 0-based ids to values of a single kind. Only the
// getter matching GetType() is meaningful.
type Dictionary interface {
	GetType() types.Type
	Length() int

	GetInt32(id uint32) int32
	GetInt64(id uint32) int64
	GetFloat32(id uint32) float32
	GetFloat64(id uint32) float64
	GetString(id uint32) string
	GetBytes(id uint32) []byte
}

type reverseIndex interface {
	insert(key any, next uint32) (uint32, bool)
	find(key any) (uint32, bool)
}

type fixedReverseIndex struct {
	m map[uint64]uint32
}

func newFixedReverseIndex() *fixedReverseIndex {
	return &fixedReverseIndex{m: make(map[uint64]uint32)}
}

func (idx *fixedReverseIndex) insert(key any, next uint32) (uint32, bool) {
	k := key.(uint64)
	if id, ok := idx.m[k]; ok {
		return id, false
	}
	idx.m[k] = next
	return next, true
}

func (idx *fixedReverseIndex) find(key any) (uint32, bool) {
	id, ok := idx.m[key.(uint64)]
	return id, ok
}

type varReverseIndex struct {
	m map[string]uint32
}

func newVarReverseIndex() *varReverseIndex {
	return &varReverseIndex{m: make(map[string]uint32)}
}

func (idx *varReverseIndex) insert(key any, next uint32) (uint32, bool) {
	k := key.(string)
	if id, ok := idx.m[k]; ok {
		return id, false
	}
	idx.m[k] = next
	return next, true
}

func (idx *varReverseIndex) find(key any) (uint32, bool) {
	id, ok := idx.m[key.(string)]
	return id, ok
}
