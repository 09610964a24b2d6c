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
	"github.com/matrixorigin/distinctcount/pkg/container/types"
)

// ResultHolder keeps the single intermediate result of a global aggregation.
type ResultHolder[T any] interface {
	// GetResult returns the zero value of T until a value is set.
	GetResult() T
	SetValue(v T)
}

// GroupByResultHolder keeps one intermediate result per group key. Group
// keys are dense non-negative ints.
type GroupByResultHolder[T any] interface {
	// GetResult returns the zero value of T for a key that was never set.
	GetResult(key int) T
	SetValueForKey(key int, v T)

	// EnsureCapacity grows the holder so that keys below n are valid. It
	// fails when n exceeds the declared maximum.
	EnsureCapacity(n int) error

	Capacity() int
	MaxCapacity() int
}

// Metadata describes the types an aggregation function produces.
type Metadata interface {
	// Name is the lower-case function name.
	Name() string

	// IntermediateResultType is the type of the partial results exchanged
	// between stages.
	IntermediateResultType() types.T

	// FinalResultType is the type of the value returned to the user.
	FinalResultType() types.T

	// IsIntermediateResultComparable reports whether two partial results can
	// be ordered.
	IsIntermediateResultComparable() bool
}
