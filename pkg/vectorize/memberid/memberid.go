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

// Package memberid maps column values to the 32-bit members stored in
// distinct-count bitmaps. Equal values of one kind always map to the same
// member; distinct values may collide.
package memberid

import (
	"context"
	"math"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/container/types"
)

func Int32(v int32) uint32 {
	return uint32(v)
}

// Int64 folds the high word into the low word.
func Int64(v int64) uint32 {
	u := uint64(v)
	return uint32(u ^ (u >> 32))
}

func Float32(v float32) uint32 {
	return math.Float32bits(v)
}

func Float64(v float64) uint32 {
	return Int64(int64(math.Float64bits(v)))
}

func String(v string) uint32 {
	return Int64(int64(xxhash.Sum64String(v)))
}

// Bytes is String over a byte slice without the conversion.
func Bytes(v []byte) uint32 {
	return Int64(int64(xxhash.Sum64(v)))
}

// Int32s reinterprets xs in place. The result aliases xs.
func Int32s(xs []int32) []uint32 {
	if len(xs) == 0 {
		return nil
	}
	return unsafe.Slice((*uint32)(unsafe.Pointer(&xs[0])), len(xs))
}

func Int64s(xs []int64, rs []uint32) []uint32 {
	for i, x := range xs {
		rs[i] = Int64(x)
	}
	return rs
}

func Float32s(xs []float32, rs []uint32) []uint32 {
	for i, x := range xs {
		rs[i] = Float32(x)
	}
	return rs
}

func Float64s(xs []float64, rs []uint32) []uint32 {
	for i, x := range xs {
		rs[i] = Float64(x)
	}
	return rs
}

func Strings(xs [][]byte, rs []uint32) []uint32 {
	for i, x := range xs {
		rs[i] = Bytes(x)
	}
	return rs
}

// Encode maps a single value of kind oid. v must hold the Go type of the
// kind: int32, int64, float32, float64, or string/[]byte for T_varchar.
func Encode(ctx context.Context, oid types.T, v any) (uint32, error) {
	switch oid {
	case types.T_int32:
		if x, ok := v.(int32); ok {
			return Int32(x), nil
		}
	case types.T_int64:
		if x, ok := v.(int64); ok {
			return Int64(x), nil
		}
	case types.T_float32:
		if x, ok := v.(float32); ok {
			return Float32(x), nil
		}
	case types.T_float64:
		if x, ok := v.(float64); ok {
			return Float64(x), nil
		}
	case types.T_varchar:
		switch x := v.(type) {
		case string:
			return String(x), nil
		case []byte:
			return Bytes(x), nil
		}
	default:
		return 0, moerr.NewUnsupportedValueKind(ctx, oid.String(), "member encoding")
	}
	return 0, moerr.NewInvalidInput(ctx, "value %T for kind %s", v, oid)
}

// Supported reports whether values of kind oid have a member encoding.
func Supported(oid types.T) bool {
	switch oid {
	case types.T_int32, types.T_int64, types.T_float32, types.T_float64, types.T_varchar:
		return true
	}
	return false
}
