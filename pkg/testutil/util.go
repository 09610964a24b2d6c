// Copyright 2021 Matrix Origin
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

package testutil

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/distinctcount/pkg/container/dict"
	"github.com/matrixorigin/distinctcount/pkg/container/nulls"
	"github.com/matrixorigin/distinctcount/pkg/container/types"
	"github.com/matrixorigin/distinctcount/pkg/container/vector"
)

// NewVector returns n rows of typ holding 0..n-1, or random values.
func NewVector(n int, typ types.Type, random bool) *vector.Vector {
	switch typ.Oid {
	case types.T_bool:
		return newFixedVector(n, typ, random, func(v int) bool { return v%2 == 0 })
	case types.T_int32:
		return newFixedVector(n, typ, random, func(v int) int32 { return int32(v) })
	case types.T_int64:
		return newFixedVector(n, typ, random, func(v int) int64 { return int64(v) })
	case types.T_float32:
		return newFixedVector(n, typ, random, func(v int) float32 { return float32(v) })
	case types.T_float64:
		return newFixedVector(n, typ, random, func(v int) float64 { return float64(v) })
	case types.T_varchar:
		return NewStringVector(n, typ, random)
	case types.T_varbinary:
		return NewBitmapVector(n, random)
	default:
		panic(fmt.Errorf("unsupport vector's type '%v", typ))
	}
}

func newFixedVector[T types.Fixed](n int, typ types.Type, random bool, conv func(int) T) *vector.Vector {
	vec := vector.NewVec(typ)
	vs := make([]T, n)
	for i := range vs {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = conv(v)
	}
	if err := vector.AppendList(vec, vs, nil); err != nil {
		return nil
	}
	return vec
}

func NewStringVector(n int, typ types.Type, random bool) *vector.Vector {
	vec := vector.NewVec(typ)
	vs := make([]string, n)
	for i := range vs {
		v := i
		if random {
			v = rand.Int()
		}
		vs[i] = strconv.Itoa(v)
	}
	if err := vector.AppendStringList(vec, vs, nil); err != nil {
		return nil
	}
	return vec
}

// NewBitmapVector returns n serialized bitmaps, row i holding {i}.
func NewBitmapVector(n int, random bool) *vector.Vector {
	bms := make([]*roaring.Bitmap, n)
	for i := range bms {
		v := uint32(i)
		if random {
			v = rand.Uint32()
		}
		bms[i] = roaring.BitmapOf(v)
	}
	return MakeBitmapVector(bms, nil)
}

func MakeInt32Vector(values []int32, nsp []uint64) *vector.Vector {
	return makeFixedVector(types.T_int32.ToType(), values, nsp)
}

func MakeInt64Vector(values []int64, nsp []uint64) *vector.Vector {
	return makeFixedVector(types.T_int64.ToType(), values, nsp)
}

func MakeFloat32Vector(values []float32, nsp []uint64) *vector.Vector {
	return makeFixedVector(types.T_float32.ToType(), values, nsp)
}

func MakeFloat64Vector(values []float64, nsp []uint64) *vector.Vector {
	return makeFixedVector(types.T_float64.ToType(), values, nsp)
}

func MakeBoolVector(values []bool, nsp []uint64) *vector.Vector {
	return makeFixedVector(types.T_bool.ToType(), values, nsp)
}

func MakeVarcharVector(values []string, nsp []uint64) *vector.Vector {
	vec := vector.NewVec(types.T_varchar.ToType())
	if err := vector.AppendStringList(vec, values, nil); err != nil {
		panic(err)
	}
	setNulls(vec, nsp)
	return vec
}

// MakeBitmapVector serializes every bitmap into a varbinary row. A nil
// bitmap yields an empty row.
func MakeBitmapVector(bms []*roaring.Bitmap, nsp []uint64) *vector.Vector {
	vs := make([][]byte, len(bms))
	for i, bm := range bms {
		if bm == nil {
			continue
		}
		data, err := bm.ToBytes()
		if err != nil {
			panic(err)
		}
		vs[i] = data
	}
	return MakeVarbinaryVector(vs, nsp)
}

func MakeVarbinaryVector(values [][]byte, nsp []uint64) *vector.Vector {
	vec := vector.NewVec(types.T_varbinary.ToType())
	if err := vector.AppendBytesList(vec, values, nil); err != nil {
		panic(err)
	}
	setNulls(vec, nsp)
	return vec
}

// MakeDictVector builds a dictionary from values, id i holding values[i],
// and a block of ids over it.
func MakeDictVector(typ types.Type, values any, ids []uint32, nsp []uint64) (*vector.Vector, *dict.Dict) {
	d, err := dict.NewWithValues(typ, values)
	if err != nil {
		panic(err)
	}
	vec := vector.NewDictVec(d, ids)
	setNulls(vec, nsp)
	return vec, d
}

func makeFixedVector[T types.Fixed](typ types.Type, values []T, nsp []uint64) *vector.Vector {
	vec := vector.NewVec(typ)
	if err := vector.AppendList(vec, values, nil); err != nil {
		panic(err)
	}
	setNulls(vec, nsp)
	return vec
}

func setNulls(vec *vector.Vector, nsp []uint64) {
	if len(nsp) > 0 {
		vec.SetNulls(nulls.Build(nsp...))
	}
}
