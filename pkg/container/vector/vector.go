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

package vector

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/container/dict"
	"github.com/matrixorigin/distinctcount/pkg/container/nulls"
	"github.com/matrixorigin/distinctcount/pkg/container/types"
)

const (
	FLAT = iota // flat vector represent a uncompressed vector
	DIST        // dictionary vector
)

// Vector represent a column block
type Vector struct {
	// vector's class
	class int
	// type represent the type of column
	typ types.Type
	nsp *nulls.Nulls // nulls list

	// typed slice of fixed length elements, [][]byte for varlen
	col any

	// dictionary ids and the dictionary resolving them, DIST only
	ids  []uint32
	dict dict.Dictionary

	length int
}

func NewVec(typ types.Type) *Vector {
	vec := &Vector{
		typ:   typ,
		class: FLAT,
		nsp:   &nulls.Nulls{},
	}
	switch typ.Oid {
	case types.T_bool:
		vec.col = make([]bool, 0)
	case types.T_int32:
		vec.col = make([]int32, 0)
	case types.T_int64:
		vec.col = make([]int64, 0)
	case types.T_float32:
		vec.col = make([]float32, 0)
	case types.T_float64:
		vec.col = make([]float64, 0)
	case types.T_varchar, types.T_varbinary:
		vec.col = make([][]byte, 0)
	}
	return vec
}

// NewDictVec wraps dictionary ids. The value kind of the block is the
// dictionary's kind.
func NewDictVec(d dict.Dictionary, ids []uint32) *Vector {
	return &Vector{
		class:  DIST,
		typ:    d.GetType(),
		nsp:    &nulls.Nulls{},
		ids:    ids,
		dict:   d,
		length: len(ids),
	}
}

func (v *Vector) Length() int {
	return v.length
}

func (v *Vector) GetType() *types.Type {
	return &v.typ
}

func (v *Vector) GetNulls() *nulls.Nulls {
	return v.nsp
}

func (v *Vector) SetNulls(nsp *nulls.Nulls) {
	v.nsp = nsp
}

func (v *Vector) IsDict() bool {
	return v.class == DIST
}

// GetDictionary returns nil unless the vector is dictionary-encoded.
func (v *Vector) GetDictionary() dict.Dictionary {
	return v.dict
}

func (v *Vector) GetBytesAt(i int) []byte {
	if v.class == DIST {
		return v.dict.GetBytes(v.ids[i])
	}
	return v.col.([][]byte)[i]
}

func (v *Vector) GetStringAt(i int) string {
	return string(v.GetBytesAt(i))
}

func MustDictIds(v *Vector) []uint32 {
	if v.class != DIST {
		panic(moerr.NewInternalError(context.TODO(), "vector of type %s is not dictionary-encoded", v.typ))
	}
	return v.ids
}

func MustFixedCol[T types.Fixed](v *Vector) []T {
	if v.class == DIST {
		panic(moerr.NewInternalError(context.TODO(), "fixed col of dictionary-encoded vector"))
	}
	return v.col.([]T)
}

// MustBytesCol returns the varlen values, resolving dictionary ids when the
// vector is dictionary-encoded.
func MustBytesCol(v *Vector) [][]byte {
	if v.class == DIST {
		bs := make([][]byte, len(v.ids))
		for i, id := range v.ids {
			bs[i] = v.dict.GetBytes(id)
		}
		return bs
	}
	return v.col.([][]byte)
}

func MustStrCol(v *Vector) []string {
	bs := MustBytesCol(v)
	ss := make([]string, len(bs))
	for i, b := range bs {
		ss[i] = string(b)
	}
	return ss
}

func AppendList[T types.Fixed](v *Vector, ws []T, isNulls []bool) error {
	if v.class == DIST {
		return moerr.NewInternalError(context.TODO(), "append to dictionary-encoded vector")
	}
	col, ok := v.col.([]T)
	if !ok {
		var zero T
		return moerr.NewInvalidInput(context.TODO(), "append %T to %s vector", zero, v.typ)
	}
	v.markNulls(len(ws), isNulls)
	v.col = append(col, ws...)
	v.length += len(ws)
	return nil
}

func AppendBytesList(v *Vector, ws [][]byte, isNulls []bool) error {
	if v.class == DIST {
		return moerr.NewInternalError(context.TODO(), "append to dictionary-encoded vector")
	}
	col, ok := v.col.([][]byte)
	if !ok {
		return moerr.NewInvalidInput(context.TODO(), "append bytes to %s vector", v.typ)
	}
	v.markNulls(len(ws), isNulls)
	v.col = append(col, ws...)
	v.length += len(ws)
	return nil
}

func AppendStringList(v *Vector, ws []string, isNulls []bool) error {
	bs := make([][]byte, len(ws))
	for i, w := range ws {
		bs[i] = []byte(w)
	}
	return AppendBytesList(v, bs, isNulls)
}

func (v *Vector) markNulls(n int, isNulls []bool) {
	for i := 0; i < n && i < len(isNulls); i++ {
		if isNulls[i] {
			nulls.Add(v.nsp, uint64(v.length+i))
		}
	}
}

func (v *Vector) String() string {
	if v.class == DIST {
		return fmt.Sprintf("dict%v", v.ids)
	}
	switch col := v.col.(type) {
	case [][]byte:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, b := range col {
			if i > 0 {
				buf.WriteByte(' ')
			}
			if nulls.Contains(v.nsp, uint64(i)) {
				buf.WriteString("null")
				continue
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.String()
	default:
		return fmt.Sprintf("%v-%s", col, nulls.String(v.nsp))
	}
}
