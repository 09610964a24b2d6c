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
	"context"
	"math"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/container/types"
)

var _ Dictionary = new(Dict)

// Dict is an in-memory dictionary. Fixed-length values are kept as uint64
// bit patterns and variable-length values as bytes.
type Dict struct {
	typ types.Type
	idx reverseIndex

	fixedData []uint64
	varData   [][]byte
}

func New(typ types.Type) (*Dict, error) {
	d := &Dict{typ: typ}
	switch typ.Oid {
	case types.T_bool, types.T_int32, types.T_int64, types.T_float32, types.T_float64:
		d.idx = newFixedReverseIndex()
	case types.T_varchar, types.T_varbinary:
		d.idx = newVarReverseIndex()
	default:
		return nil, moerr.NewNotSupported(context.TODO(), "dictionary of type %s", typ)
	}
	return d, nil
}

// NewWithValues builds a dictionary whose id i maps to the i-th element of
// values. Equal values are not collapsed, so two ids may share a value.
func NewWithValues(typ types.Type, values any) (*Dict, error) {
	d, err := New(typ)
	if err != nil {
		return nil, err
	}
	if d.fixed() {
		ks, err := d.encodeFixedData(values)
		if err != nil {
			return nil, err
		}
		for i, k := range ks {
			d.idx.insert(k, uint32(i))
		}
		d.fixedData = ks
	} else {
		ks, err := d.encodeVarData(values)
		if err != nil {
			return nil, err
		}
		for i, k := range ks {
			d.idx.insert(string(k), uint32(i))
		}
		d.varData = ks
	}
	return d, nil
}

// InsertBatch returns the id of every value, assigning new ids to values
// not seen before.
func (d *Dict) InsertBatch(values any) ([]uint32, error) {
	if d.fixed() {
		ks, err := d.encodeFixedData(values)
		if err != nil {
			return nil, err
		}
		ids := make([]uint32, len(ks))
		for i, k := range ks {
			id, added := d.idx.insert(k, uint32(len(d.fixedData)))
			if added {
				d.fixedData = append(d.fixedData, k)
			}
			ids[i] = id
		}
		return ids, nil
	}

	ks, err := d.encodeVarData(values)
	if err != nil {
		return nil, err
	}
	ids := make([]uint32, len(ks))
	for i, k := range ks {
		id, added := d.idx.insert(string(k), uint32(len(d.varData)))
		if added {
			d.varData = append(d.varData, k)
		}
		ids[i] = id
	}
	return ids, nil
}

// Find returns the id of a single value.
func (d *Dict) Find(value any) (uint32, bool) {
	if d.fixed() {
		ks, err := d.encodeFixedData(value)
		if err != nil || len(ks) != 1 {
			return 0, false
		}
		return d.idx.find(ks[0])
	}
	ks, err := d.encodeVarData(value)
	if err != nil || len(ks) != 1 {
		return 0, false
	}
	return d.idx.find(string(ks[0]))
}

func (d *Dict) GetType() types.Type {
	return d.typ
}

func (d *Dict) Length() int {
	if d.fixed() {
		return len(d.fixedData)
	}
	return len(d.varData)
}

func (d *Dict) Cardinality() uint64 {
	return uint64(d.Length())
}

func (d *Dict) GetBool(id uint32) bool {
	return d.fixedData[id] == 1
}

func (d *Dict) GetInt32(id uint32) int32 {
	return int32(d.fixedData[id])
}

func (d *Dict) GetInt64(id uint32) int64 {
	return int64(d.fixedData[id])
}

func (d *Dict) GetFloat32(id uint32) float32 {
	return math.Float32frombits(uint32(d.fixedData[id]))
}

func (d *Dict) GetFloat64(id uint32) float64 {
	return math.Float64frombits(d.fixedData[id])
}

func (d *Dict) GetString(id uint32) string {
	return string(d.varData[id])
}

func (d *Dict) GetBytes(id uint32) []byte {
	return d.varData[id]
}

func (d *Dict) fixed() bool { return !d.typ.IsString() }

// encodeFixedData accepts either a slice or a single value of the
// dictionary's kind.
func (d *Dict) encodeFixedData(values any) ([]uint64, error) {
	switch d.typ.Oid {
	case types.T_bool:
		col, err := asSlice[bool](values)
		if err != nil {
			return nil, err
		}
		us := make([]uint64, len(col))
		for i, v := range col {
			if v {
				us[i] = 1
			}
		}
		return us, nil
	case types.T_int32:
		col, err := asSlice[int32](values)
		if err != nil {
			return nil, err
		}
		us := make([]uint64, len(col))
		for i, v := range col {
			us[i] = uint64(v)
		}
		return us, nil
	case types.T_int64:
		col, err := asSlice[int64](values)
		if err != nil {
			return nil, err
		}
		us := make([]uint64, len(col))
		for i, v := range col {
			us[i] = uint64(v)
		}
		return us, nil
	case types.T_float32:
		col, err := asSlice[float32](values)
		if err != nil {
			return nil, err
		}
		us := make([]uint64, len(col))
		for i, v := range col {
			us[i] = uint64(math.Float32bits(v))
		}
		return us, nil
	case types.T_float64:
		col, err := asSlice[float64](values)
		if err != nil {
			return nil, err
		}
		us := make([]uint64, len(col))
		for i, v := range col {
			us[i] = math.Float64bits(v)
		}
		return us, nil
	}
	return nil, moerr.NewNotSupported(context.TODO(), "dictionary of type %s", d.typ)
}

func (d *Dict) encodeVarData(values any) ([][]byte, error) {
	switch vs := values.(type) {
	case [][]byte:
		return vs, nil
	case []byte:
		return [][]byte{vs}, nil
	case []string:
		ks := make([][]byte, len(vs))
		for i, v := range vs {
			ks[i] = []byte(v)
		}
		return ks, nil
	case string:
		return [][]byte{[]byte(vs)}, nil
	}
	return nil, moerr.NewInvalidInput(context.TODO(), "values %T for %s dictionary", values, d.typ)
}

func asSlice[T types.Fixed](values any) ([]T, error) {
	switch vs := values.(type) {
	case []T:
		return vs, nil
	case T:
		return []T{vs}, nil
	}
	var zero T
	return nil, moerr.NewInvalidInput(context.TODO(), "values %T, expected %T", values, zero)
}
