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

package types

import (
	"fmt"
)

// T is the value kind of a column or dictionary.
type T uint8

const (
	T_any  T = 0
	T_bool T = 10

	T_int32 T = 22
	T_int64 T = 23

	T_float32 T = 30
	T_float64 T = 31

	T_varchar   T = 61
	T_varbinary T = 62
)

type Type struct {
	Oid T

	// Size is the fixed width in bytes, zero for variable length kinds.
	Size int32
}

// Fixed are the value types stored in fixed-width columns.
type Fixed interface {
	bool | int32 | int64 | float32 | float64
}

func New(oid T) Type {
	return Type{Oid: oid, Size: int32(oid.TypeLen())}
}

func (t T) ToType() Type {
	return New(t)
}

func (t Type) String() string {
	return t.Oid.String()
}

func (t Type) Eq(b Type) bool {
	return t.Oid == b.Oid
}

// IsString reports whether values of the type are stored as variable length bytes.
func (t Type) IsString() bool {
	return t.Oid == T_varchar || t.Oid == T_varbinary
}

func (t Type) IsFixedLen() bool {
	return !t.IsString() && t.Oid != T_any
}

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_bool:
		return "BOOL"
	case T_int32:
		return "INT"
	case T_int64:
		return "BIGINT"
	case T_float32:
		return "FLOAT"
	case T_float64:
		return "DOUBLE"
	case T_varchar:
		return "VARCHAR"
	case T_varbinary:
		return "VARBINARY"
	}
	return fmt.Sprintf("unexpected type: %d", t)
}

// OidString returns the Go-side name of the kind.
func (t T) OidString() string {
	switch t {
	case T_any:
		return "T_any"
	case T_bool:
		return "T_bool"
	case T_int32:
		return "T_int32"
	case T_int64:
		return "T_int64"
	case T_float32:
		return "T_float32"
	case T_float64:
		return "T_float64"
	case T_varchar:
		return "T_varchar"
	case T_varbinary:
		return "T_varbinary"
	}
	return "unknown_type"
}

// TypeLen returns the width in bytes, or -1 for variable length kinds.
func (t T) TypeLen() int {
	switch t {
	case T_bool:
		return 1
	case T_int32, T_float32:
		return 4
	case T_int64, T_float64:
		return 8
	case T_any:
		return 0
	}
	return -1
}
