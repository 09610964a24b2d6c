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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeProperties(t *testing.T) {
	tests := []struct {
		oid      T
		name     string
		size     int32
		isString bool
		fixed    bool
	}{
		{T_bool, "BOOL", 1, false, true},
		{T_int32, "INT", 4, false, true},
		{T_int64, "BIGINT", 8, false, true},
		{T_float32, "FLOAT", 4, false, true},
		{T_float64, "DOUBLE", 8, false, true},
		{T_varchar, "VARCHAR", -1, true, false},
		{T_varbinary, "VARBINARY", -1, true, false},
		{T_any, "ANY", 0, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.oid.OidString(), func(t *testing.T) {
			typ := tt.oid.ToType()
			require.Equal(t, tt.name, typ.String())
			require.Equal(t, tt.size, typ.Size)
			require.Equal(t, tt.isString, typ.IsString())
			require.Equal(t, tt.fixed, typ.IsFixedLen())
			require.True(t, typ.Eq(New(tt.oid)))
		})
	}
}

func TestUnknownType(t *testing.T) {
	require.Equal(t, "unexpected type: 99", T(99).String())
	require.Equal(t, "unknown_type", T(99).OidString())
}
