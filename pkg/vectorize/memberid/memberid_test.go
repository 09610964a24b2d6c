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

package memberid

import (
	"context"
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/container/types"
)

func TestFixedEncoding(t *testing.T) {
	require.Equal(t, uint32(5), Int32(5))
	require.Equal(t, uint32(math.MaxUint32), Int32(-1))

	require.Equal(t, uint32(7), Int64(7))
	require.Equal(t, uint32(1), Int64(1<<32))
	require.Equal(t, uint32(0), Int64(-1))

	require.Equal(t, math.Float32bits(1.5), Float32(1.5))
	b := math.Float64bits(2.5)
	require.Equal(t, uint32(b^(b>>32)), Float64(2.5))
}

func TestSignedZeroAndNaN(t *testing.T) {
	negZero32 := float32(math.Copysign(0, -1))
	require.NotEqual(t, Float32(0), Float32(negZero32))
	require.NotEqual(t, Float64(0), Float64(math.Copysign(0, -1)))

	nan := math.NaN()
	require.Equal(t, Float64(nan), Float64(nan))
	nan32 := float32(nan)
	require.Equal(t, Float32(nan32), Float32(nan32))
}

func TestStringEncoding(t *testing.T) {
	h := xxhash.Sum64String("")
	require.Equal(t, uint32(h^(h>>32)), String(""))
	require.Equal(t, String("abc"), String("abc"))
	require.Equal(t, String("abc"), Bytes([]byte("abc")))
	require.NotEqual(t, String("a"), String("b"))
}

func TestBulk(t *testing.T) {
	xs := []int32{-3, 0, 9}
	us := Int32s(xs)
	require.Equal(t, []uint32{uint32(math.MaxUint32 - 2), 0, 9}, us)
	require.Nil(t, Int32s(nil))

	rs := make([]uint32, 2)
	require.Equal(t, []uint32{Int64(1), Int64(-5)}, Int64s([]int64{1, -5}, rs))
	require.Equal(t, []uint32{Float32(1), Float32(2)}, Float32s([]float32{1, 2}, rs))
	require.Equal(t, []uint32{Float64(1), Float64(2)}, Float64s([]float64{1, 2}, rs))
	require.Equal(t, []uint32{String("x"), String("")}, Strings([][]byte{[]byte("x"), nil}, rs))
}

func TestEncode(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		oid  types.T
		v    any
		want uint32
	}{
		{types.T_int32, int32(4), Int32(4)},
		{types.T_int64, int64(-4), Int64(-4)},
		{types.T_float32, float32(0.5), Float32(0.5)},
		{types.T_float64, 0.25, Float64(0.25)},
		{types.T_varchar, "hello", String("hello")},
		{types.T_varchar, []byte("hello"), String("hello")},
	}
	for _, tt := range tests {
		t.Run(tt.oid.OidString(), func(t *testing.T) {
			got, err := Encode(ctx, tt.oid, tt.v)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, Supported(tt.oid))
		})
	}

	_, err := Encode(ctx, types.T_bool, true)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrUnsupportedValueKind))
	require.False(t, Supported(types.T_bool))
	require.False(t, Supported(types.T_varbinary))

	_, err = Encode(ctx, types.T_int32, int64(1))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}
