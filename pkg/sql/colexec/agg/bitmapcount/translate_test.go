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
package bitmapcount

import (
	"context"
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/container/dict/mock_dict"
	"github.com/matrixorigin/distinctcount/pkg/container/types"
	"github.com/matrixorigin/distinctcount/pkg/vectorize/memberid"
)

func TestTranslateDictIds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	d := mock_dict.NewMockDictionary(ctrl)
	d.EXPECT().GetType().Return(types.T_varchar.ToType()).AnyTimes()
	d.EXPECT().GetString(uint32(0)).Return("a").Times(1)
	d.EXPECT().GetString(uint32(1)).Return("b").Times(1)
	d.EXPECT().GetString(uint32(4)).Return("a").Times(1)

	ids := roaring.BitmapOf(0, 1, 4)
	out, err := TranslateDictIds(ctx, ids, d)
	require.NoError(t, err)
	require.True(t, out.Equals(roaring.BitmapOf(memberid.String("a"), memberid.String("b"))))
	require.True(t, ids.Equals(roaring.BitmapOf(0, 1, 4)))
}

func TestTranslateDictIdsNumeric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	tests := []struct {
		name   string
		setup  func(d *mock_dict.MockDictionary)
		expect *roaring.Bitmap
	}{
		{
			name: "int32",
			setup: func(d *mock_dict.MockDictionary) {
				d.EXPECT().GetType().Return(types.T_int32.ToType())
				d.EXPECT().GetInt32(uint32(2)).Return(int32(-1))
			},
			expect: roaring.BitmapOf(memberid.Int32(-1)),
		},
		{
			name: "int64",
			setup: func(d *mock_dict.MockDictionary) {
				d.EXPECT().GetType().Return(types.T_int64.ToType())
				d.EXPECT().GetInt64(uint32(2)).Return(int64(1) << 40)
			},
			expect: roaring.BitmapOf(1 << 8),
		},
		{
			name: "float32",
			setup: func(d *mock_dict.MockDictionary) {
				d.EXPECT().GetType().Return(types.T_float32.ToType())
				d.EXPECT().GetFloat32(uint32(2)).Return(float32(1.5))
			},
			expect: roaring.BitmapOf(memberid.Float32(1.5)),
		},
		{
			name: "float64",
			setup: func(d *mock_dict.MockDictionary) {
				d.EXPECT().GetType().Return(types.T_float64.ToType())
				d.EXPECT().GetFloat64(uint32(2)).Return(2.5)
			},
			expect: roaring.BitmapOf(memberid.Float64(2.5)),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mock_dict.NewMockDictionary(ctrl)
			tt.setup(d)
			out, err := TranslateDictIds(ctx, roaring.BitmapOf(2), d)
			require.NoError(t, err)
			require.True(t, tt.expect.Equals(out))
		})
	}
}

func TestTranslateDictIdsUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := mock_dict.NewMockDictionary(ctrl)
	d.EXPECT().GetType().Return(types.T_bool.ToType())
	_, err := TranslateDictIds(context.Background(), roaring.BitmapOf(0), d)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrUnsupportedValueKind))
}

func TestTranslateEmptyIds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := mock_dict.NewMockDictionary(ctrl)
	d.EXPECT().GetType().Return(types.T_int32.ToType())
	out, err := TranslateDictIds(context.Background(), roaring.New(), d)
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
}
