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
	. "github.com/smartystreets/goconvey/convey"

	"github.com/matrixorigin/distinctcount/pkg/container/types"
	"github.com/matrixorigin/distinctcount/pkg/testutil"
)

func TestDistinctCountPipeline(t *testing.T) {
	ctx := context.Background()

	Convey("Given two segments aggregating the same column", t, func() {
		first, second := NewDefault(), NewDefault()
		h1, h2 := first.CreateAggregationResultHolder(), second.CreateAggregationResultHolder()

		Convey("When one segment is dictionary encoded and the other is not", func() {
			vec, _ := testutil.MakeDictVector(types.T_varchar.ToType(),
				[]string{"apple", "pear", "plum"}, []uint32{0, 1, 1, 2}, nil)
			So(first.Aggregate(ctx, 4, h1, vec), ShouldBeNil)
			So(second.Aggregate(ctx, 3, h2,
				testutil.MakeVarcharVector([]string{"plum", "fig", "apple"}, nil)), ShouldBeNil)

			Convey("Then the merged canonical bitmaps count every value once", func() {
				a, err := first.ExtractAggregationResult(ctx, h1)
				So(err, ShouldBeNil)
				b, err := second.ExtractAggregationResult(ctx, h2)
				So(err, ShouldBeNil)
				So(first.ExtractFinalResult(Merge(a, b)), ShouldEqual, 4)
			})
		})

		Convey("When intermediate results travel as bytes", func() {
			So(first.Aggregate(ctx, 3, h1, testutil.MakeInt64Vector([]int64{1, 2, 3}, nil)), ShouldBeNil)
			bm, err := first.ExtractAggregationResult(ctx, h1)
			So(err, ShouldBeNil)
			data, err := SerializeBitmap(bm)
			So(err, ShouldBeNil)

			Convey("Then a downstream stage unions them as a byte column", func() {
				blobs := testutil.MakeVarbinaryVector([][]byte{data, data}, nil)
				So(second.Aggregate(ctx, 2, h2, blobs), ShouldBeNil)
				So(second.Aggregate(ctx, 1, h2,
					testutil.MakeBitmapVector([]*roaring.Bitmap{roaring.BitmapOf(99)}, nil)), ShouldBeNil)
				n, err := second.ExtractFinal(ctx, h2)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 4)
			})
		})
	})

	Convey("Given a group by over sequential values", t, func() {
		f := NewDefault()
		holder := f.NewGroupByResultHolder()
		vec := testutil.NewVector(64, types.T_int32.ToType(), false)
		keys := make([]int, 64)
		for i := range keys {
			keys[i] = i % 4
		}

		So(f.AggregateGroupBySV(ctx, 64, keys, holder, vec), ShouldBeNil)

		Convey("Then every group sees its share of the distinct values", func() {
			for key := 0; key < 4; key++ {
				n, err := f.ExtractFinalGroupBy(ctx, holder, key)
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 16)
			}
		})
	})
}
