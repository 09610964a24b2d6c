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

	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/distinctcount/pkg/sql/colexec/agg"
	v2 "github.com/matrixorigin/distinctcount/pkg/util/metric/v2"
)

// Merge unions b into a and returns a. A nil operand yields the other one.
// Both operands must be in the same id space, which after extraction is
// always the canonical one.
func Merge(a, b *roaring.Bitmap) *roaring.Bitmap {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	v2.AggBitmapMergeCounter.Inc()
	a.Or(b)
	return a
}

func (f *DistinctCountBitmap) Merge(a, b *roaring.Bitmap) *roaring.Bitmap {
	return Merge(a, b)
}

// ExtractAggregationResult returns the canonical bitmap of the global scope.
// In dictionary mode the result is a fresh bitmap and the scope is unchanged.
func (f *DistinctCountBitmap) ExtractAggregationResult(ctx context.Context, holder agg.ResultHolder[*roaring.Bitmap]) (*roaring.Bitmap, error) {
	return f.extract(ctx, holder.GetResult())
}

func (f *DistinctCountBitmap) ExtractGroupByResult(ctx context.Context, holder agg.GroupByResultHolder[*roaring.Bitmap], key int) (*roaring.Bitmap, error) {
	return f.extract(ctx, holder.GetResult(key))
}

func (f *DistinctCountBitmap) extract(ctx context.Context, bm *roaring.Bitmap) (*roaring.Bitmap, error) {
	if bm == nil {
		return roaring.New(), nil
	}
	if f.mode == modeDictionary && f.dict != nil {
		return TranslateDictIds(ctx, bm, f.dict)
	}
	return bm, nil
}

// ExtractFinalResult is the number of distinct members.
func (f *DistinctCountBitmap) ExtractFinalResult(bm *roaring.Bitmap) int64 {
	if bm == nil {
		return 0
	}
	return int64(bm.GetCardinality())
}

func (f *DistinctCountBitmap) ExtractFinal(ctx context.Context, holder agg.ResultHolder[*roaring.Bitmap]) (int64, error) {
	bm, err := f.ExtractAggregationResult(ctx, holder)
	if err != nil {
		return 0, err
	}
	return f.ExtractFinalResult(bm), nil
}

func (f *DistinctCountBitmap) ExtractFinalGroupBy(ctx context.Context, holder agg.GroupByResultHolder[*roaring.Bitmap], key int) (int64, error) {
	bm, err := f.ExtractGroupByResult(ctx, holder, key)
	if err != nil {
		return 0, err
	}
	return f.ExtractFinalResult(bm), nil
}

// MarshalIntermediate frames bm honouring the compressIntermediate setting.
func (f *DistinctCountBitmap) MarshalIntermediate(bm *roaring.Bitmap) ([]byte, error) {
	return MarshalIntermediate(bm, f.params.CompressIntermediate)
}
