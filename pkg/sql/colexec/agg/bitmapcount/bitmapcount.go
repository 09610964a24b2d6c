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

// Package bitmapcount implements the exact distinct count aggregation over
// roaring bitmaps. A column block contributes either serialized bitmaps,
// dictionary ids or raw values; the partial results merge by union and the
// final result is the bitmap cardinality.
//
// An instance belongs to one query segment and one expression and must not
// be shared between goroutines.
package bitmapcount

import (
	"context"

	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/config"
	"github.com/matrixorigin/distinctcount/pkg/container/dict"
	"github.com/matrixorigin/distinctcount/pkg/container/nulls"
	"github.com/matrixorigin/distinctcount/pkg/container/types"
	"github.com/matrixorigin/distinctcount/pkg/container/vector"
	"github.com/matrixorigin/distinctcount/pkg/sql/colexec/agg"
	v2 "github.com/matrixorigin/distinctcount/pkg/util/metric/v2"
	"github.com/matrixorigin/distinctcount/pkg/vectorize/memberid"
)

const Name = "distinctcountbitmap"

var _ agg.Metadata = new(DistinctCountBitmap)

type DistinctCountBitmap struct {
	params config.DistinctCountParameters

	mode encodingMode
	// dict is the first dictionary seen, not owned.
	dict dict.Dictionary
}

func New(params config.DistinctCountParameters) *DistinctCountBitmap {
	return &DistinctCountBitmap{params: params}
}

func NewDefault() *DistinctCountBitmap {
	return New(config.NewDefaultParameters())
}

func (f *DistinctCountBitmap) Name() string {
	return Name
}

func (f *DistinctCountBitmap) IntermediateResultType() types.T {
	return types.T_varbinary
}

func (f *DistinctCountBitmap) FinalResultType() types.T {
	return types.T_int64
}

func (f *DistinctCountBitmap) IsIntermediateResultComparable() bool {
	return false
}

func (f *DistinctCountBitmap) CreateAggregationResultHolder() agg.ResultHolder[*roaring.Bitmap] {
	return agg.NewObjectResultHolder[*roaring.Bitmap]()
}

func (f *DistinctCountBitmap) CreateGroupByResultHolder(initialCapacity, maxCapacity int) agg.GroupByResultHolder[*roaring.Bitmap] {
	return agg.NewObjectGroupByResultHolder[*roaring.Bitmap](initialCapacity, maxCapacity)
}

// NewGroupByResultHolder sizes the holder from the configured capacities.
func (f *DistinctCountBitmap) NewGroupByResultHolder() agg.GroupByResultHolder[*roaring.Bitmap] {
	return f.CreateGroupByResultHolder(f.params.GroupByInitialCapacity, f.params.GroupByMaxCapacity)
}

// Aggregate accumulates the first length rows of vec into the global scope.
func (f *DistinctCountBitmap) Aggregate(ctx context.Context, length int, holder agg.ResultHolder[*roaring.Bitmap], vec *vector.Vector) error {
	if err := checkLength(ctx, length, vec); err != nil || length == 0 {
		return err
	}
	nsp := vec.GetNulls()

	if vec.GetType().Oid == types.T_varbinary {
		if err := f.enterMode(ctx, modeRaw, nil); err != nil {
			return err
		}
		v2.AggBitmapBytesRowsCounter.Add(float64(length))
		for i := 0; i < length; i++ {
			if nulls.Contains(nsp, uint64(i)) {
				continue
			}
			bm, err := DeserializeBitmap(ctx, vec.GetBytesAt(i))
			if err != nil {
				return err
			}
			unionBitmap(holder, bm)
		}
		return nil
	}

	members, err := f.members(ctx, length, vec)
	if err != nil {
		return err
	}
	addMembers(holder, members, nsp)
	return nil
}

// AggregateGroupBySV accumulates row i of vec into group groupKeys[i].
func (f *DistinctCountBitmap) AggregateGroupBySV(ctx context.Context, length int, groupKeys []int, holder agg.GroupByResultHolder[*roaring.Bitmap], vec *vector.Vector) error {
	if err := checkLength(ctx, length, vec); err != nil || length == 0 {
		return err
	}
	if length > len(groupKeys) {
		return moerr.NewInvalidInput(ctx, "length %d exceeds %d group keys", length, len(groupKeys))
	}
	keys := groupKeys[:length]
	largest, err := largestKey(ctx, keys, -1)
	if err != nil {
		return err
	}
	if err := ensureCapacity(ctx, holder, largest); err != nil {
		return err
	}
	nsp := vec.GetNulls()

	if vec.GetType().Oid == types.T_varbinary {
		if err := f.enterMode(ctx, modeRaw, nil); err != nil {
			return err
		}
		v2.AggBitmapBytesRowsCounter.Add(float64(length))
		for i, key := range keys {
			if nulls.Contains(nsp, uint64(i)) {
				continue
			}
			bm, err := DeserializeBitmap(ctx, vec.GetBytesAt(i))
			if err != nil {
				return err
			}
			unionGroupBitmap(holder, key, bm)
		}
		return nil
	}

	members, err := f.members(ctx, length, vec)
	if err != nil {
		return err
	}
	addGroupMembers(holder, keys, members, nsp)
	return nil
}

// AggregateGroupByMV accumulates row i of vec into every group of
// groupKeys[i].
func (f *DistinctCountBitmap) AggregateGroupByMV(ctx context.Context, length int, groupKeys [][]int, holder agg.GroupByResultHolder[*roaring.Bitmap], vec *vector.Vector) error {
	if err := checkLength(ctx, length, vec); err != nil || length == 0 {
		return err
	}
	if length > len(groupKeys) {
		return moerr.NewInvalidInput(ctx, "length %d exceeds %d group key lists", length, len(groupKeys))
	}
	keys := groupKeys[:length]
	largest := -1
	for _, ks := range keys {
		var err error
		if largest, err = largestKey(ctx, ks, largest); err != nil {
			return err
		}
	}
	if err := ensureCapacity(ctx, holder, largest); err != nil {
		return err
	}
	nsp := vec.GetNulls()

	if vec.GetType().Oid == types.T_varbinary {
		if err := f.enterMode(ctx, modeRaw, nil); err != nil {
			return err
		}
		v2.AggBitmapBytesRowsCounter.Add(float64(length))
		for i, ks := range keys {
			if nulls.Contains(nsp, uint64(i)) {
				continue
			}
			bm, err := DeserializeBitmap(ctx, vec.GetBytesAt(i))
			if err != nil {
				return err
			}
			unionGroupsBitmap(holder, ks, bm)
		}
		return nil
	}

	members, err := f.members(ctx, length, vec)
	if err != nil {
		return err
	}
	addGroupsMembers(holder, keys, members, nsp)
	return nil
}

// members returns the bitmap member of each of the first length rows:
// dictionary ids for a dictionary-encoded block, canonical members
// otherwise. Null rows get an arbitrary member the caller skips.
func (f *DistinctCountBitmap) members(ctx context.Context, length int, vec *vector.Vector) ([]uint32, error) {
	if vec.IsDict() {
		if err := f.enterMode(ctx, modeDictionary, vec.GetDictionary()); err != nil {
			return nil, err
		}
		v2.AggBitmapDictRowsCounter.Add(float64(length))
		return vector.MustDictIds(vec)[:length], nil
	}

	oid := vec.GetType().Oid
	if !memberid.Supported(oid) {
		return nil, moerr.NewUnsupportedValueKind(ctx, oid.String(), "column")
	}
	if err := f.enterMode(ctx, modeRaw, nil); err != nil {
		return nil, err
	}
	v2.AggBitmapRawRowsCounter.Add(float64(length))

	switch oid {
	case types.T_int32:
		return memberid.Int32s(vector.MustFixedCol[int32](vec)[:length]), nil
	case types.T_int64:
		return memberid.Int64s(vector.MustFixedCol[int64](vec)[:length], make([]uint32, length)), nil
	case types.T_float32:
		return memberid.Float32s(vector.MustFixedCol[float32](vec)[:length], make([]uint32, length)), nil
	case types.T_float64:
		return memberid.Float64s(vector.MustFixedCol[float64](vec)[:length], make([]uint32, length)), nil
	default:
		return memberid.Strings(vector.MustBytesCol(vec)[:length], make([]uint32, length)), nil
	}
}

func checkLength(ctx context.Context, length int, vec *vector.Vector) error {
	if length < 0 || length > vec.Length() {
		return moerr.NewInvalidInput(ctx, "length %d for a block of %d rows", length, vec.Length())
	}
	return nil
}

// largestKey returns the largest of keys and largest, rejecting negative keys.
func largestKey(ctx context.Context, keys []int, largest int) (int, error) {
	for _, k := range keys {
		if k < 0 {
			return 0, moerr.NewInvalidInput(ctx, "negative group key %d", k)
		}
		if k > largest {
			largest = k
		}
	}
	return largest, nil
}

func ensureCapacity(ctx context.Context, holder agg.GroupByResultHolder[*roaring.Bitmap], largest int) error {
	if largest < 0 {
		return nil
	}
	if largest >= holder.MaxCapacity() {
		return moerr.NewInvalidInput(ctx, "group key %d exceeds max capacity %d", largest, holder.MaxCapacity())
	}
	return holder.EnsureCapacity(largest + 1)
}
