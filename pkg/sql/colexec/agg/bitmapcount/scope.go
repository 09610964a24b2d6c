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
	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/distinctcount/pkg/container/nulls"
	"github.com/matrixorigin/distinctcount/pkg/sql/colexec/agg"
)

func getBitmap(holder agg.ResultHolder[*roaring.Bitmap]) *roaring.Bitmap {
	bm := holder.GetResult()
	if bm == nil {
		bm = roaring.New()
		holder.SetValue(bm)
	}
	return bm
}

func getGroupBitmap(holder agg.GroupByResultHolder[*roaring.Bitmap], key int) *roaring.Bitmap {
	bm := holder.GetResult(key)
	if bm == nil {
		bm = roaring.New()
		holder.SetValueForKey(key, bm)
	}
	return bm
}

// unionBitmap takes ownership of bm.
func unionBitmap(holder agg.ResultHolder[*roaring.Bitmap], bm *roaring.Bitmap) {
	if cur := holder.GetResult(); cur != nil {
		cur.Or(bm)
		return
	}
	holder.SetValue(bm)
}

// unionGroupBitmap takes ownership of bm.
func unionGroupBitmap(holder agg.GroupByResultHolder[*roaring.Bitmap], key int, bm *roaring.Bitmap) {
	if cur := holder.GetResult(key); cur != nil {
		cur.Or(bm)
		return
	}
	holder.SetValueForKey(key, bm)
}

// unionGroupsBitmap unions bm into every key. Only the first empty slot
// adopts bm itself, later empty slots get their own clone so no two keys
// share a bitmap.
func unionGroupsBitmap(holder agg.GroupByResultHolder[*roaring.Bitmap], keys []int, bm *roaring.Bitmap) {
	adopted := false
	for _, key := range keys {
		cur := holder.GetResult(key)
		switch {
		case cur == bm:
			// key repeated in the list
		case cur != nil:
			cur.Or(bm)
		case !adopted:
			holder.SetValueForKey(key, bm)
			adopted = true
		default:
			holder.SetValueForKey(key, bm.Clone())
		}
	}
}

// addMembers inserts members[i] for every non-null row.
func addMembers(holder agg.ResultHolder[*roaring.Bitmap], members []uint32, nsp *nulls.Nulls) {
	bm := getBitmap(holder)
	if !nulls.Any(nsp) {
		bm.AddMany(members)
		return
	}
	for i, m := range members {
		if nulls.Contains(nsp, uint64(i)) {
			continue
		}
		bm.Add(m)
	}
}

func addGroupMembers(holder agg.GroupByResultHolder[*roaring.Bitmap], keys []int, members []uint32, nsp *nulls.Nulls) {
	hasNull := nulls.Any(nsp)
	for i, m := range members {
		if hasNull && nulls.Contains(nsp, uint64(i)) {
			continue
		}
		getGroupBitmap(holder, keys[i]).Add(m)
	}
}

func addGroupsMembers(holder agg.GroupByResultHolder[*roaring.Bitmap], keys [][]int, members []uint32, nsp *nulls.Nulls) {
	hasNull := nulls.Any(nsp)
	for i, m := range members {
		if hasNull && nulls.Contains(nsp, uint64(i)) {
			continue
		}
		for _, key := range keys[i] {
			getGroupBitmap(holder, key).Add(m)
		}
	}
}
