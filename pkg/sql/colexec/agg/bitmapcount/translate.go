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
	"time"

	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/container/dict"
	"github.com/matrixorigin/distinctcount/pkg/container/types"
	"github.com/matrixorigin/distinctcount/pkg/vectorize/memberid"
	v2 "github.com/matrixorigin/distinctcount/pkg/util/metric/v2"
)

// TranslateDictIds returns a new bitmap holding the member of every
// dictionary value whose id is in ids. ids is left untouched.
func TranslateDictIds(ctx context.Context, ids *roaring.Bitmap, d dict.Dictionary) (*roaring.Bitmap, error) {
	start := time.Now()
	defer func() {
		v2.AggBitmapTranslateDurationHistogram.Observe(time.Since(start).Seconds())
	}()

	var member func(id uint32) uint32
	switch oid := d.GetType().Oid; oid {
	case types.T_int32:
		member = func(id uint32) uint32 { return memberid.Int32(d.GetInt32(id)) }
	case types.T_int64:
		member = func(id uint32) uint32 { return memberid.Int64(d.GetInt64(id)) }
	case types.T_float32:
		member = func(id uint32) uint32 { return memberid.Float32(d.GetFloat32(id)) }
	case types.T_float64:
		member = func(id uint32) uint32 { return memberid.Float64(d.GetFloat64(id)) }
	case types.T_varchar:
		member = func(id uint32) uint32 { return memberid.String(d.GetString(id)) }
	default:
		return nil, moerr.NewUnsupportedValueKind(ctx, oid.String(), "dictionary")
	}

	out := roaring.New()
	it := ids.Iterator()
	for it.HasNext() {
		out.Add(member(it.Next()))
	}
	return out, nil
}
