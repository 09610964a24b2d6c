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
	"reflect"

	"go.uber.org/zap"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/config"
	"github.com/matrixorigin/distinctcount/pkg/container/dict"
	"github.com/matrixorigin/distinctcount/pkg/logutil/logutil2"
)

// encodingMode is the id space of the accumulated bitmaps. It is decided by
// the first non-empty block and never changes afterwards.
type encodingMode uint8

const (
	modeUninitialized encodingMode = iota
	// modeDictionary bitmaps hold dictionary ids of the captured dictionary.
	modeDictionary
	// modeRaw bitmaps hold canonical members, either encoded from values or
	// read from serialized bitmaps.
	modeRaw
)

func (m encodingMode) String() string {
	switch m {
	case modeUninitialized:
		return "uninitialized"
	case modeDictionary:
		return "dictionary"
	case modeRaw:
		return "raw"
	}
	return "unknown"
}

// enterMode records the mode of a contributing block. d is the block's
// dictionary in modeDictionary and nil otherwise.
func (f *DistinctCountBitmap) enterMode(ctx context.Context, mode encodingMode, d dict.Dictionary) error {
	if f.mode == modeUninitialized {
		f.mode = mode
		f.dict = d
		logutil2.Debug(ctx, "distinct count encoding mode decided",
			zap.String("mode", mode.String()))
		return nil
	}
	if f.mode == mode && (mode != modeDictionary || sameDictionary(f.dict, d)) {
		return nil
	}

	var reason string
	if f.mode != mode {
		reason = "block encoding " + mode.String() + " contradicts mode " + f.mode.String()
	} else {
		reason = "block dictionary differs from the captured dictionary"
	}
	if f.params.ModeConflict == config.ModeConflictIgnore {
		logutil2.Warn(ctx, "distinct count mode conflict ignored",
			zap.String("mode", f.mode.String()),
			zap.String("reason", reason))
		return nil
	}
	return moerr.NewInvalidState(ctx, "of distinct count aggregation: %s", reason)
}

// sameDictionary compares by identity. Dictionaries of a type that cannot
// be compared with == are compared by value.
func sameDictionary(a, b dict.Dictionary) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
