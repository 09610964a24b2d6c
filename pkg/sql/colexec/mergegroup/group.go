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

package mergegroup

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/RoaringBitmap/roaring"
	"go.uber.org/zap"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/logutil"
	"github.com/matrixorigin/distinctcount/pkg/logutil/logutil2"
	"github.com/matrixorigin/distinctcount/pkg/sql/colexec/agg/bitmapcount"
	v2 "github.com/matrixorigin/distinctcount/pkg/util/metric/v2"
)

// MergeAll tree-reduces parts pairwise, one level at a time, each pair on a
// pool worker. Nil parts are skipped. ctx is checked between levels.
func (m *Merger) MergeAll(ctx context.Context, parts []*roaring.Bitmap) (*roaring.Bitmap, error) {
	start := time.Now()
	level := make([]*roaring.Bitmap, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			level = append(level, p)
		}
	}
	if len(level) == 0 {
		return roaring.New(), nil
	}

	depth := 0
	for len(level) > 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := make([]*roaring.Bitmap, (len(level)+1)/2)
		tasks := make([]func() error, 0, len(level)/2)
		for i := 0; i+1 < len(level); i += 2 {
			a, b, slot := level[i], level[i+1], i/2
			tasks = append(tasks, func() error {
				next[slot] = bitmapcount.Merge(a, b)
				return nil
			})
		}
		if len(level)%2 == 1 {
			next[len(next)-1] = level[len(level)-1]
		}
		if err := m.run(ctx, tasks); err != nil {
			return nil, err
		}
		level = next
		depth++
	}

	logutil2.Debug(ctx, "bitmap partial results merged",
		zap.Int("parts", len(parts)),
		zap.Int("depth", depth),
		logutil.Since(start))
	return level[0], nil
}

// MergeGroups merges partial group-by results keyed by group key. Each key
// is reduced on a pool worker.
func (m *Merger) MergeGroups(ctx context.Context, parts []map[int]*roaring.Bitmap) (map[int]*roaring.Bitmap, error) {
	byKey := make(map[int][]*roaring.Bitmap)
	for _, part := range parts {
		for key, bm := range part {
			if bm != nil {
				byKey[key] = append(byKey[key], bm)
			}
		}
	}
	keys := make([]int, 0, len(byKey))
	for key := range byKey {
		keys = append(keys, key)
	}
	sort.Ints(keys)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := make([]*roaring.Bitmap, len(keys))
	tasks := make([]func() error, len(keys))
	for i, key := range keys {
		i, bms := i, byKey[key]
		tasks[i] = func() error {
			acc := bms[0]
			for _, bm := range bms[1:] {
				acc = bitmapcount.Merge(acc, bm)
			}
			results[i] = acc
			return nil
		}
	}
	if err := m.run(ctx, tasks); err != nil {
		return nil, err
	}

	out := make(map[int]*roaring.Bitmap, len(keys))
	for i, key := range keys {
		out[key] = results[i]
	}
	logutil2.Debug(ctx, "bitmap group results merged",
		zap.Int("parts", len(parts)),
		zap.Int("groups", len(out)))
	return out, nil
}

// MergeIntermediates decodes marshalled intermediate results on the pool and
// merges them.
func (m *Merger) MergeIntermediates(ctx context.Context, data [][]byte) (*roaring.Bitmap, error) {
	parts := make([]*roaring.Bitmap, len(data))
	tasks := make([]func() error, len(data))
	for i := range data {
		i := i
		tasks[i] = func() error {
			bm, err := bitmapcount.UnmarshalIntermediate(ctx, data[i])
			if err != nil {
				return err
			}
			parts[i] = bm
			return nil
		}
	}
	if err := m.run(ctx, tasks); err != nil {
		return nil, err
	}
	return m.MergeAll(ctx, parts)
}

// run executes tasks on the pool and waits for all of them. Panics inside a
// task are returned as errors. The first failing task's error is returned.
func (m *Merger) run(ctx context.Context, tasks []func() error) error {
	errs := make([]error, len(tasks))
	var wg sync.WaitGroup
	for i := range tasks {
		i := i
		wg.Add(1)
		err := m.pool.Submit(func() {
			defer wg.Done()
			v2.AggMergeTaskRunningGauge.Inc()
			defer v2.AggMergeTaskRunningGauge.Dec()
			defer func() {
				if e := recover(); e != nil {
					errs[i] = moerr.ConvertPanicError(ctx, e)
				}
			}()
			errs[i] = tasks[i]()
		})
		if err != nil {
			wg.Done()
			errs[i] = moerr.ConvertGoError(ctx, err)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			logutil2.Error(ctx, "merge task failed", zap.Error(err))
			return err
		}
	}
	return nil
}
