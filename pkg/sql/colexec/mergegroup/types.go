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

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/config"
	"github.com/matrixorigin/distinctcount/pkg/logutil"
)

const (
	thisOperatorName = "merge_group"
)

// Merger reduces canonical partial bitmaps produced by several segments or
// nodes. Partial results handed to a Merger are consumed: they may be
// mutated and returned as part of the result.
type Merger struct {
	pool *ants.Pool
}

func NewMerger(workers int, opts ...ants.Option) (*Merger, error) {
	if workers <= 0 {
		return nil, moerr.NewInvalidInputNoCtx("%s workers %d", thisOperatorName, workers)
	}
	opts = append([]ants.Option{ants.WithPanicHandler(func(v interface{}) {
		logutil.Error("merge task panicked outside recovery", zap.Any("panic", v))
	})}, opts...)
	pool, err := ants.NewPool(workers, opts...)
	if err != nil {
		return nil, moerr.ConvertGoError(context.TODO(), err)
	}
	return &Merger{pool: pool}, nil
}

// NewMergerFromConfig sizes the pool from mergeWorkers.
func NewMergerFromConfig(params config.DistinctCountParameters) (*Merger, error) {
	return NewMerger(params.MergeWorkers)
}

func (m *Merger) Workers() int {
	return m.pool.Cap()
}

// Release stops the worker pool. The Merger must not be used afterwards.
func (m *Merger) Release() {
	m.pool.Release()
}
