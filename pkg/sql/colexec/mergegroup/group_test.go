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
package mergegroup

import (
	"context"
	"testing"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/lni/goutils/leaktest"
	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/config"
	"github.com/matrixorigin/distinctcount/pkg/sql/colexec/agg/bitmapcount"
)

func TestMain(m *testing.M) {
	// stop the purge goroutine of the package default pool
	ants.Release()
	m.Run()
}

func newTestMerger(t *testing.T, workers int) *Merger {
	m, err := NewMerger(workers, ants.WithExpiryDuration(10*time.Millisecond))
	require.NoError(t, err)
	return m
}

func TestNewMerger(t *testing.T) {
	defer leaktest.AfterTest(t)()

	_, err := NewMerger(0)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))

	params := config.NewDefaultParameters()
	params.MergeWorkers = 3
	m, err := NewMergerFromConfig(params)
	require.NoError(t, err)
	require.Equal(t, 3, m.Workers())
	m.Release()
}

func TestMergeAll(t *testing.T) {
	defer leaktest.AfterTest(t)()
	m := newTestMerger(t, 4)
	defer m.Release()
	ctx := context.Background()

	tests := []struct {
		name   string
		parts  func() []*roaring.Bitmap
		expect *roaring.Bitmap
	}{
		{
			name:   "empty",
			parts:  func() []*roaring.Bitmap { return nil },
			expect: roaring.New(),
		},
		{
			name:   "only nils",
			parts:  func() []*roaring.Bitmap { return []*roaring.Bitmap{nil, nil} },
			expect: roaring.New(),
		},
		{
			name:   "single",
			parts:  func() []*roaring.Bitmap { return []*roaring.Bitmap{roaring.BitmapOf(1, 2)} },
			expect: roaring.BitmapOf(1, 2),
		},
		{
			name: "even",
			parts: func() []*roaring.Bitmap {
				return []*roaring.Bitmap{
					roaring.BitmapOf(1), roaring.BitmapOf(2), roaring.BitmapOf(2, 3), roaring.BitmapOf(4),
				}
			},
			expect: roaring.BitmapOf(1, 2, 3, 4),
		},
		{
			name: "odd with nils",
			parts: func() []*roaring.Bitmap {
				return []*roaring.Bitmap{
					roaring.BitmapOf(1), nil, roaring.BitmapOf(5), roaring.BitmapOf(1, 9), nil, roaring.BitmapOf(7),
					roaring.BitmapOf(100000),
				}
			},
			expect: roaring.BitmapOf(1, 5, 7, 9, 100000),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.MergeAll(ctx, tt.parts())
			require.NoError(t, err)
			require.True(t, tt.expect.Equals(got))
		})
	}
}

func TestMergeAllMatchesSequentialMerge(t *testing.T) {
	defer leaktest.AfterTest(t)()
	m := newTestMerger(t, 2)
	defer m.Release()

	parts := make([]*roaring.Bitmap, 33)
	want := roaring.New()
	for i := range parts {
		parts[i] = roaring.New()
		parts[i].AddRange(uint64(i*100), uint64(i*100+150))
		want = bitmapcount.Merge(want, parts[i].Clone())
	}
	got, err := m.MergeAll(context.Background(), parts)
	require.NoError(t, err)
	require.True(t, want.Equals(got))
}

func TestMergeGroups(t *testing.T) {
	defer leaktest.AfterTest(t)()
	m := newTestMerger(t, 4)
	defer m.Release()

	parts := []map[int]*roaring.Bitmap{
		{0: roaring.BitmapOf(1, 2), 3: roaring.BitmapOf(7)},
		nil,
		{0: roaring.BitmapOf(2, 3), 1: nil, 5: roaring.BitmapOf(8)},
		{3: roaring.BitmapOf(7, 9)},
	}
	got, err := m.MergeGroups(context.Background(), parts)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.True(t, roaring.BitmapOf(1, 2, 3).Equals(got[0]))
	require.True(t, roaring.BitmapOf(7, 9).Equals(got[3]))
	require.True(t, roaring.BitmapOf(8).Equals(got[5]))
	require.NotContains(t, got, 1)
}

func TestMergeIntermediates(t *testing.T) {
	defer leaktest.AfterTest(t)()
	m := newTestMerger(t, 4)
	defer m.Release()
	ctx := context.Background()

	dense := roaring.New()
	for i := uint32(0); i < 20000; i++ {
		dense.Add(i * 3)
	}
	a, err := bitmapcount.MarshalIntermediate(dense, true)
	require.NoError(t, err)
	b, err := bitmapcount.MarshalIntermediate(roaring.BitmapOf(1, 2), false)
	require.NoError(t, err)

	got, err := m.MergeIntermediates(ctx, [][]byte{a, b})
	require.NoError(t, err)
	require.Equal(t, uint64(20002), got.GetCardinality())

	_, err = m.MergeIntermediates(ctx, [][]byte{a, {7, 7}})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrMalformedBitmap))
}

func TestMergeCanceled(t *testing.T) {
	defer leaktest.AfterTest(t)()
	m := newTestMerger(t, 2)
	defer m.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := m.MergeAll(ctx, []*roaring.Bitmap{roaring.BitmapOf(1), roaring.BitmapOf(2)})
	require.ErrorIs(t, err, context.Canceled)

	_, err = m.MergeGroups(ctx, []map[int]*roaring.Bitmap{{0: roaring.BitmapOf(1)}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunRecoversPanic(t *testing.T) {
	defer leaktest.AfterTest(t)()
	m := newTestMerger(t, 2)
	defer m.Release()

	err := m.run(context.Background(), []func() error{
		func() error { return nil },
		func() error { panic("broken part") },
	})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))
	require.Contains(t, err.Error(), "broken part")
}

func TestMergeAfterRelease(t *testing.T) {
	defer leaktest.AfterTest(t)()
	m := newTestMerger(t, 2)
	m.Release()

	_, err := m.MergeAll(context.Background(), []*roaring.Bitmap{roaring.BitmapOf(1), roaring.BitmapOf(2)})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInternal))
}
