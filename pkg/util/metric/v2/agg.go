// Copyright 2023 Matrix Origin
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

package v2

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	aggBitmapRowsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "agg",
			Name:      "bitmap_rows_total",
			Help:      "Total number of rows accumulated by distinct count bitmap aggregations.",
		}, []string{"path"})

	AggBitmapBytesRowsCounter = aggBitmapRowsCounter.WithLabelValues("bytes")
	AggBitmapDictRowsCounter  = aggBitmapRowsCounter.WithLabelValues("dict")
	AggBitmapRawRowsCounter   = aggBitmapRowsCounter.WithLabelValues("raw")

	AggBitmapDeserializeCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "agg",
			Name:      "bitmap_deserialize_total",
			Help:      "Total number of serialized bitmaps deserialized.",
		})

	AggBitmapMergeCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mo",
			Subsystem: "agg",
			Name:      "bitmap_merge_total",
			Help:      "Total number of pairwise bitmap merges.",
		})

	AggBitmapTranslateDurationHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mo",
			Subsystem: "agg",
			Name:      "bitmap_translate_duration_seconds",
			Help:      "Bucketed histogram of dictionary id bitmap translation duration.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 2.0, 20),
		})

	AggMergeTaskRunningGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "mo",
			Subsystem: "agg",
			Name:      "merge_task_running",
			Help:      "Number of merge tasks running on the merge worker pool.",
		})
)

func initAggMetrics() {
	registry.MustRegister(aggBitmapRowsCounter)
	registry.MustRegister(AggBitmapDeserializeCounter)
	registry.MustRegister(AggBitmapMergeCounter)
	registry.MustRegister(AggBitmapTranslateDurationHistogram)
	registry.MustRegister(AggMergeTaskRunningGauge)
}
