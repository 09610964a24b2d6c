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

package config

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	"github.com/matrixorigin/distinctcount/pkg/logutil"
)

const (
	// ModeConflictFail rejects a block whose encoding contradicts the mode
	// already chosen by the aggregation.
	ModeConflictFail = "fail"
	// ModeConflictIgnore keeps the first mode and accumulates anyway.
	ModeConflictIgnore = "ignore"

	defaultGroupByInitialCapacity = 1024
	defaultGroupByMaxCapacity     = 1 << 20

	// EnvMergeWorkers overrides mergeWorkers.
	EnvMergeWorkers = "MO_DCOUNT_MERGE_WORKERS"
)

// DistinctCountParameters of the distinct count aggregation
type DistinctCountParameters struct {
	//default is 'fail'. 'ignore' accepts blocks contradicting the encoding mode.
	ModeConflict string `toml:"modeConflict"`

	//default is 1024. initial slots of a group by result holder.
	GroupByInitialCapacity int `toml:"groupByInitialCapacity"`

	//default is 1 << 20. largest group key + 1 a group by result holder accepts.
	GroupByMaxCapacity int `toml:"groupByMaxCapacity"`

	//default is the number of cpus. workers of the partial result merge pool.
	MergeWorkers int `toml:"mergeWorkers"`

	//default is false. compress marshalled intermediate results with lz4.
	CompressIntermediate bool `toml:"compressIntermediate"`
}

func (dp *DistinctCountParameters) SetDefaultValues() {
	if dp.ModeConflict == "" {
		dp.ModeConflict = ModeConflictFail
	}
	if dp.GroupByInitialCapacity == 0 {
		dp.GroupByInitialCapacity = defaultGroupByInitialCapacity
	}
	if dp.GroupByMaxCapacity == 0 {
		dp.GroupByMaxCapacity = defaultGroupByMaxCapacity
	}
	if dp.MergeWorkers == 0 {
		dp.MergeWorkers = runtime.NumCPU()
	}
	dp.MergeWorkers = envOrDefaultInt(EnvMergeWorkers, dp.MergeWorkers)
}

func (dp *DistinctCountParameters) Validate(ctx context.Context) error {
	switch dp.ModeConflict {
	case ModeConflictFail, ModeConflictIgnore:
	default:
		return moerr.NewBadConfig(ctx, "modeConflict must be '%s' or '%s', got '%s'",
			ModeConflictFail, ModeConflictIgnore, dp.ModeConflict)
	}
	if dp.GroupByInitialCapacity < 0 {
		return moerr.NewBadConfig(ctx, "groupByInitialCapacity %d is negative", dp.GroupByInitialCapacity)
	}
	if dp.GroupByMaxCapacity <= 0 || dp.GroupByMaxCapacity < dp.GroupByInitialCapacity {
		return moerr.NewBadConfig(ctx, "groupByMaxCapacity %d is below groupByInitialCapacity %d",
			dp.GroupByMaxCapacity, dp.GroupByInitialCapacity)
	}
	if dp.MergeWorkers <= 0 {
		return moerr.NewBadConfig(ctx, "mergeWorkers %d must be positive", dp.MergeWorkers)
	}
	return nil
}

// NewDefaultParameters returns parameters with every default applied.
func NewDefaultParameters() DistinctCountParameters {
	var dp DistinctCountParameters
	dp.SetDefaultValues()
	return dp
}

// Config is the file layout of the service configuration.
type Config struct {
	DistinctCount DistinctCountParameters `toml:"distinct-count"`

	Log logutil.LogConfig `toml:"log"`
}

func (c *Config) SetDefaultValues() {
	c.DistinctCount.SetDefaultValues()
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.MaxSize == 0 {
		c.Log.MaxSize = 512
	}
}

func (c *Config) Validate(ctx context.Context) error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return moerr.NewBadConfig(ctx, "log format '%s'", c.Log.Format)
	}
	return c.DistinctCount.Validate(ctx)
}

// LoadConfigFromFile decodes a toml file, applies defaults and validates
// the result.
func LoadConfigFromFile(configFile string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(configFile, cfg); err != nil {
		return nil, moerr.NewBadConfig(context.TODO(), "decode %s: %v", configFile, err)
	}
	cfg.SetDefaultValues()
	if err := cfg.Validate(context.TODO()); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOrDefaultInt(key string, defaultValue int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
