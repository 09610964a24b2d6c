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

// Package logutil2 is the context-aware flavour of logutil. Entries pick up
// the query id attached with logutil.WithQueryID.
package logutil2

import (
	"context"

	"go.uber.org/zap"

	"github.com/matrixorigin/distinctcount/pkg/logutil"
)

func logger(ctx context.Context, opts ...zap.Option) *zap.Logger {
	opts = append(opts, zap.AddCallerSkip(1), logutil.ContextFields()(ctx))
	return logutil.GetGlobalLogger().WithOptions(opts...)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	logger(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	logger(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	logger(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	logger(ctx).Error(msg, fields...)
}

// Debugf only use in develop mode
func Debugf(ctx context.Context, msg string, fields ...interface{}) {
	logger(ctx).Sugar().Debugf(msg, fields...)
}

// Warnf only use in develop mode
func Warnf(ctx context.Context, msg string, fields ...interface{}) {
	logger(ctx).Sugar().Warnf(msg, fields...)
}

// Errorf only use in develop mode
func Errorf(ctx context.Context, msg string, fields ...interface{}) {
	logger(ctx, zap.AddStacktrace(zap.ErrorLevel)).Sugar().Errorf(msg, fields...)
}
