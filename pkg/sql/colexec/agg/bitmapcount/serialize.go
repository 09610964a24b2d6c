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
	"encoding/binary"
	"errors"

	"github.com/RoaringBitmap/roaring"
	"github.com/pierrec/lz4/v4"

	"github.com/matrixorigin/distinctcount/pkg/common/moerr"
	v2 "github.com/matrixorigin/distinctcount/pkg/util/metric/v2"
)

// Format tags of a marshalled intermediate result.
const (
	intermediatePlain byte = 0
	intermediateLZ4   byte = 1
)

// lz4 cannot expand a block by more than this ratio.
const maxLZ4Ratio = 255

// SerializeBitmap returns the portable roaring serialization of bm, the
// format byte-blob columns carry.
func SerializeBitmap(bm *roaring.Bitmap) ([]byte, error) {
	return bm.ToBytes()
}

// DeserializeBitmap parses the portable roaring serialization. Any failure,
// including a panic inside the bitmap library, is reported as a malformed
// bitmap.
func DeserializeBitmap(ctx context.Context, data []byte) (bm *roaring.Bitmap, err error) {
	defer func() {
		if e := recover(); e != nil {
			bm = nil
			err = moerr.NewMalformedBitmap(ctx, "%v", e)
		}
	}()
	if len(data) == 0 {
		return nil, moerr.NewMalformedBitmap(ctx, "empty input")
	}
	bm = roaring.New()
	if err = bm.UnmarshalBinary(data); err != nil {
		return nil, moerr.NewMalformedBitmap(ctx, "%v", err)
	}
	v2.AggBitmapDeserializeCounter.Inc()
	return bm, nil
}

// MarshalIntermediate frames bm for exchange between stages. With compress
// set the payload is lz4 compressed unless that does not make it smaller.
func MarshalIntermediate(bm *roaring.Bitmap, compress bool) ([]byte, error) {
	payload, err := SerializeBitmap(bm)
	if err != nil {
		return nil, err
	}
	if compress {
		buf := make([]byte, 1+4+len(payload))
		var c lz4.Compressor
		n, err := c.CompressBlock(payload, buf[5:])
		if err != nil && !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
		if err == nil && n > 0 && n < len(payload) {
			buf[0] = intermediateLZ4
			binary.LittleEndian.PutUint32(buf[1:5], uint32(len(payload)))
			return buf[:5+n], nil
		}
	}
	buf := make([]byte, 1+len(payload))
	buf[0] = intermediatePlain
	copy(buf[1:], payload)
	return buf, nil
}

func UnmarshalIntermediate(ctx context.Context, data []byte) (*roaring.Bitmap, error) {
	if len(data) == 0 {
		return nil, moerr.NewMalformedBitmap(ctx, "empty intermediate result")
	}
	switch data[0] {
	case intermediatePlain:
		return DeserializeBitmap(ctx, data[1:])
	case intermediateLZ4:
		if len(data) < 5 {
			return nil, moerr.NewMalformedBitmap(ctx, "truncated lz4 header")
		}
		size := int(binary.LittleEndian.Uint32(data[1:5]))
		block := data[5:]
		if size == 0 || size > len(block)*maxLZ4Ratio+16 {
			return nil, moerr.NewMalformedBitmap(ctx, "lz4 length %d for %d bytes", size, len(block))
		}
		payload := make([]byte, size)
		n, err := lz4.UncompressBlock(block, payload)
		if err != nil {
			return nil, moerr.NewMalformedBitmap(ctx, "%v", err)
		}
		if n != size {
			return nil, moerr.NewMalformedBitmap(ctx, "lz4 length %d, got %d", size, n)
		}
		return DeserializeBitmap(ctx, payload)
	}
	return nil, moerr.NewMalformedBitmap(ctx, "unknown intermediate format %d", data[0])
}
