//go:build !gozstd

package measure

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoderPool pools zstd encoders for reuse to eliminate allocation
// overhead. The klauspost/compress/zstd library is explicitly designed for
// encoder reuse.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

// ZstdBaseline compresses with the pure-Go Zstandard implementation. Build
// with the gozstd tag to use the cgo implementation instead.
type ZstdBaseline struct{}

var _ Baseline = ZstdBaseline{}

func (ZstdBaseline) Name() string { return "zstd" }

// Compress compresses the input data using Zstandard compression.
func (ZstdBaseline) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	// EncodeAll is stateless, safe to use with a pooled encoder.
	return encoder.EncodeAll(data, nil), nil
}
