package measure

import (
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
)

// Baseline is a general-purpose compressor the harness runs against the
// trivial decimal form of each dataset, to put the codec's ratio next to
// what off-the-shelf compression achieves on the same input.
type Baseline interface {
	// Name identifies the baseline in reports.
	Name() string
	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)
}

// DefaultBaselines returns the standard baseline set: Zstd, S2 and LZ4.
func DefaultBaselines() []Baseline {
	return []Baseline{
		ZstdBaseline{},
		S2Baseline{},
		LZ4Baseline{},
	}
}

// S2Baseline compresses with klauspost's S2, the Snappy-compatible format
// tuned for speed.
type S2Baseline struct{}

var _ Baseline = S2Baseline{}

func (S2Baseline) Name() string { return "s2" }

// Compress compresses the input data using S2 block compression.
func (S2Baseline) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// lz4CompressorPool pools lz4.Compressor instances for reuse. The
// lz4.Compressor maintains internal state that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Baseline compresses with LZ4 block compression.
type LZ4Baseline struct{}

var _ Baseline = LZ4Baseline{}

func (LZ4Baseline) Name() string { return "lz4" }

// Compress compresses the input data using LZ4 block compression. Inputs
// that LZ4 cannot shrink are reported at their original size, matching the
// store-uncompressed convention of the block format.
func (LZ4Baseline) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible; the block format stores such input as-is.
		return append([]byte(nil), data...), nil
	}

	return dst[:n], nil
}
