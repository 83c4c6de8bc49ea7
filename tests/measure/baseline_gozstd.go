//go:build gozstd

package measure

import "github.com/valyala/gozstd"

// ZstdBaseline compresses with the cgo Zstandard bindings, selected by the
// gozstd build tag.
type ZstdBaseline struct{}

var _ Baseline = ZstdBaseline{}

func (ZstdBaseline) Name() string { return "zstd" }

// Compress compresses the input data using Zstandard compression.
func (ZstdBaseline) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}
