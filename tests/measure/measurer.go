package measure

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/seqpack"
	"github.com/arloliu/seqpack/section"
)

// Result holds the measurements for a single dataset.
type Result struct {
	Name          string         // dataset name
	Fingerprint   uint64         // xxHash64 of the trivial form
	Count         int            // number of elements
	Width         int            // per-element bit width the codec selected
	EncodedLen    int            // length of the symbol string
	TrivialLen    int            // length of the comma-joined decimal form
	Ratio         float64        // EncodedLen / TrivialLen
	BaselineSizes map[string]int // baseline name -> compressed size of the trivial form
	RoundTripOK   bool           // decode returned the original sequence
}

// TrivialString renders values as comma-joined decimals, the uncompressed
// reference form the compression ratio is measured against.
func TrivialString(values []uint16) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}

	return sb.String()
}

// Measure encodes the dataset, verifies the round-trip, and computes the
// compression ratio plus the baseline sizes of the trivial form.
func Measure(dataset Dataset, baselines []Baseline) (Result, error) {
	trivial := TrivialString(dataset.Values)

	encoded, err := seqpack.Encode(dataset.Values)
	if err != nil {
		return Result{}, fmt.Errorf("encode %q: %w", dataset.Name, err)
	}

	decoded, err := seqpack.Decode(encoded)
	if err != nil {
		return Result{}, fmt.Errorf("decode %q: %w", dataset.Name, err)
	}

	result := Result{
		Name:          dataset.Name,
		Fingerprint:   dataset.Fingerprint(),
		Count:         len(dataset.Values),
		Width:         section.SelectWidth(dataset.Values).Bits(),
		EncodedLen:    len(encoded),
		TrivialLen:    len(trivial),
		BaselineSizes: make(map[string]int, len(baselines)),
		RoundTripOK:   slices.Equal(decoded, dataset.Values),
	}

	if result.TrivialLen > 0 {
		result.Ratio = float64(result.EncodedLen) / float64(result.TrivialLen)
	}

	for _, baseline := range baselines {
		compressed, err := baseline.Compress([]byte(trivial))
		if err != nil {
			return Result{}, fmt.Errorf("baseline %s on %q: %w", baseline.Name(), dataset.Name, err)
		}
		result.BaselineSizes[baseline.Name()] = len(compressed)
	}

	return result, nil
}

// MeasureAll measures every dataset in order.
func MeasureAll(datasets []Dataset, baselines []Baseline) ([]Result, error) {
	results := make([]Result, 0, len(datasets))
	for _, dataset := range datasets {
		result, err := Measure(dataset, baselines)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}
