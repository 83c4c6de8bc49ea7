// Package measure is the seqpack measurement harness. It generates
// deterministic datasets, encodes them, verifies the round-trip, and reports
// the compression ratio of the symbol string against the trivial
// comma-joined decimal form and against general-purpose compressors.
//
// The harness is a pure consumer of the codec: all output goes to a sink the
// caller supplies, and all randomness is seeded.
package measure

import (
	"fmt"
	"math/rand"

	"github.com/arloliu/seqpack/internal/hash"
	"github.com/arloliu/seqpack/section"
)

// Dataset is one named input sequence for measurement.
type Dataset struct {
	Name   string
	Values []uint16
}

// Fingerprint returns a stable xxHash64 identifier of the dataset contents,
// computed over the trivial decimal form.
func (d Dataset) Fingerprint() uint64 {
	return hash.ID(TrivialString(d.Values))
}

// Config holds the generation parameters for the default scenario set.
type Config struct {
	Seed        int64 // seed for the random scenarios
	RandomSizes []int // element counts of the random scenarios
}

// DefaultConfig returns the generation parameters matching the standard
// scenario set: random sequences of 50, 100, 500 and 1000 values with a
// fixed seed.
func DefaultConfig() Config {
	return Config{
		Seed:        42,
		RandomSizes: []int{50, 100, 500, 1000},
	}
}

// GenerateDatasets builds the standard scenario set: two small fixed
// sequences, seeded random sequences over the full value range, the three
// single-width boundary sets (all one-digit, all two-digit, all three-digit
// values), and a 900-element set holding every value 1-300 three times.
func GenerateDatasets(config Config) []Dataset {
	rng := rand.New(rand.NewSource(config.Seed))

	datasets := []Dataset{
		{Name: "fixed 1-3", Values: []uint16{1, 2, 3}},
		{Name: "fixed 1-9", Values: []uint16{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}

	for _, size := range config.RandomSizes {
		values := make([]uint16, size)
		for i := range values {
			values[i] = uint16(section.MinValue + rng.Intn(section.MaxValue-section.MinValue+1))
		}
		datasets = append(datasets, Dataset{
			Name:   fmt.Sprintf("random %d", size),
			Values: values,
		})
	}

	oneDigit := make([]uint16, 300)
	for i := range oneDigit {
		oneDigit[i] = uint16(i%9 + 1)
	}

	twoDigit := make([]uint16, 300)
	for i := range twoDigit {
		twoDigit[i] = uint16(10 + i%90)
	}

	threeDigit := make([]uint16, 300)
	for i := range threeDigit {
		threeDigit[i] = uint16(100 + i%201)
	}

	triple := make([]uint16, 0, 3*section.MaxValue)
	for v := uint16(section.MinValue); v <= section.MaxValue; v++ {
		triple = append(triple, v, v, v)
	}

	datasets = append(datasets,
		Dataset{Name: "boundary one-digit", Values: oneDigit},
		Dataset{Name: "boundary two-digit", Values: twoDigit},
		Dataset{Name: "boundary three-digit", Values: threeDigit},
		Dataset{Name: "each value x3", Values: triple},
	)

	return datasets
}
