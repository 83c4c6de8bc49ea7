// Command seqpack-measure runs the measurement harness over the standard
// scenario set and reports compression ratios for the seqpack codec next to
// general-purpose compressor baselines.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/arloliu/seqpack/tests/measure"
)

func main() {
	seed := pflag.Int64("seed", 42, "random seed for the generated datasets")
	sizes := pflag.IntSlice("random-sizes", []int{50, 100, 500, 1000}, "element counts of the random datasets")
	output := pflag.String("output", "", "optional file that also receives the report")
	pflag.Parse()

	var sink io.Writer = os.Stdout
	if *output != "" {
		file, err := os.OpenFile(*output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()

		sink = io.MultiWriter(os.Stdout, file)
	}

	config := measure.Config{Seed: *seed, RandomSizes: *sizes}
	datasets := measure.GenerateDatasets(config)
	baselines := measure.DefaultBaselines()

	results, err := measure.MeasureAll(datasets, baselines)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(baselines))
	for _, baseline := range baselines {
		names = append(names, baseline.Name())
	}

	fmt.Fprintln(sink, "=== seqpack Compression Analysis ===")
	fmt.Fprintln(sink)

	reporter := measure.NewReporter(sink)
	reporter.PrintConfig(config)
	reporter.PrintResults(results, names)
	reporter.PrintSummary(results)
}
