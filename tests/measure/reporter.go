package measure

import (
	"fmt"
	"io"
	"strings"
)

// Reporter writes measurement output to an injected sink. The harness holds
// no global log state; callers choose the destination (stdout, a file, a
// test buffer, or an io.MultiWriter combining them).
type Reporter struct {
	sink io.Writer
}

// NewReporter creates a reporter writing to sink.
func NewReporter(sink io.Writer) *Reporter {
	return &Reporter{sink: sink}
}

// PrintConfig prints the generation configuration summary.
func (r *Reporter) PrintConfig(config Config) {
	fmt.Fprintln(r.sink, "Configuration:")
	fmt.Fprintf(r.sink, "  Seed:          %d\n", config.Seed)
	fmt.Fprintf(r.sink, "  Random sizes:  %v\n", config.RandomSizes)
	fmt.Fprintln(r.sink)
}

// PrintResults prints the measurement results as a formatted table. Baseline
// columns follow the order of baselineNames.
func (r *Reporter) PrintResults(results []Result, baselineNames []string) {
	fmt.Fprintln(r.sink, "=== Measurement Results ===")
	fmt.Fprintln(r.sink)

	fmt.Fprintf(r.sink, "%-22s | %-6s | %-5s | %-8s | %-8s | %-7s", "Dataset", "Count", "Width", "Trivial", "Encoded", "Ratio")
	for _, name := range baselineNames {
		fmt.Fprintf(r.sink, " | %-7s", name)
	}
	fmt.Fprintf(r.sink, " | %-9s\n", "RoundTrip")
	fmt.Fprintln(r.sink, strings.Repeat("-", 84+10*len(baselineNames)))

	for _, res := range results {
		fmt.Fprintf(r.sink, "%-22s | %-6d | %-5d | %-8d | %-8d | %-7.3f",
			res.Name, res.Count, res.Width, res.TrivialLen, res.EncodedLen, res.Ratio)
		for _, name := range baselineNames {
			fmt.Fprintf(r.sink, " | %-7d", res.BaselineSizes[name])
		}
		status := "ok"
		if !res.RoundTripOK {
			status = "MISMATCH"
		}
		fmt.Fprintf(r.sink, " | %-9s\n", status)
	}
	fmt.Fprintln(r.sink)
}

// PrintSummary prints the mean compression ratio over all results.
func (r *Reporter) PrintSummary(results []Result) {
	if len(results) == 0 {
		return
	}

	var total float64
	for _, res := range results {
		total += res.Ratio
	}

	fmt.Fprintf(r.sink, "Mean ratio over %d datasets: %.3f\n", len(results), total/float64(len(results)))
}
