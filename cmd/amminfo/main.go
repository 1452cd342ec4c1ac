// Command amminfo prints atomic data and model diagnostics for the NH3
// inversion transitions.
//
// Usage:
//
//	amminfo [flags] [transition ...]
//
// Without arguments it prints info for both transitions.
//
// Examples:
//
//	amminfo 11
//	amminfo -trot 15 22
//	amminfo -lines 11
//	amminfo -model -tex 5 -ntot 14.5 11 22
//	amminfo -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-specfit/ammonia"
)

type transitionEntry struct {
	name string
	t    *ammonia.Transition
}

var registry = []transitionEntry{
	{"11", ammonia.TransitionOneOne},
	{"22", ammonia.TransitionTwoTwo},
}

func main() {
	trot := flag.Float64("trot", 20, "rotational temperature in K for the partition function")
	lines := flag.Bool("lines", false, "print the hyperfine line table")
	model := flag.Bool("model", false, "print the peak brightness of a single-component model")
	voff := flag.Float64("voff", 0, "model velocity offset in km/s")
	tex := flag.Float64("tex", 5, "model excitation temperature in K")
	ntot := flag.Float64("ntot", 14.5, "model log10 column density")
	sigm := flag.Float64("sigm", 0.3, "model velocity dispersion in km/s")
	extent := flag.Float64("extent", 30, "model velocity half-span in km/s")
	res := flag.Float64("res", 0.05, "model channel spacing in km/s")
	list := flag.Bool("list", false, "list available transition names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: amminfo [flags] [transition ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints atomic data and model diagnostics for the NH3 inversion transitions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for both transitions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  amminfo 11\n")
		fmt.Fprintf(os.Stderr, "  amminfo -lines 22\n")
		fmt.Fprintf(os.Stderr, "  amminfo -model -tex 5 -ntot 14.5 11 22\n")
	}
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching transitions\n")
		os.Exit(1)
	}

	if *lines {
		printLines(entries)
		return
	}

	printSummary(entries, *trot)

	if *model {
		params := []float64{*voff, *trot, *tex, *ntot, *sigm}
		printModel(entries, params, *extent, *res)
	}
}

func resolveEntries(names []string) []transitionEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]transitionEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []transitionEntry
	for _, name := range names {
		name = strings.Trim(strings.TrimSpace(name), "(),")
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown transition %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printSummary(entries []transitionEntry, trot float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Transition\tRest Freq [GHz]\tEinstein A [1/s]\tHyperfine Lines\tQ(para, %.4g K)\n", trot)
	fmt.Fprintf(tw, "----------\t---------------\t----------------\t---------------\t---------\n")

	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%.7f\t%.4e\t%d\t%.4f\n",
			e.t.Name(),
			e.t.RestFreq()/1e9,
			e.t.EinsteinA(),
			e.t.HyperfineCount(),
			ammonia.PartitionFunction(trot),
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}

func printLines(entries []transitionEntry) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	for _, e := range entries {
		fmt.Fprintf(tw, "%s\tOffset [km/s]\tWeight\n", e.t.Name())
		fmt.Fprintf(tw, "\t-------------\t------\n")

		offsets := e.t.HyperfineOffsets()
		weights := e.t.HyperfineWeights()
		for i := range offsets {
			fmt.Fprintf(tw, "\t%+9.5f\t%.6f\n", offsets[i], weights[i])
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}

func printModel(entries []transitionEntry, params []float64, extent, res float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Transition\tPeak [K]\tPeak Velocity [km/s]\n")
	fmt.Fprintf(tw, "----------\t--------\t--------------------\n")

	for _, e := range entries {
		freqs := e.t.FrequencyAxis(extent, res)
		out := make([]float64, len(freqs))
		if err := e.t.Predict(freqs, out, params); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		peak, peakPos := out[0], 0
		for i, v := range out {
			if v > peak {
				peak, peakPos = v, i
			}
		}

		fmt.Fprintf(tw, "%s\t%.4f\t%+.3f\n", e.t.Name(), peak, e.t.VelocityAt(freqs[peakPos]))
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		os.Exit(1)
	}
}
