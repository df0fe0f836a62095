// Command firinfo prints the response of the positioning low-pass filters.
//
// Usage:
//
//	firinfo [flags] [taps ...]
//
// Without arguments it describes the fixed order design of the survey
// configuration, and the Kaiser design when one is configured. Extra tap
// counts add Hamming designs with the same cutoff for comparison.
//
// Examples:
//
//	firinfo
//	firinfo -fs 2 8 16 32
//	firinfo -config survey.yaml -nfft 16384
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-nav/dsp/lowpass"
	"github.com/cwbudde/algo-nav/internal/config"
)

func main() {
	fs := flag.Float64("fs", 1, "sample frequency in Hz")
	nfft := flag.Int("nfft", 8192, "FFT size of the response (power of two)")
	configPath := flag.String("config", "", "survey configuration file (.yaml); built-in defaults when empty")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firinfo [flags] [taps ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the response of the positioning low-pass filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  firinfo -fs 2 8 16 32\n")
		fmt.Fprintf(os.Stderr, "  firinfo -config survey.yaml\n")
	}
	flag.Parse()

	survey := config.Default()
	if *configPath != "" {
		var err error
		if survey, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	var extra []int
	for _, arg := range flag.Args() {
		n, err := strconv.Atoi(arg)
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "warning: ignoring tap count %q\n", arg)
			continue
		}
		extra = append(extra, n)
	}

	designs, err := surveyDesigns(survey, *fs, extra)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printAnalysis(designs, *fs, *nfft)
}

func printAnalysis(designs []design, fs float64, nfft int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Design\tTaps\tDelay [s]\tCutoff [Hz]\tGain@Cutoff [dB]\tBW 3dB [Hz]\tStopband [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t---------\t-----------\t----------------\t-----------\t-------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, d := range designs {
		a, err := analyze(d.taps, fs, d.cutoff, nfft)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %s: %v\n", d.name, err)
			continue
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.4f\t%.2f\t%.4f\t%.2f\n",
			d.name,
			len(d.taps),
			lowpass.GroupDelay(len(d.taps), fs),
			d.cutoff,
			a.GainAtCutoffDB,
			a.Bandwidth3dB,
			a.StopbandDB,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
