// Command hipapfilter low-pass filters a HiPAP positioning export and writes
// a delay-corrected copy with geographic coordinates.
//
// Usage:
//
//	hipapfilter [flags] input.csv
//
// The input needs Epoch, UTM Northing, UTM Easting, Depth, UTM Zone and UTM
// Hemisphere columns. Filter settings come from the survey configuration;
// a kaiser section there selects the Kaiser-window design.
//
// Examples:
//
//	hipapfilter HiPAP_raw.csv
//	hipapfilter -config survey.yaml -out filtered.csv hipap.csv
//	hipapfilter -plots figures -geojson track.geojson hipap.csv
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-nav/internal/config"
	"github.com/cwbudde/algo-nav/internal/monitoring"
)

func main() {
	configPath := flag.String("config", "", "survey configuration file (.yaml); built-in defaults when empty")
	out := flag.String("out", "", "output CSV (default <input>_filtered.csv)")
	plots := flag.String("plots", "", "directory for comparison figures; none when empty")
	geoJSON := flag.String("geojson", "", "write the filtered track as GeoJSON to this file")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hipapfilter [flags] input.csv\n\n")
		fmt.Fprintf(os.Stderr, "Low-pass filters HiPAP positions and corrects the filter delay.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  hipapfilter HiPAP_raw.csv\n")
		fmt.Fprintf(os.Stderr, "  hipapfilter -config survey.yaml -plots figures hipap.csv\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *quiet {
		monitoring.SetLogger(nil)
	}

	survey := config.Default()
	if *configPath != "" {
		var err error
		if survey, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	opts := options{
		input:   flag.Arg(0),
		output:  *out,
		plotDir: *plots,
		geoJSON: *geoJSON,
		survey:  survey,
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
