// Command georef georeferences an ROV camera trajectory.
//
// Usage:
//
//	georef -mode slam -camera camera.csv -aps aps.csv -gyro gyro.csv
//	georef -mode aps -aps aps.csv -gyro gyro.csv
//
// In slam mode a visual-odometry trajectory is anchored to the acoustic fix
// and gyro attitude at its start; the remaining fixes are used to report
// the residuals of the transducer track. In aps mode the camera trajectory
// is rebuilt from every acoustic fix and the gyro attitude nearest in time.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-nav/internal/config"
	"github.com/cwbudde/algo-nav/internal/monitoring"
)

func main() {
	mode := flag.String("mode", modeSLAM, "georeferencing mode: slam or aps")
	camera := flag.String("camera", "", "visual-odometry CSV (slam mode)")
	aps := flag.String("aps", "", "filtered acoustic positions CSV")
	gyro := flag.String("gyro", "", "gyro attitude CSV (Roll, Pitch, Heading in degrees)")
	configPath := flag.String("config", "", "survey configuration file (.yaml); built-in defaults when empty")
	out := flag.String("out", "georeferenced.csv", "output CSV")
	plots := flag.String("plots", "", "directory for trajectory figures; none when empty")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: georef [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Georeferences a camera trajectory from acoustic fixes and gyro attitudes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  georef -camera KeyFrameTrajectory.csv -aps hipap_filtered.csv -gyro gyro.csv\n")
		fmt.Fprintf(os.Stderr, "  georef -mode aps -aps hipap_filtered.csv -gyro gyro.csv -plots figures\n")
	}
	flag.Parse()

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
		mode:    *mode,
		camera:  *camera,
		aps:     *aps,
		gyro:    *gyro,
		output:  *out,
		plotDir: *plots,
		survey:  survey,
	}
	if err := opts.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
