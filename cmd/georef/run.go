package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cwbudde/algo-nav/internal/config"
	"github.com/cwbudde/algo-nav/internal/monitoring"
	"github.com/cwbudde/algo-nav/nav/dataset"
	"github.com/cwbudde/algo-nav/nav/figure"
	"github.com/cwbudde/algo-nav/nav/series"
	"github.com/cwbudde/algo-nav/nav/trajectory"
	"github.com/cwbudde/algo-nav/spatial"
)

const (
	modeSLAM = "slam"
	modeAPS  = "aps"
)

// headingLength is the drawn length of camera directions, m.
const headingLength = 1.0

type options struct {
	mode    string
	camera  string
	aps     string
	gyro    string
	output  string
	plotDir string
	survey  *config.Survey
}

func (o options) validate() error {
	switch o.mode {
	case modeSLAM:
		if o.camera == "" {
			return errors.New("slam mode needs -camera")
		}
	case modeAPS:
	default:
		return fmt.Errorf("unknown mode %q", o.mode)
	}

	if o.aps == "" || o.gyro == "" {
		return errors.New("-aps and -gyro are required")
	}

	return nil
}

// output is a georeferenced camera trajectory with its transducer track.
type output struct {
	camera     trajectory.Trajectory
	transducer []spatial.Vec3
	fixes      []trajectory.Fix
	comparison *trajectory.Comparison
}

func run(opts options) error {
	done := monitoring.Stage("georeference (%s)", opts.mode)
	defer done()

	aps, err := dataset.LoadCSV(opts.aps)
	if err != nil {
		return err
	}
	gyro, err := dataset.LoadCSV(opts.gyro)
	if err != nil {
		return err
	}

	var out output
	switch opts.mode {
	case modeSLAM:
		camera, err := dataset.LoadCSV(opts.camera)
		if err != nil {
			return err
		}
		out, err = georefSLAM(camera, aps, gyro, opts.survey)
		if err != nil {
			return err
		}
	case modeAPS:
		out, err = georefAPS(aps, gyro, opts.survey)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}

	frame, err := dataset.TrajectoryFrame(out.camera)
	if err != nil {
		return err
	}
	if err := frame.AddVectors(dataset.TransducerColumns, out.transducer); err != nil {
		return err
	}
	if err := frame.SaveCSV(opts.output); err != nil {
		return err
	}
	monitoring.Logf("wrote %d poses to %s", out.camera.Len(), opts.output)

	if opts.plotDir != "" {
		if err := savePlots(opts.plotDir, out); err != nil {
			return err
		}
		monitoring.Logf("wrote figures to %s", opts.plotDir)
	}

	return nil
}

func georefSLAM(camera, aps, gyro dataset.Table, survey *config.Survey) (output, error) {
	cam, err := dataset.CameraTrajectory(camera, survey.QuaternionTolerance)
	if err != nil {
		return output{}, err
	}
	fixes, samples, err := readFixesAndGyro(aps, gyro)
	if err != nil {
		return output{}, err
	}

	fix, att := initialState(cam, fixes, samples)
	monitoring.Logf("anchoring %d poses at fix t=%.3f (%.2f, %.2f, %.2f)",
		cam.Len(), fix.Time, fix.Position[0], fix.Position[1], fix.Position[2])

	res, err := trajectory.SLAMRelative(trajectory.SLAMInput{
		Camera:       cam,
		InitPosition: fix.Position,
		InitRoll:     att.Roll,
		InitPitch:    att.Pitch,
		InitHeading:  att.Heading,
	}, survey.SLAMConfig())
	if err != nil {
		return output{}, err
	}
	monitoring.Logf("lever arm (%.3f, %.3f, %.3f) m", res.LeverArm[0], res.LeverArm[1], res.LeverArm[2])

	out := output{camera: res.Camera, transducer: res.Transducer, fixes: fixes}

	if res.Camera.Times == nil {
		monitoring.Logf("camera trajectory has no %s column, skipping comparison", dataset.ColEpoch)
		return out, nil
	}

	comparison, err := trajectory.Compare(res.Camera.Times, res.Transducer, fixes)
	switch {
	case errors.Is(err, trajectory.ErrEmptyTrajectory):
		monitoring.Logf("no acoustic fixes overlap the camera trajectory, skipping comparison")
	case err != nil:
		return output{}, err
	default:
		out.comparison = &comparison
		d := comparison.Stats.Distance
		monitoring.Logf("transducer vs acoustic fixes: n=%d rms=%.3f m max=%.3f m", d.Count, d.RMS, d.Max)
	}

	return out, nil
}

func georefAPS(aps, gyro dataset.Table, survey *config.Survey) (output, error) {
	fixes, samples, err := readFixesAndGyro(aps, gyro)
	if err != nil {
		return output{}, err
	}

	cam, err := trajectory.APSRelative(fixes, samples, survey.APSConfig())
	if err != nil {
		return output{}, err
	}
	monitoring.Logf("reconstructed %d camera poses", cam.Len())

	trans := make([]spatial.Vec3, len(fixes))
	for i, f := range fixes {
		trans[i] = f.Position
	}

	return output{camera: cam, transducer: trans, fixes: fixes}, nil
}

func readFixesAndGyro(aps, gyro dataset.Table) ([]trajectory.Fix, []trajectory.AttitudeSample, error) {
	fixes, err := dataset.APSFixes(aps)
	if err != nil {
		return nil, nil, err
	}
	samples, err := dataset.GyroAttitudes(gyro)
	if err != nil {
		return nil, nil, err
	}
	if len(fixes) == 0 || len(samples) == 0 {
		return nil, nil, fmt.Errorf("%w: %d fixes, %d gyro samples", trajectory.ErrEmptyTrajectory, len(fixes), len(samples))
	}
	monitoring.Logf("read %d acoustic fixes, %d gyro samples", len(fixes), len(samples))

	return fixes, samples, nil
}

// initialState picks the fix nearest the first camera pose, or the first
// fix when the camera has no timestamps, and the gyro sample nearest that
// fix.
func initialState(cam trajectory.Trajectory, fixes []trajectory.Fix, samples []trajectory.AttitudeSample) (trajectory.Fix, trajectory.AttitudeSample) {
	fix := fixes[0]
	if len(cam.Times) > 0 {
		fixTimes := make([]float64, len(fixes))
		for i, f := range fixes {
			fixTimes[i] = f.Time
		}
		fix = fixes[series.Nearest(cam.Times[0], fixTimes)]
	}

	gyroTimes := make([]float64, len(samples))
	for i, s := range samples {
		gyroTimes[i] = s.Time
	}

	return fix, samples[series.Nearest(fix.Time, gyroTimes)]
}

func savePlots(dir string, out output) error {
	fixes := make([]spatial.Vec3, len(out.fixes))
	fixTimes := make([]float64, len(out.fixes))
	for i, f := range out.fixes {
		fixes[i], fixTimes[i] = f.Position, f.Time
	}

	camera := figure.Track{Label: "Camera", Positions: out.camera.Positions}
	transducer := figure.Track{Label: "Transducer", Positions: out.transducer}
	acoustic := figure.Track{Label: "Acoustic fixes", Positions: fixes}

	planar := figure.Planar("Georeferenced trajectory", camera, transducer, acoustic)
	if out.camera.Directions != nil {
		// Planar draws easting (index 1) against northing (index 0).
		segments, err := figure.Headings(out.camera.Positions, out.camera.Directions, 1, 0, headingLength)
		if err != nil {
			return err
		}
		planar.Segments = segments
	}
	if err := planar.Save(filepath.Join(dir, "trajectory.png")); err != nil {
		return err
	}

	if out.camera.Times == nil {
		return nil
	}

	profile, err := figure.DepthProfile([][]float64{out.camera.Times, fixTimes}, camera, acoustic)
	if err != nil {
		return err
	}

	return profile.Save(filepath.Join(dir, "depth_profile.png"))
}
