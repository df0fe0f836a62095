package trajectory

import (
	"fmt"

	"github.com/cwbudde/algo-nav/nav/series"
	"github.com/cwbudde/algo-nav/spatial"
)

// Fix is an absolute acoustic position of the transducer:
// (northing, easting, depth) in metres at Unix time Time.
type Fix struct {
	Time     float64
	Position spatial.Vec3
}

// CheckFixOrder reports series.ErrNotIncreasing if fix times ever decrease.
// Repeated times are allowed.
func CheckFixOrder(fixes []Fix) error {
	for i := 1; i < len(fixes); i++ {
		if fixes[i].Time < fixes[i-1].Time {
			return fmt.Errorf("%w: fix %d at %v before fix %d at %v",
				series.ErrNotIncreasing, i, fixes[i].Time, i-1, fixes[i-1].Time)
		}
	}

	return nil
}

// AttitudeSample is a gyro reading. Angles are radians.
type AttitudeSample struct {
	Time    float64
	Roll    float64
	Pitch   float64
	Heading float64
}

// Body returns the body attitude q_roll*q_pitch*q_yaw.
func (a AttitudeSample) Body() spatial.Quat {
	return spatial.FromRollPitchYawBody(a.Roll, a.Pitch, a.Heading)
}

// APSConfig holds the mounting geometry for APS-relative georeferencing.
type APSConfig struct {
	// LeverArm from transducer to camera in the vehicle body frame, m.
	LeverArm spatial.Vec3
	// Declination of the camera about the body y axis, radians.
	Declination float64
	// Forward is the camera boresight in the body frame.
	Forward spatial.Vec3
}

// DefaultAPSConfig returns the survey mounting: lever arm (2.00, 0.21, 1.40)
// m, 48° declination and a +x boresight.
func DefaultAPSConfig() APSConfig {
	return APSConfig{
		LeverArm:    spatial.Vec3{2.00, 0.21, 1.40},
		Declination: spatial.Deg2Rad(48),
		Forward:     spatial.AxisX,
	}
}

// APSRelative reconstructs the camera trajectory from acoustic fixes and gyro
// attitudes. Each fix is paired with the gyro sample nearest in time; the
// camera position is the fix plus the lever arm rotated into the body
// attitude, and the camera attitude is the declination applied on top of the
// body attitude. The result carries the fix timestamps and camera directions.
//
// Fix times must be non-decreasing and gyro times strictly increasing.
func APSRelative(fixes []Fix, gyro []AttitudeSample, cfg APSConfig) (Trajectory, error) {
	if len(fixes) == 0 || len(gyro) == 0 {
		return Trajectory{}, fmt.Errorf("%w: %d fixes, %d gyro samples", ErrEmptyTrajectory, len(fixes), len(gyro))
	}

	if err := CheckFixOrder(fixes); err != nil {
		return Trajectory{}, err
	}

	fixTimes := make([]float64, len(fixes))
	for i, f := range fixes {
		fixTimes[i] = f.Time
	}

	gyroTimes := make([]float64, len(gyro))
	for i, g := range gyro {
		gyroTimes[i] = g.Time
	}

	if err := (series.TimeSeries{Times: gyroTimes}).Validate(); err != nil {
		return Trajectory{}, fmt.Errorf("trajectory: gyro: %w", err)
	}

	nearest := series.NearestIndices(fixTimes, gyroTimes)
	dec := spatial.FromAxisAngle(spatial.AxisY, cfg.Declination)

	out := Trajectory{
		Times:      fixTimes,
		Positions:  make([]spatial.Vec3, len(fixes)),
		Attitudes:  make([]spatial.Quat, len(fixes)),
		Directions: make([]spatial.Vec3, len(fixes)),
	}

	for i, f := range fixes {
		pose, dir := cameraFromFix(f, gyro[nearest[i]], dec, cfg)
		out.Positions[i] = pose.Position
		out.Attitudes[i] = pose.Attitude
		out.Directions[i] = dir
	}

	return out, nil
}

func cameraFromFix(f Fix, g AttitudeSample, dec spatial.Quat, cfg APSConfig) (Pose, spatial.Vec3) {
	body := g.Body()
	cam := dec.Mul(body)

	return Pose{
		Position: f.Position.Add(body.Rotate(cfg.LeverArm)),
		Attitude: cam,
	}, cam.Rotate(cfg.Forward)
}
