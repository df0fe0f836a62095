package trajectory

import (
	"fmt"

	"github.com/cwbudde/algo-nav/nav/leverarm"
	"github.com/cwbudde/algo-nav/spatial"
)

// SLAMConfig holds the mounting geometry for SLAM-relative georeferencing.
type SLAMConfig struct {
	// MeasuredDistances are the tape measurements from camera to transducer
	// on the vehicle frame (lateral, and the two legs orthogonal to it), m.
	MeasuredDistances spatial.Vec3
	// Inclination of the camera relative to the vehicle body, radians.
	Inclination float64
	// Forward is the camera boresight in the camera frame.
	Forward spatial.Vec3
}

// DefaultSLAMConfig returns the survey mounting: distances (0.21, 1.40,
// 2.00) m, 48° inclination and a +z boresight.
func DefaultSLAMConfig() SLAMConfig {
	return SLAMConfig{
		MeasuredDistances: spatial.Vec3{0.21, 1.40, 2.00},
		Inclination:       spatial.Deg2Rad(48),
		Forward:           spatial.AxisZ,
	}
}

// SLAMInput is the visual-odometry trajectory and the absolute initial
// state of the transducer. InitPosition is (northing, easting, depth) and
// the angles are radians.
type SLAMInput struct {
	Camera       Trajectory
	InitPosition spatial.Vec3
	InitRoll     float64
	InitPitch    float64
	InitHeading  float64
}

// Result is a georeferenced camera trajectory, with directions, and the
// matching transducer track.
type Result struct {
	Camera     Trajectory
	Transducer []spatial.Vec3
	LeverArm   spatial.Vec3
}

// SLAMRelative georeferences a visual-odometry trajectory: the lever arm is
// resolved once, then stages A, B and C run in order.
func SLAMRelative(in SLAMInput, cfg SLAMConfig) (Result, error) {
	if in.Camera.Len() == 0 {
		return Result{}, ErrEmptyTrajectory
	}

	arm, err := leverarm.Resolve(cfg.MeasuredDistances, cfg.Inclination)
	if err != nil {
		return Result{}, fmt.Errorf("trajectory: resolving lever arm: %w", err)
	}

	cam := in.Camera.Clone()
	if err := cam.Validate(); err != nil {
		return Result{}, err
	}
	cam.Directions = CameraDirections(cam.Attitudes, cfg.Forward)

	trans, err := ComposeTransducer(cam, ConstantLeverArm(arm, cam.Len()))
	if err != nil {
		return Result{}, err
	}

	cam, trans, err = Align(cam, trans, cfg.Inclination, cfg.Forward)
	if err != nil {
		return Result{}, err
	}

	init := Pose{
		Position: in.InitPosition,
		Attitude: spatial.FromRollPitchYaw(in.InitRoll, in.InitPitch, in.InitHeading),
	}

	cam, trans, err = Georeference(cam, trans, init)
	if err != nil {
		return Result{}, err
	}

	return Result{Camera: cam, Transducer: trans, LeverArm: arm}, nil
}
