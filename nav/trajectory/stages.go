package trajectory

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-nav/spatial"
)

// ConstantLeverArm returns n copies of arm.
func ConstantLeverArm(arm spatial.Vec3, n int) []spatial.Vec3 {
	out := make([]spatial.Vec3, n)
	for i := range out {
		out[i] = arm
	}

	return out
}

// CameraDirections rotates the camera boresight forward (camera frame) by
// every attitude.
func CameraDirections(attitudes []spatial.Quat, forward spatial.Vec3) []spatial.Vec3 {
	out := make([]spatial.Vec3, len(attitudes))
	for i, q := range attitudes {
		out[i] = q.Rotate(forward)
	}

	return out
}

// ComposeTransducer returns the transducer positions for a camera trajectory
// and per-sample lever arms given in the camera frame:
// trans[i] = cam.Positions[i] + cam.Attitudes[i] rotating leverArms[i].
func ComposeTransducer(cam Trajectory, leverArms []spatial.Vec3) ([]spatial.Vec3, error) {
	if err := cam.Validate(); err != nil {
		return nil, err
	}

	if len(leverArms) != cam.Len() {
		return nil, fmt.Errorf("%w: %d poses, %d lever arms", ErrDimensionMismatch, cam.Len(), len(leverArms))
	}

	out := make([]spatial.Vec3, cam.Len())
	for i, p := range cam.Positions {
		out[i] = p.Add(cam.Attitudes[i].Rotate(leverArms[i]))
	}

	return out, nil
}

// AlignmentRotation returns the rotation that removes a camera inclination
// (radians, about the camera x axis) and maps the odometry axes (x right,
// y down, z forward) onto the levelled vehicle frame: q2*q1*qi with
// qi = (x, -inclination), q1 = (y, 90°) and q2 = (x, 90°).
func AlignmentRotation(inclination float64) spatial.Quat {
	qi := spatial.FromAxisAngle(spatial.AxisX, -inclination)
	q1 := spatial.FromAxisAngle(spatial.AxisY, math.Pi/2)
	q2 := spatial.FromAxisAngle(spatial.AxisX, math.Pi/2)

	return q2.Mul(q1).Mul(qi)
}

// Align applies AlignmentRotation(inclination) to the camera trajectory and
// the transducer positions. Camera directions are recomputed from the
// aligned attitudes and the boresight forward.
func Align(cam Trajectory, trans []spatial.Vec3, inclination float64, forward spatial.Vec3) (Trajectory, []spatial.Vec3, error) {
	if err := checkPair(cam, trans); err != nil {
		return Trajectory{}, nil, err
	}

	t := Rotation(AlignmentRotation(inclination))

	out := t.Apply(cam)
	out.Directions = CameraDirections(out.Attitudes, forward)

	return out, t.ApplyPoints(trans), nil
}

// GeoreferenceTransform returns the transform used by Georeference: rotate by
// init.Attitude, then translate so that trans0 lands on init.Position.
func GeoreferenceTransform(trans0 spatial.Vec3, init Pose) RigidTransform {
	rot := Rotation(init.Attitude)
	offset := init.Position.Sub(rot.ApplyPoint(trans0))

	return rot.Then(Translation(offset))
}

// Georeference rotates the levelled camera trajectory and transducer track
// into the initial vehicle attitude and translates both so that the first
// transducer sample coincides with init.Position. Camera directions, when
// present, are rotated with the trajectory.
func Georeference(cam Trajectory, trans []spatial.Vec3, init Pose) (Trajectory, []spatial.Vec3, error) {
	if err := checkPair(cam, trans); err != nil {
		return Trajectory{}, nil, err
	}

	if len(trans) == 0 {
		return Trajectory{}, nil, ErrEmptyTrajectory
	}

	t := GeoreferenceTransform(trans[0], init)

	return t.Apply(cam), t.ApplyPoints(trans), nil
}

func checkPair(cam Trajectory, trans []spatial.Vec3) error {
	if err := cam.Validate(); err != nil {
		return err
	}

	if len(trans) != cam.Len() {
		return fmt.Errorf("%w: %d camera poses, %d transducer positions", ErrDimensionMismatch, cam.Len(), len(trans))
	}

	return nil
}
