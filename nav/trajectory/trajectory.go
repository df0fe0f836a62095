package trajectory

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-nav/spatial"
)

var (
	// ErrDimensionMismatch is returned when parallel per-sample arrays differ
	// in length.
	ErrDimensionMismatch = errors.New("trajectory: dimension mismatch")
	// ErrEmptyTrajectory is returned when a stage needs at least one sample.
	ErrEmptyTrajectory = errors.New("trajectory: empty trajectory")
)

// Pose is the position and attitude of a rigid body at one instant.
// Attitude is a scalar-first unit quaternion.
type Pose struct {
	Position spatial.Vec3
	Attitude spatial.Quat
}

// Trajectory is a sequence of poses stored as parallel slices. Times and
// Directions are optional; when present they have one entry per pose.
type Trajectory struct {
	Times      []float64
	Positions  []spatial.Vec3
	Attitudes  []spatial.Quat
	Directions []spatial.Vec3
}

// FromPoses builds a trajectory without timestamps or directions.
func FromPoses(poses []Pose) Trajectory {
	tr := Trajectory{
		Positions: make([]spatial.Vec3, len(poses)),
		Attitudes: make([]spatial.Quat, len(poses)),
	}

	for i, p := range poses {
		tr.Positions[i] = p.Position
		tr.Attitudes[i] = p.Attitude
	}

	return tr
}

// Len returns the number of poses.
func (tr Trajectory) Len() int {
	return len(tr.Positions)
}

// Pose returns sample i.
func (tr Trajectory) Pose(i int) Pose {
	return Pose{Position: tr.Positions[i], Attitude: tr.Attitudes[i]}
}

// Validate checks that all present slices have one entry per position.
func (tr Trajectory) Validate() error {
	n := len(tr.Positions)

	if len(tr.Attitudes) != n {
		return fmt.Errorf("%w: %d positions, %d attitudes", ErrDimensionMismatch, n, len(tr.Attitudes))
	}

	if tr.Times != nil && len(tr.Times) != n {
		return fmt.Errorf("%w: %d positions, %d timestamps", ErrDimensionMismatch, n, len(tr.Times))
	}

	if tr.Directions != nil && len(tr.Directions) != n {
		return fmt.Errorf("%w: %d positions, %d directions", ErrDimensionMismatch, n, len(tr.Directions))
	}

	return nil
}

// Clone returns a deep copy of tr.
func (tr Trajectory) Clone() Trajectory {
	return Trajectory{
		Times:      cloneOrNil(tr.Times),
		Positions:  cloneOrNil(tr.Positions),
		Attitudes:  cloneOrNil(tr.Attitudes),
		Directions: cloneOrNil(tr.Directions),
	}
}

func cloneOrNil[T any](s []T) []T {
	if s == nil {
		return nil
	}

	return append(make([]T, 0, len(s)), s...)
}
