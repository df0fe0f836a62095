// Package leverarm resolves the camera-to-transducer lever arm from tape
// measurements taken on the vehicle frame.
//
// The measurements are the offset along the camera's lateral axis (a0) and
// two offsets in the plane orthogonal to it (a1, a2). The camera is mounted
// tilted by an inclination angle inside that plane, so the in-plane part of
// the offset is rotated into the camera frame while its length is kept.
package leverarm

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-nav/spatial"
)

// ErrDegenerateGeometry is returned when the in-plane offset has zero length
// and the mounting angle is undefined.
var ErrDegenerateGeometry = errors.New("leverarm: degenerate geometry")

// Resolve returns the lever arm in the camera frame for the measured offsets
// arm and the camera inclination angle in radians.
//
// With c = hypot(a1, a2) and alpha = acos(a2/c) the result is
// (-a0, c*sin(angle-alpha), -c*cos(angle-alpha)). The Euclidean norm of the
// result equals the norm of arm.
func Resolve(arm spatial.Vec3, angle float64) (spatial.Vec3, error) {
	c := math.Hypot(arm[1], arm[2])
	if c == 0 {
		return spatial.Vec3{}, fmt.Errorf("%w: in-plane offset (%g, %g) has zero length",
			ErrDegenerateGeometry, arm[1], arm[2])
	}

	// Clamp against rounding pushing the ratio just past ±1.
	alpha := math.Acos(math.Max(-1, math.Min(1, arm[2]/c)))
	phi := angle - alpha

	return spatial.Vec3{-arm[0], c * math.Sin(phi), -c * math.Cos(phi)}, nil
}

// ResolveDegrees is Resolve with the inclination given in degrees.
func ResolveDegrees(arm spatial.Vec3, angleDeg float64) (spatial.Vec3, error) {
	return Resolve(arm, spatial.Deg2Rad(angleDeg))
}
