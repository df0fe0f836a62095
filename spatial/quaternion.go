package spatial

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quat is a quaternion stored scalar first: W + X·i + Y·j + Z·k.
type Quat struct {
	W, X, Y, Z float64
}

// Identity returns the identity rotation.
func Identity() Quat {
	return Quat{W: 1}
}

// FromSlice builds a quaternion from four scalar-first components.
func FromSlice(c [4]float64) Quat {
	return Quat{W: c[0], X: c[1], Y: c[2], Z: c[3]}
}

// PureQuat embeds v as a quaternion with zero scalar part.
func PureQuat(v Vec3) Quat {
	return Quat{X: v[0], Y: v[1], Z: v[2]}
}

// FromAxisAngle returns the rotation by angle radians about axis.
// The axis is normalised first; a zero axis yields the identity.
func FromAxisAngle(axis Vec3, angle float64) Quat {
	n := axis.Norm()
	if n == 0 {
		return Identity()
	}

	s := math.Sin(angle/2) / n

	return Quat{
		W: math.Cos(angle / 2),
		X: axis[0] * s,
		Y: axis[1] * s,
		Z: axis[2] * s,
	}
}

// FromRollPitchYaw returns q_yaw·q_pitch·q_roll, the rotation that applies
// roll about x first, then pitch about y, then yaw about z. Angles are radians.
func FromRollPitchYaw(roll, pitch, yaw float64) Quat {
	qRoll := FromAxisAngle(AxisX, roll)
	qPitch := FromAxisAngle(AxisY, pitch)
	qYaw := FromAxisAngle(AxisZ, yaw)

	return qYaw.Mul(qPitch).Mul(qRoll)
}

// FromRollPitchYawBody returns q_roll·q_pitch·q_yaw, the composition used for
// gyroscope attitudes expressed about the moving body axes.
func FromRollPitchYawBody(roll, pitch, yaw float64) Quat {
	qRoll := FromAxisAngle(AxisX, roll)
	qPitch := FromAxisAngle(AxisY, pitch)
	qYaw := FromAxisAngle(AxisZ, yaw)

	return qRoll.Mul(qPitch).Mul(qYaw)
}

func (q Quat) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func fromNumber(n quat.Number) Quat {
	return Quat{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Mul returns the Hamilton product q·r. Applied to a vector, r acts first.
func (q Quat) Mul(r Quat) Quat {
	return fromNumber(quat.Mul(q.number(), r.number()))
}

// Conj returns the conjugate of q.
func (q Quat) Conj() Quat {
	return fromNumber(quat.Conj(q.number()))
}

// Inv returns the multiplicative inverse of q.
func (q Quat) Inv() Quat {
	return fromNumber(quat.Inv(q.number()))
}

// Norm returns |q|.
func (q Quat) Norm() float64 {
	return quat.Abs(q.number())
}

// IsUnit reports whether |q| is within tol of 1.
func (q Quat) IsUnit(tol float64) bool {
	return math.Abs(q.Norm()-1) <= tol
}

// Normalize returns q/|q|. The zero quaternion is returned unchanged.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n == 0 {
		return q
	}

	return fromNumber(quat.Scale(1/n, q.number()))
}

// Vector returns the vector part of q.
func (q Quat) Vector() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

// Array returns the scalar-first components of q.
func (q Quat) Array() [4]float64 {
	return [4]float64{q.W, q.X, q.Y, q.Z}
}

// Rotate returns the sandwich product q·v·q*. For a unit quaternion the
// conjugate is the inverse, so this is the rotation of v by q.
func (q Quat) Rotate(v Vec3) Vec3 {
	return q.Mul(PureQuat(v)).Mul(q.Conj()).Vector()
}
