// Package spatial provides the small amount of rotation algebra needed to move
// rigid-body trajectories between coordinate frames.
//
// [Vec3] is a plain 3-vector and [Quat] a scalar-first quaternion backed by
// gonum's num/quat. All operations are named methods so that the order of
// quaternion products is always spelled out at the call site:
//
//	r := qYaw.Mul(qPitch).Mul(qRoll) // applied right to left
//	p := r.Rotate(v)                 // r·v·r⁻¹
//
// Rotations assume unit quaternions. Nothing in this package normalises its
// inputs; use [Quat.IsUnit] at the point where data enters the program.
package spatial
