package trajectory

import "github.com/cwbudde/algo-nav/spatial"

// RigidTransform rotates then translates. Points map to R*p*R⁻¹ + T,
// directions to R*d*R⁻¹ and attitudes to R*q. The zero value is not a valid
// transform; use Identity, Rotation or Translation.
type RigidTransform struct {
	Rotation    spatial.Quat
	Translation spatial.Vec3
}

// Identity returns the transform that changes nothing.
func Identity() RigidTransform {
	return RigidTransform{Rotation: spatial.Identity()}
}

// Rotation returns a pure rotation.
func Rotation(q spatial.Quat) RigidTransform {
	return RigidTransform{Rotation: q}
}

// Translation returns a pure translation.
func Translation(v spatial.Vec3) RigidTransform {
	return RigidTransform{Rotation: spatial.Identity(), Translation: v}
}

// ApplyPoint transforms a position.
func (t RigidTransform) ApplyPoint(p spatial.Vec3) spatial.Vec3 {
	return t.Rotation.Rotate(p).Add(t.Translation)
}

// ApplyDirection rotates a free vector; the translation does not apply.
func (t RigidTransform) ApplyDirection(d spatial.Vec3) spatial.Vec3 {
	return t.Rotation.Rotate(d)
}

// ApplyAttitude re-expresses an attitude in the transformed frame.
func (t RigidTransform) ApplyAttitude(q spatial.Quat) spatial.Quat {
	return t.Rotation.Mul(q)
}

// Then returns the transform that applies t first and next second.
func (t RigidTransform) Then(next RigidTransform) RigidTransform {
	return RigidTransform{
		Rotation:    next.Rotation.Mul(t.Rotation),
		Translation: next.ApplyPoint(t.Translation),
	}
}

// ApplyPoints transforms every position of ps into a new slice.
func (t RigidTransform) ApplyPoints(ps []spatial.Vec3) []spatial.Vec3 {
	out := make([]spatial.Vec3, len(ps))
	for i, p := range ps {
		out[i] = t.ApplyPoint(p)
	}

	return out
}

// Apply transforms positions, attitudes and directions of tr. Timestamps are
// copied unchanged.
func (t RigidTransform) Apply(tr Trajectory) Trajectory {
	out := Trajectory{
		Times:     cloneOrNil(tr.Times),
		Positions: t.ApplyPoints(tr.Positions),
		Attitudes: make([]spatial.Quat, len(tr.Attitudes)),
	}

	for i, q := range tr.Attitudes {
		out.Attitudes[i] = t.ApplyAttitude(q)
	}

	if tr.Directions != nil {
		out.Directions = make([]spatial.Vec3, len(tr.Directions))
		for i, d := range tr.Directions {
			out.Directions[i] = t.ApplyDirection(d)
		}
	}

	return out
}
