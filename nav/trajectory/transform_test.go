package trajectory

import (
	"testing"

	"github.com/cwbudde/algo-nav/internal/testutil"
	"github.com/cwbudde/algo-nav/spatial"
	"github.com/google/go-cmp/cmp"
)

func TestRigidTransform_RoundTrip(t *testing.T) {
	qs := testutil.RandomUnitQuats(21, 50)
	vs := testutil.RandomVecs(22, 100, 50)

	for i, q := range qs {
		there := Rotation(q).ApplyPoint(vs[i])
		back := Rotation(q.Conj()).ApplyPoint(there)
		testutil.RequireVecNearlyEqual(t, back, vs[i], 1e-10)
	}
}

func TestRigidTransform_ThenMatchesSequential(t *testing.T) {
	a := RigidTransform{Rotation: spatial.FromRollPitchYaw(0.1, 0.2, 0.3), Translation: spatial.Vec3{1, 2, 3}}
	b := RigidTransform{Rotation: spatial.FromAxisAngle(spatial.Vec3{1, 1, 0}, -0.8), Translation: spatial.Vec3{-5, 0, 9}}
	ab := a.Then(b)

	tr := randomTrajectory(30, 15)
	tr.Directions = CameraDirections(tr.Attitudes, spatial.AxisZ)

	seq := b.Apply(a.Apply(tr))
	once := ab.Apply(tr)

	if diff := cmp.Diff(seq, once, approx); diff != "" {
		t.Fatalf("(-sequential +composed):\n%s", diff)
	}
}

func TestRigidTransform_Identity(t *testing.T) {
	tr := randomTrajectory(31, 5)
	tr.Times = []float64{0, 1, 2, 3, 4}

	got := Identity().Apply(tr)
	if diff := cmp.Diff(tr, got, approx); diff != "" {
		t.Fatalf("identity changed trajectory:\n%s", diff)
	}

	got.Times[0] = 99
	if tr.Times[0] != 0 {
		t.Fatal("Apply shares timestamps with its input")
	}
}

func TestRigidTransform_TranslationIgnoresDirections(t *testing.T) {
	tt := Translation(spatial.Vec3{5, 5, 5})

	testutil.RequireVecNearlyEqual(t, tt.ApplyPoint(spatial.Vec3{1, 0, 0}), spatial.Vec3{6, 5, 5}, 0)
	testutil.RequireVecNearlyEqual(t, tt.ApplyDirection(spatial.Vec3{1, 0, 0}), spatial.Vec3{1, 0, 0}, 0)
}
