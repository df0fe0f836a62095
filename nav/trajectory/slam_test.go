package trajectory

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-nav/nav/leverarm"
	"github.com/cwbudde/algo-nav/spatial"
)

func straightOdometry(n int) Trajectory {
	tr := Trajectory{
		Times:     make([]float64, n),
		Positions: make([]spatial.Vec3, n),
		Attitudes: make([]spatial.Quat, n),
	}
	for i := range n {
		tr.Times[i] = 1.6e9 + float64(i)
		// Moving forward along the odometry z axis.
		tr.Positions[i] = spatial.Vec3{0, 0, 0.5 * float64(i)}
		tr.Attitudes[i] = spatial.Identity()
	}
	return tr
}

func TestSLAMRelative(t *testing.T) {
	cfg := DefaultSLAMConfig()
	in := SLAMInput{
		Camera:       straightOdometry(12),
		InitPosition: spatial.Vec3{6.7e6, 4.5e5, 900},
		InitHeading:  spatial.Deg2Rad(90),
	}

	res, err := SLAMRelative(in, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if res.Camera.Len() != 12 || len(res.Transducer) != 12 || len(res.Camera.Directions) != 12 {
		t.Fatalf("lengths cam=%d trans=%d dirs=%d", res.Camera.Len(), len(res.Transducer), len(res.Camera.Directions))
	}

	if d := res.Transducer[0].Sub(in.InitPosition).Norm(); d > 1e-6 {
		t.Fatalf("trans[0]=%v, want %v", res.Transducer[0], in.InitPosition)
	}

	wantArm, _ := leverarm.Resolve(cfg.MeasuredDistances, cfg.Inclination)
	if res.LeverArm != wantArm {
		t.Fatalf("lever arm %v, want %v", res.LeverArm, wantArm)
	}

	armLen := cfg.MeasuredDistances.Norm()
	for i := range res.Transducer {
		if d := res.Transducer[i].Sub(res.Camera.Positions[i]).Norm(); math.Abs(d-armLen) > 1e-6 {
			t.Fatalf("sample %d: lever arm length %v, want %v", i, d, armLen)
		}
	}

	// With identity odometry attitudes the aligned camera looks ahead and
	// down by the inclination; a 90° heading turns it east.
	dir := res.Camera.Directions[0]
	if dir[1] < 0.5 || math.Abs(dir.Norm()-1) > 1e-12 {
		t.Fatalf("direction %v does not point east", dir)
	}

	step := res.Camera.Positions[1].Sub(res.Camera.Positions[0])
	if math.Abs(step.Norm()-0.5) > 1e-6 {
		t.Fatalf("step length %v", step.Norm())
	}
}

func TestSLAMRelative_Errors(t *testing.T) {
	cfg := DefaultSLAMConfig()

	if _, err := SLAMRelative(SLAMInput{}, cfg); !errors.Is(err, ErrEmptyTrajectory) {
		t.Errorf("empty: err=%v", err)
	}

	bad := cfg
	bad.MeasuredDistances = spatial.Vec3{1, 0, 0}
	if _, err := SLAMRelative(SLAMInput{Camera: straightOdometry(3)}, bad); !errors.Is(err, leverarm.ErrDegenerateGeometry) {
		t.Errorf("degenerate: err=%v", err)
	}

	cam := straightOdometry(3)
	cam.Attitudes = cam.Attitudes[:2]
	if _, err := SLAMRelative(SLAMInput{Camera: cam}, cfg); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("mismatch: err=%v", err)
	}
}

func TestSLAMRelative_DoesNotMutateInput(t *testing.T) {
	cam := straightOdometry(4)
	before := cam.Clone()

	if _, err := SLAMRelative(SLAMInput{Camera: cam}, DefaultSLAMConfig()); err != nil {
		t.Fatal(err)
	}

	for i := range cam.Positions {
		if cam.Positions[i] != before.Positions[i] || cam.Attitudes[i] != before.Attitudes[i] {
			t.Fatalf("sample %d modified", i)
		}
	}
	if cam.Directions != nil {
		t.Fatal("input gained directions")
	}
}
