package trajectory

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-nav/internal/testutil"
	"github.com/cwbudde/algo-nav/nav/series"
	"github.com/cwbudde/algo-nav/spatial"
	"github.com/google/go-cmp/cmp"
)

func TestAPSRelative_LevelVehicle(t *testing.T) {
	cfg := APSConfig{LeverArm: spatial.Vec3{2, 0.21, 1.4}, Forward: spatial.AxisX}
	fixes := []Fix{
		{Time: 100, Position: spatial.Vec3{6.7e6, 4.5e5, 800}},
		{Time: 101, Position: spatial.Vec3{6.7e6 + 1, 4.5e5, 800}},
	}
	gyro := []AttitudeSample{{Time: 99.5}, {Time: 101.2}}

	got, err := APSRelative(fixes, gyro, cfg)
	if err != nil {
		t.Fatal(err)
	}

	for i, f := range fixes {
		testutil.RequireVecNearlyEqual(t, got.Positions[i], f.Position.Add(cfg.LeverArm), 1e-9)
		testutil.RequireVecNearlyEqual(t, got.Directions[i], spatial.AxisX, tolerance)
		testutil.RequireQuatNearlyEqual(t, got.Attitudes[i], spatial.Identity(), tolerance)
	}
	testutil.RequireSliceNearlyEqual(t, got.Times, []float64{100, 101}, 0)
}

func TestAPSRelative_NearestGyroSample(t *testing.T) {
	cfg := APSConfig{LeverArm: spatial.Vec3{2, 0.21, 1.4}, Forward: spatial.AxisX}
	gyro := []AttitudeSample{
		{Time: 0, Heading: 0},
		{Time: 10, Heading: math.Pi / 2},
		{Time: 20, Heading: math.Pi},
	}
	fixes := []Fix{
		{Time: 1},
		{Time: 9},
		{Time: 16},
		{Time: 40},
	}

	got, err := APSRelative(fixes, gyro, cfg)
	if err != nil {
		t.Fatal(err)
	}

	wantDirs := []spatial.Vec3{{1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {-1, 0, 0}}
	wantPos := []spatial.Vec3{{2, 0.21, 1.4}, {-0.21, 2, 1.4}, {-2, -0.21, 1.4}, {-2, -0.21, 1.4}}
	for i := range fixes {
		testutil.RequireVecNearlyEqual(t, got.Directions[i], wantDirs[i], tolerance)
		testutil.RequireVecNearlyEqual(t, got.Positions[i], wantPos[i], tolerance)
	}
}

func TestAPSRelative_Declination(t *testing.T) {
	cfg := DefaultAPSConfig()
	got, err := APSRelative([]Fix{{Time: 5}}, []AttitudeSample{{Time: 5}}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Level vehicle: the boresight is pitched about y by the declination.
	d := cfg.Declination
	testutil.RequireVecNearlyEqual(t, got.Directions[0], spatial.Vec3{math.Cos(d), 0, -math.Sin(d)}, tolerance)
	// The lever arm is applied in the body frame, not the camera frame.
	testutil.RequireVecNearlyEqual(t, got.Positions[0], cfg.LeverArm, tolerance)
}

func TestAPSRelative_BodyOrder(t *testing.T) {
	g := AttitudeSample{Roll: 0.1, Pitch: -0.2, Heading: 1.2}
	cfg := APSConfig{LeverArm: spatial.Vec3{1, 2, 3}, Forward: spatial.AxisX}

	got, err := APSRelative([]Fix{{Time: 0}}, []AttitudeSample{g}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	body := spatial.FromAxisAngle(spatial.AxisX, g.Roll).
		Mul(spatial.FromAxisAngle(spatial.AxisY, g.Pitch)).
		Mul(spatial.FromAxisAngle(spatial.AxisZ, g.Heading))
	testutil.RequireVecNearlyEqual(t, got.Positions[0], body.Rotate(cfg.LeverArm), tolerance)
	testutil.RequireQuatNearlyEqual(t, got.Attitudes[0], body, tolerance)
}

func TestAPSRelative_DoesNotMutate(t *testing.T) {
	fixes := []Fix{{Time: 1, Position: spatial.Vec3{1, 2, 3}}, {Time: 2, Position: spatial.Vec3{4, 5, 6}}}
	gyro := []AttitudeSample{{Time: 1, Roll: 0.3}, {Time: 2, Pitch: 0.1}}
	fixesBefore := append([]Fix(nil), fixes...)
	gyroBefore := append([]AttitudeSample(nil), gyro...)

	if _, err := APSRelative(fixes, gyro, DefaultAPSConfig()); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(fixesBefore, fixes); diff != "" {
		t.Fatalf("fixes modified:\n%s", diff)
	}
	if diff := cmp.Diff(gyroBefore, gyro); diff != "" {
		t.Fatalf("gyro modified:\n%s", diff)
	}
}

func TestAPSRelative_Errors(t *testing.T) {
	cfg := DefaultAPSConfig()

	if _, err := APSRelative(nil, []AttitudeSample{{}}, cfg); !errors.Is(err, ErrEmptyTrajectory) {
		t.Errorf("no fixes: err=%v", err)
	}
	if _, err := APSRelative([]Fix{{}}, nil, cfg); !errors.Is(err, ErrEmptyTrajectory) {
		t.Errorf("no gyro: err=%v", err)
	}
	if _, err := APSRelative([]Fix{{Time: 2}, {Time: 1}}, []AttitudeSample{{}}, cfg); !errors.Is(err, series.ErrNotIncreasing) {
		t.Errorf("unsorted fixes: err=%v", err)
	}
	if _, err := APSRelative([]Fix{{}}, []AttitudeSample{{Time: 1}, {Time: 1}}, cfg); !errors.Is(err, series.ErrNotIncreasing) {
		t.Errorf("repeated gyro time: err=%v", err)
	}
}
