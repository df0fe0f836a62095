package dataset

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-nav/internal/testutil"
	"github.com/cwbudde/algo-nav/nav/series"
	"github.com/cwbudde/algo-nav/spatial"
)

func mustRead(t *testing.T, s string) *Frame {
	t.Helper()
	f, err := ReadCSV(strings.NewReader(s))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestPositioningSeries(t *testing.T) {
	ts, err := PositioningSeries(mustRead(t, hipapCSV))
	if err != nil {
		t.Fatal(err)
	}

	if ts.Len() != 3 || ts.Channels() != 3 {
		t.Fatalf("shape %dx%d", ts.Channels(), ts.Len())
	}
	testutil.RequireSliceNearlyEqual(t, ts.Values[2], []float64{812, 812.5, 813}, 0)

	if _, err := PositioningSeries(mustRead(t, hipapCSV), "Missing"); !errors.Is(err, ErrMissingColumn) {
		t.Errorf("missing channel: err=%v", err)
	}

	unsorted := "Epoch,UTM Northing,UTM Easting,Depth\n2,0,0,0\n1,0,0,0\n"
	if _, err := PositioningSeries(mustRead(t, unsorted)); !errors.Is(err, series.ErrNotIncreasing) {
		t.Errorf("unsorted: err=%v", err)
	}
}

func TestCameraTrajectory(t *testing.T) {
	s := math.Sqrt(0.5)
	in := "Epoch,PositionX,PositionY,PositionZ,Quaternion1,Quaternion2,Quaternion3,Quaternion4\n" +
		"10,1,2,3,1,0,0,0\n" +
		"11,4,5,6," + ftoa(s) + ",0," + ftoa(s) + ",0\n"

	tr, err := CameraTrajectory(mustRead(t, in), DefaultQuaternionTolerance)
	if err != nil {
		t.Fatal(err)
	}

	if err := tr.Validate(); err != nil {
		t.Fatal(err)
	}
	testutil.RequireVecNearlyEqual(t, tr.Positions[1], spatial.Vec3{4, 5, 6}, 0)
	testutil.RequireQuatNearlyEqual(t, tr.Attitudes[1], spatial.Quat{W: s, Y: s}, 1e-15)
	testutil.RequireSliceNearlyEqual(t, tr.Times, []float64{10, 11}, 0)
}

func TestCameraTrajectory_RejectsNonUnit(t *testing.T) {
	in := "PositionX,PositionY,PositionZ,Quaternion1,Quaternion2,Quaternion3,Quaternion4\n" +
		"0,0,0,1,0,0,0\n" +
		"0,0,0,1,0.1,0,0\n"

	_, err := CameraTrajectory(mustRead(t, in), DefaultQuaternionTolerance)
	if !errors.Is(err, ErrNonUnitQuaternion) {
		t.Fatalf("err=%v, want ErrNonUnitQuaternion", err)
	}

	tr, err := CameraTrajectory(mustRead(t, in), 0.01)
	if err != nil {
		t.Fatalf("loose tolerance: %v", err)
	}
	if tr.Times != nil {
		t.Fatal("times attached without an Epoch column")
	}
}

func TestAPSFixes(t *testing.T) {
	fixes, err := APSFixes(mustRead(t, hipapCSV))
	if err != nil {
		t.Fatal(err)
	}

	if len(fixes) != 3 || fixes[0].Time != 1.6e9 {
		t.Fatalf("fixes %+v", fixes)
	}
	testutil.RequireVecNearlyEqual(t, fixes[0].Position, spatial.Vec3{6712345.5, 543210.25, 812}, 0)
}

func TestAPSFixes_Unordered(t *testing.T) {
	in := "Epoch,UTM Northing,UTM Easting,Depth\n4,0,0,10\n0,0,0,10\n2,0,0,10\n"
	if _, err := APSFixes(mustRead(t, in)); !errors.Is(err, series.ErrNotIncreasing) {
		t.Fatalf("err=%v, want ErrNotIncreasing", err)
	}
}

func TestGyroAttitudes(t *testing.T) {
	in := "Epoch,Roll,Pitch,Heading\n5,180,-90,45\n"

	got, err := GyroAttitudes(mustRead(t, in))
	if err != nil {
		t.Fatal(err)
	}

	g := got[0]
	if g.Time != 5 {
		t.Fatalf("time %v", g.Time)
	}
	testutil.RequireSliceNearlyEqual(t,
		[]float64{g.Roll, g.Pitch, g.Heading},
		[]float64{math.Pi, -math.Pi / 2, math.Pi / 4}, 1e-15)

	if _, err := GyroAttitudes(mustRead(t, "Epoch,Roll\n1,2\n")); !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("missing: err=%v", err)
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
