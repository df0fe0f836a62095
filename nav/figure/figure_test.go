package figure

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/plotter"

	"github.com/cwbudde/algo-nav/internal/testutil"
	"github.com/cwbudde/algo-nav/nav/series"
	"github.com/cwbudde/algo-nav/spatial"
)

func TestComparisonSave(t *testing.T) {
	times := testutil.SampleTimes(1.6e9, 1, 50)
	raw, _ := series.New(times, testutil.DeterministicNoise(1, 1, 50))
	filtered := raw.Shift(3.5)

	fig, err := Comparison("UTM Northing [m]", raw, filtered, 0)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "plots", "northing.png")
	if err := fig.Save(path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty image")
	}

	if _, err := Comparison("x", raw, filtered, 1); err == nil {
		t.Fatal("expected channel error")
	}
}

func TestPlanarEqualAxes(t *testing.T) {
	fig := Planar("Trajectory",
		Track{Label: "APS", Positions: []spatial.Vec3{{100, 10, 5}, {140, 20, 5}}},
	)

	p, err := fig.Plot()
	if err != nil {
		t.Fatal(err)
	}

	if xs, ys := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min; xs != ys || xs < 40 {
		t.Fatalf("x span %v, y span %v", xs, ys)
	}
	if fig.Lines[0].X[1] != 20 || fig.Lines[0].Y[1] != 140 {
		t.Fatalf("easting/northing swapped: %+v", fig.Lines[0])
	}
}

func TestDepthProfile(t *testing.T) {
	tr := Track{Label: "cam", Positions: []spatial.Vec3{{0, 0, 800}, {0, 0, 810}}}

	fig, err := DepthProfile([][]float64{{1, 2}}, tr)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, fig.Lines[0].Y, []float64{-800, -810}, 0)

	if _, err := DepthProfile([][]float64{{1}}, tr); err == nil {
		t.Fatal("expected length error")
	}
}

func TestHeadingsSave(t *testing.T) {
	origins := []spatial.Vec3{{0, 0, 0}, {1, 1, 0}}
	dirs := []spatial.Vec3{{1, 0, 0}, {0, 1, 0}}

	segs, err := Headings(origins, dirs, 1, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := [2]plotter.XY{{X: 1, Y: 1}, {X: 3, Y: 1}}
	if segs[1] != want {
		t.Fatalf("segment %v, want %v", segs[1], want)
	}

	fig := Planar("Camera", Track{Label: "cam", Positions: origins})
	fig.Segments = segs
	if err := fig.Save(filepath.Join(t.TempDir(), "camera.svg")); err != nil {
		t.Fatal(err)
	}

	if _, err := Headings(origins, dirs[:1], 0, 1, 1); err == nil {
		t.Fatal("expected length error")
	}
}

func TestEmptyFigure(t *testing.T) {
	if _, err := (Figure{Lines: []Line{{Label: "none"}}}).Plot(); !errors.Is(err, ErrNoData) {
		t.Fatalf("err=%v, want ErrNoData", err)
	}
	if _, err := (Figure{Lines: []Line{{X: []float64{1}}}}).Plot(); err == nil {
		t.Fatal("expected mismatch error")
	}
}
