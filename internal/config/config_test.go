package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-nav/dsp/lowpass"
	"github.com/cwbudde/algo-nav/nav/trajectory"
	"github.com/cwbudde/algo-nav/spatial"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	lp, err := cfg.LowPass()
	if err != nil {
		t.Fatal(err)
	}
	if want := (lowpass.Config{Order: 8, Cutoff: 0.05, Boundary: 10}); lp != want {
		t.Errorf("LowPass()=%+v, want %+v", lp, want)
	}

	approx := cmpopts.EquateApprox(0, 1e-12)
	if diff := cmp.Diff(trajectory.DefaultSLAMConfig(), cfg.SLAMConfig(), approx); diff != "" {
		t.Errorf("SLAMConfig mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(trajectory.DefaultAPSConfig(), cfg.APSConfig(), approx); diff != "" {
		t.Errorf("APSConfig mismatch (-want +got):\n%s", diff)
	}

	if _, ok := cfg.KaiserSpec(); ok {
		t.Error("default config should not select a kaiser design")
	}
}

func TestLoadPartial(t *testing.T) {
	path := writeFile(t, "survey.yaml", `
filter:
  order: 16
  boundary: 20
slam:
  inclination_deg: 30
aps:
  lever_arm: [1.5, 0, 0.5]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Filter.Order != 16 || cfg.Filter.Boundary != 20 {
		t.Errorf("filter=%+v", cfg.Filter)
	}
	if cfg.Filter.CutoffHz != 0.05 {
		t.Errorf("cutoff=%v, want default 0.05", cfg.Filter.CutoffHz)
	}
	if got := cfg.SLAMConfig().Inclination; math.Abs(got-math.Pi/6) > 1e-12 {
		t.Errorf("inclination=%v rad, want pi/6", got)
	}
	if cfg.SLAM.MeasuredDistances != (spatial.Vec3{0.21, 1.40, 2.00}) {
		t.Errorf("measured distances=%v, want defaults", cfg.SLAM.MeasuredDistances)
	}
	if cfg.APS.LeverArm != (spatial.Vec3{1.5, 0, 0.5}) {
		t.Errorf("lever arm=%v", cfg.APS.LeverArm)
	}
	if cfg.QuaternionTolerance != 1e-6 {
		t.Errorf("quaternion tolerance=%v", cfg.QuaternionTolerance)
	}
}

func TestLoadKaiser(t *testing.T) {
	path := writeFile(t, "kaiser.yml", `
filter:
  cutoff_hz: 0.1
  boundary: 200
  kaiser:
    attenuation_db: 60
    transition_hz: 0.05
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	spec, ok := cfg.KaiserSpec()
	if !ok {
		t.Fatal("expected kaiser design")
	}
	want := lowpass.KaiserSpec{Attenuation: 60, Transition: 0.05, Cutoff: 0.1}
	if spec != want {
		t.Errorf("KaiserSpec()=%+v, want %+v", spec, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		invalid bool
		msg     string
	}{
		{name: "wrong extension", file: "survey.json", content: "{}", msg: "extension"},
		{name: "malformed yaml", file: "bad.yaml", content: "filter: [1, 2", msg: "parse"},
		{name: "short vector", file: "vec.yaml", content: "aps:\n  lever_arm: [1, 2]\n", msg: "parse"},
		{name: "zero order", file: "order.yaml", content: "filter:\n  order: 0\n", invalid: true},
		{name: "boundary below transient", file: "boundary.yaml", content: "filter:\n  boundary: 3\n", invalid: true},
		{name: "weak kaiser", file: "kaiser.yaml", content: "filter:\n  kaiser:\n    attenuation_db: 4\n    transition_hz: 0.1\n", invalid: true},
		{name: "zero kaiser transition", file: "transition.yaml", content: "filter:\n  kaiser:\n    attenuation_db: 40\n", invalid: true},
		{name: "zero forward", file: "forward.yaml", content: "slam:\n  forward: [0, 0, 0]\n", invalid: true},
		{name: "flat distances", file: "flat.yaml", content: "slam:\n  measured_distances: [1, 0, 0]\n", invalid: true},
		{name: "zero tolerance", file: "tol.yaml", content: "quaternion_tolerance: 0\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err=%v, want ErrInvalidConfig", err)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("err=%q, want it to mention %q", err, tt.msg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err=%v, want os.ErrNotExist", err)
	}
}

func TestLoadTooLarge(t *testing.T) {
	path := writeFile(t, "big.yaml", "# "+strings.Repeat("x", maxFileSize)+"\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("err=%v, want size error", err)
	}
}
