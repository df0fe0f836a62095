// Package config loads the survey configuration shared by the commands.
//
// A survey file names every physical constant of a run: the filter design,
// the SLAM mounting geometry and the APS mounting geometry. Fields omitted
// from the file keep the values returned by Default, so partial files are
// safe.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-nav/dsp/lowpass"
	"github.com/cwbudde/algo-nav/nav/dataset"
	"github.com/cwbudde/algo-nav/nav/trajectory"
	"github.com/cwbudde/algo-nav/spatial"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid survey configuration")

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Survey is the root of a survey configuration file.
type Survey struct {
	Filter              Filter  `yaml:"filter"`
	SLAM                SLAM    `yaml:"slam"`
	APS                 APS     `yaml:"aps"`
	QuaternionTolerance float64 `yaml:"quaternion_tolerance"`
}

// Filter configures the positioning low-pass filter. Kaiser, when set,
// replaces the fixed order design.
type Filter struct {
	Order    int     `yaml:"order"`
	CutoffHz float64 `yaml:"cutoff_hz"`
	Boundary int     `yaml:"boundary"`
	Kaiser   *Kaiser `yaml:"kaiser,omitempty"`
}

// Kaiser are the tolerances of a Kaiser-window design.
type Kaiser struct {
	AttenuationDB float64 `yaml:"attenuation_db"`
	TransitionHz  float64 `yaml:"transition_hz"`
}

// SLAM is the camera to transducer geometry for SLAM-relative runs.
type SLAM struct {
	MeasuredDistances spatial.Vec3 `yaml:"measured_distances"`
	InclinationDeg    float64      `yaml:"inclination_deg"`
	Forward           spatial.Vec3 `yaml:"forward"`
}

// APS is the transducer to camera geometry for APS-relative runs.
type APS struct {
	LeverArm       spatial.Vec3 `yaml:"lever_arm"`
	DeclinationDeg float64      `yaml:"declination_deg"`
	Forward        spatial.Vec3 `yaml:"forward"`
}

// Default returns the survey values used when no file is given.
func Default() *Survey {
	slam := trajectory.DefaultSLAMConfig()
	aps := trajectory.DefaultAPSConfig()

	return &Survey{
		Filter: Filter{Order: 8, CutoffHz: 0.05, Boundary: 10},
		SLAM: SLAM{
			MeasuredDistances: slam.MeasuredDistances,
			InclinationDeg:    spatial.Rad2Deg(slam.Inclination),
			Forward:           slam.Forward,
		},
		APS: APS{
			LeverArm:       aps.LeverArm,
			DeclinationDeg: spatial.Rad2Deg(aps.Declination),
			Forward:        aps.Forward,
		},
		QuaternionTolerance: dataset.DefaultQuaternionTolerance,
	}
}

// Load reads a survey from a YAML file on top of Default and validates it.
func Load(path string) (*Survey, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", cleanPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", cleanPath, err)
	}

	return cfg, nil
}

// Validate checks the settings that do not depend on the data. The cutoff
// is checked against nyquist only once a sample rate is known.
func (s *Survey) Validate() error {
	if _, err := s.LowPass(); err != nil {
		return fmt.Errorf("%w: filter: %w", ErrInvalidConfig, err)
	}

	if k := s.Filter.Kaiser; k != nil {
		if k.AttenuationDB < 8 {
			return fmt.Errorf("%w: kaiser attenuation must be >= 8 dB, got %g", ErrInvalidConfig, k.AttenuationDB)
		}
		if k.TransitionHz <= 0 {
			return fmt.Errorf("%w: kaiser transition must be > 0, got %g", ErrInvalidConfig, k.TransitionHz)
		}
	}

	if s.SLAM.Forward.Norm() == 0 {
		return fmt.Errorf("%w: slam forward vector is zero", ErrInvalidConfig)
	}
	if s.APS.Forward.Norm() == 0 {
		return fmt.Errorf("%w: aps forward vector is zero", ErrInvalidConfig)
	}

	if d := s.SLAM.MeasuredDistances; d[1] == 0 && d[2] == 0 {
		return fmt.Errorf("%w: slam measured distances have no extent in the inclination plane", ErrInvalidConfig)
	}

	if s.QuaternionTolerance <= 0 {
		return fmt.Errorf("%w: quaternion tolerance must be > 0, got %g", ErrInvalidConfig, s.QuaternionTolerance)
	}

	return nil
}

// LowPass returns the fixed order filter configuration without a sample
// frequency.
func (s *Survey) LowPass() (lowpass.Config, error) {
	return lowpass.NewConfig(s.Filter.Order, s.Filter.CutoffHz, s.Filter.Boundary)
}

// KaiserSpec returns the Kaiser design, if one is configured.
func (s *Survey) KaiserSpec() (lowpass.KaiserSpec, bool) {
	if s.Filter.Kaiser == nil {
		return lowpass.KaiserSpec{}, false
	}

	return lowpass.KaiserSpec{
		Attenuation: s.Filter.Kaiser.AttenuationDB,
		Transition:  s.Filter.Kaiser.TransitionHz,
		Cutoff:      s.Filter.CutoffHz,
	}, true
}

// SLAMConfig converts the SLAM section to radians.
func (s *Survey) SLAMConfig() trajectory.SLAMConfig {
	return trajectory.SLAMConfig{
		MeasuredDistances: s.SLAM.MeasuredDistances,
		Inclination:       spatial.Deg2Rad(s.SLAM.InclinationDeg),
		Forward:           s.SLAM.Forward,
	}
}

// APSConfig converts the APS section to radians.
func (s *Survey) APSConfig() trajectory.APSConfig {
	return trajectory.APSConfig{
		LeverArm:    s.APS.LeverArm,
		Declination: spatial.Deg2Rad(s.APS.DeclinationDeg),
		Forward:     s.APS.Forward,
	}
}
