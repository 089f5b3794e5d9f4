package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadScene indicates a scene file with unphysical parameters.
var ErrBadScene = errors.New("lensmap: invalid scene")

// scene is the YAML description of one halo plus its background cosmology.
type scene struct {
	Cosmology sceneCosmology `yaml:"cosmology"`
	Lens      sceneLens      `yaml:"lens"`
}

type sceneCosmology struct {
	H0     float64 `yaml:"h0"`      // km/s/Mpc
	OmegaM float64 `yaml:"omega_m"` // matter fraction
}

type sceneLens struct {
	ZL float64 `yaml:"z_l"` // lens redshift
	X0 float64 `yaml:"x0"`  // center, arcsec
	Y0 float64 `yaml:"y0"`  // center, arcsec
	M  float64 `yaml:"m"`   // halo mass, M☉
	C  float64 `yaml:"c"`   // concentration
	S  float64 `yaml:"s"`   // softening, arcsec
}

// defaultScene is the reference halo used when no scene file is given.
func defaultScene() scene {
	return scene{
		Cosmology: sceneCosmology{H0: 67.66, OmegaM: 0.30966},
		Lens:      sceneLens{ZL: 0.5, M: 1e13, C: 5},
	}
}

// loadScene reads and validates a YAML scene file. The library itself lets
// bad physics degrade silently; the CLI is the right place to reject it.
func loadScene(path string) (scene, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return scene{}, fmt.Errorf("lensmap: reading scene: %w", err)
	}
	s := defaultScene()
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return scene{}, fmt.Errorf("lensmap: parsing scene: %w", err)
	}
	if err := s.validate(); err != nil {
		return scene{}, err
	}

	return s, nil
}

func (s scene) validate() error {
	switch {
	case s.Cosmology.H0 <= 0:
		return fmt.Errorf("%w: h0 must be > 0, got %g", ErrBadScene, s.Cosmology.H0)
	case s.Cosmology.OmegaM <= 0 || s.Cosmology.OmegaM > 1:
		return fmt.Errorf("%w: omega_m must be in (0,1], got %g", ErrBadScene, s.Cosmology.OmegaM)
	case s.Lens.M <= 0:
		return fmt.Errorf("%w: m must be > 0, got %g", ErrBadScene, s.Lens.M)
	case s.Lens.C <= 0:
		return fmt.Errorf("%w: c must be > 0, got %g", ErrBadScene, s.Lens.C)
	case s.Lens.S < 0:
		return fmt.Errorf("%w: s must be >= 0, got %g", ErrBadScene, s.Lens.S)
	case s.Lens.ZL < 0:
		return fmt.Errorf("%w: z_l must be >= 0, got %g", ErrBadScene, s.Lens.ZL)
	}

	return nil
}
