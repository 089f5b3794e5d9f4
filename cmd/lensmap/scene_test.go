package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSceneFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestLoadScene_OverridesDefaults checks that a partial YAML document keeps
// the built-in defaults for every key it does not mention.
func TestLoadScene_OverridesDefaults(t *testing.T) {
	path := writeSceneFile(t, `
lens:
  m: 5.0e13
  c: 8
`)
	sc, err := loadScene(path)
	require.NoError(t, err)

	assert.Equal(t, 5.0e13, sc.Lens.M)
	assert.Equal(t, 8.0, sc.Lens.C)
	// Untouched keys stay at the reference scene.
	def := defaultScene()
	assert.Equal(t, def.Lens.ZL, sc.Lens.ZL)
	assert.Equal(t, def.Cosmology.H0, sc.Cosmology.H0)
}

// TestLoadScene_RejectsBadValues walks the validation gates one by one.
func TestLoadScene_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"nonpositive h0":      "cosmology:\n  h0: 0\n",
		"omega_m above unity": "cosmology:\n  omega_m: 1.5\n",
		"nonpositive mass":    "lens:\n  m: -1\n",
		"nonpositive conc":    "lens:\n  c: 0\n",
		"negative softening":  "lens:\n  s: -0.1\n",
		"negative redshift":   "lens:\n  z_l: -0.5\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadScene(writeSceneFile(t, body))
			assert.ErrorIs(t, err, ErrBadScene)
		})
	}
}

// TestLoadScene_MissingFile surfaces the OS error rather than ErrBadScene.
func TestLoadScene_MissingFile(t *testing.T) {
	_, err := loadScene(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBadScene)
}

// TestDefaultScene_IsValid guards the reference halo against drift.
func TestDefaultScene_IsValid(t *testing.T) {
	assert.NoError(t, defaultScene().validate())
}
