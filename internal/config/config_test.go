package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.False(t, cfg.Strict)
	require.False(t, cfg.LegacyColors)
	require.Equal(t, 0, cfg.Render.Width)
	require.Equal(t, "auto", cfg.Render.Color)
}

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Defaults().Validate())
}

func TestValidate_ColorModes(t *testing.T) {
	for _, mode := range []string{"auto", "always", "never"} {
		cfg := Defaults()
		cfg.Render.Color = mode
		require.NoError(t, cfg.Validate())
	}
}

func TestValidate_BadColorMode(t *testing.T) {
	cfg := Defaults()
	cfg.Render.Color = "sometimes"
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "render.color")
}

func TestValidate_NegativeWidth(t *testing.T) {
	cfg := Defaults()
	cfg.Render.Width = -1
	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "render.width")
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# minemsg configuration")

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	require.Equal(t, Defaults(), cfg)
}

func TestWriteDefaultConfig_RoundTripsThroughYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	require.NoError(t, cfg.Validate())
}
