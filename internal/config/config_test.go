package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/poematic/internal/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "poematic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_RequiredFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `
corpus:
  - sonnet.txt
  - ode.txt
hide: 3
policy: prefix
escalate: true
seed: 42
color: never
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"sonnet.txt", "ode.txt"}, cfg.Corpus)
	assert.Equal(t, 3, cfg.Hide)
	assert.Equal(t, m.PolicyPrefix, cfg.GuessPolicy())
	assert.True(t, cfg.Escalate)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, []m.Path{"sonnet.txt", "ode.txt"}, cfg.CorpusPaths())
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "hide: [1, 2\n")

	_, err := Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "hide: 2\npolicy: strict\n")

	t.Setenv("POEMATIC_HIDE", "4")
	t.Setenv("POEMATIC_POLICY", "prefix")
	t.Setenv("POEMATIC_ESCALATE", "yes")
	t.Setenv("POEMATIC_CORPUS", "a.txt"+string(os.PathListSeparator)+"b.txt")
	t.Setenv("POEMATIC_SEED", "not-a-number")

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Hide)
	assert.Equal(t, "prefix", cfg.Policy)
	assert.True(t, cfg.Escalate)
	assert.Equal(t, []string{"a.txt", "b.txt"}, cfg.Corpus)
	assert.Zero(t, cfg.Seed, "unparsable values fall back")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero hide", mutate: func(c *Config) { c.Hide = 0 }},
		{name: "negative hide", mutate: func(c *Config) { c.Hide = -2 }},
		{name: "unknown policy", mutate: func(c *Config) { c.Policy = "fuzzy" }},
		{name: "unknown color", mutate: func(c *Config) { c.Color = "rainbow" }},
		{name: "no corpus", mutate: func(c *Config) { c.Corpus = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}
