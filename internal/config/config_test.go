package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFrom_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
[diff]
context_lines = 5
ignore_whitespace = true
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Diff.ContextLines)
	assert.True(t, cfg.Diff.IgnoreWhitespace)
	// Untouched values keep their defaults.
	assert.Equal(t, 10, cfg.Diff.CollapseThreshold)
	assert.Equal(t, "mocha", cfg.UI.Theme)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "[diff\ncontext_lines = 3"},
		{"negative context", "[diff]\ncontext_lines = -1"},
		{"zero threshold", "[diff]\ncollapse_threshold = 0"},
		{"unknown theme", "[ui]\ntheme = \"solarized\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
