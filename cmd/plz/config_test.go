package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plz.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PLZ_CONFIG", "")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 256, cfg.parseOptions().MaxDepth)
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "plz.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Parse.MaxDepth)
	assert.True(t, cfg.Format.Compact)
	assert.True(t, cfg.Check.DisableUnused)
	assert.False(t, cfg.Check.DisableDivZero)
	assert.Equal(t, outputJSON, cfg.Output.Format)

	vo := cfg.validateOptions()
	assert.True(t, vo.DisableUnusedCheck)
	assert.False(t, vo.DisableUndeclaredCheck)
	assert.True(t, cfg.formatOptions().Compact)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("PLZ_CONFIG", writeConfig(t, "[parse]\nmax_depth = 3\n"))

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Parse.MaxDepth)
	assert.Equal(t, outputText, cfg.Output.Format)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "syntax", body: "[parse\n", want: "failed to parse config"},
		{name: "unknown_key", body: "[parse]\nmaxdepth = 3\n", want: "unknown config keys"},
		{name: "negative_depth", body: "[parse]\nmax_depth = -1\n", want: "must not be negative"},
		{name: "bad_output", body: "[output]\nformat = \"xml\"\n", want: "unsupported output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")
}
