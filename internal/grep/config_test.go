package grep

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing optional file", func(t *testing.T) {
		config, err := LoadConfig(filepath.Join(dir, "none.yaml"), true)
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("missing required file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(dir, "none.yaml"), false)
		require.Error(t, err)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeFile(t, dir, "partial.yaml", "color: true\njobs: 3\n")
		config, err := LoadConfig(path, false)
		require.NoError(t, err)
		assert.True(t, config.Color)
		assert.Equal(t, 3, config.Jobs)
		assert.True(t, config.Prefilter)
		assert.False(t, config.JSON)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "color: [oops\n")
		_, err := LoadConfig(path, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})

	t.Run("invalid jobs", func(t *testing.T) {
		path := writeFile(t, dir, "jobs.yaml", "jobs: 0\n")
		_, err := LoadConfig(path, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jobs must be at least 1")
	})
}

func TestWriteConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	want := Config{Color: true, LineNumbers: true, Jobs: 2, Strict: true}

	require.NoError(t, WriteConfig(path, want))
	got, err := LoadConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRegexConfig(t *testing.T) {
	config := DefaultConfig()
	config.Strict = true
	config.Prefilter = false

	rc := config.RegexConfig()
	assert.True(t, rc.StrictDelimiters)
	assert.False(t, rc.EnablePrefilter)
	assert.True(t, rc.EnableASCIIFastPath)
}
